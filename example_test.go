package progstream_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aiagentinc/progstream"
)

func ExampleNewReader() {
	total := 0
	r := progstream.NewReader(strings.NewReader("0123456789"), func(n int) {
		total += n
		fmt.Println("read", n)
	})

	buf := make([]byte, 3)
	for {
		if _, err := r.Read(buf); err == io.EOF {
			break
		}
	}
	fmt.Println("total", total)
	// Output:
	// read 3
	// read 3
	// read 3
	// read 1
	// read 0
	// total 10
}

func ExampleNewWriter() {
	counter := progstream.NewCounter()
	w := progstream.NewWriter(new(bytes.Buffer), counter.Callback())

	_, _ = w.Write(make([]byte, 8192))
	sink := w.Unwrap()

	fmt.Println(counter.Total(), sink.Len())
	// Output: 8192 8192
}
