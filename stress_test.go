package progstream

import (
	"bytes"
	"context"
	"crypto/rand"
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

func TestConcurrentStress(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	// Adjust duration based on CI environment
	duration := time.Second
	if os.Getenv("CI") == "true" {
		duration = 250 * time.Millisecond
	}

	tests := []struct {
		name       string
		goroutines int
		dataSize   int
	}{
		{"LowConcurrency", 10, 1024 * 64},
		{"HighConcurrency", 100, 1024 * 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), duration)
			defer cancel()

			data := make([]byte, tt.dataSize)
			_, _ = rand.Read(data)

			// One counter shared by every wrapper, as a progress display would.
			read, written := NewCounter(), NewCounter()
			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				expected int64
				failures []error
			)

			for i := 0; i < tt.goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for ctx.Err() == nil {
						pr := NewReader(bytes.NewReader(data), read.Callback())
						pw := NewWriter(io.Discard, written.Callback())
						n, err := io.Copy(pw, pr)
						mu.Lock()
						if err != nil {
							failures = append(failures, err)
						}
						expected += n
						mu.Unlock()
					}
				}()
			}

			wg.Wait()

			if len(failures) > 0 {
				t.Fatalf("stress run had %d errors, first: %v", len(failures), failures[0])
			}
			if read.Total() != expected {
				t.Errorf("read total = %d, want %d", read.Total(), expected)
			}
			if written.Total() != expected {
				t.Errorf("written total = %d, want %d", written.Total(), expected)
			}
			t.Logf("copied %d bytes with %d goroutines", expected, tt.goroutines)
		})
	}
}

func TestMutexGuardedReader(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 1<<16)
	var calls []int
	pr := NewReader(bytes.NewReader(data), func(n int) { calls = append(calls, n) })

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, 512)
			for {
				mu.Lock()
				_, err := pr.Read(buf)
				mu.Unlock()
				if err != nil {
					return
				}
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, n := range calls {
		total += n
	}
	if total != len(data) {
		t.Errorf("callback sum = %d, want %d", total, len(data))
	}
}
