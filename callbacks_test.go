package progstream

import (
	"strings"
	"testing"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	cb := c.Callback()

	for _, n := range []int{3, 3, 3, 1, 0} {
		cb(n)
	}
	if c.Total() != 10 {
		t.Errorf("Total() = %d, want 10", c.Total())
	}
	if prev := c.Reset(); prev != 10 {
		t.Errorf("Reset() = %d, want 10", prev)
	}
	if c.Total() != 0 {
		t.Errorf("Total() after Reset = %d, want 0", c.Total())
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name    string
		cbs     func(log *[]string) []Callback
		wantNil bool
		wantLog []string
	}{
		{
			name:    "no callbacks",
			cbs:     func(*[]string) []Callback { return nil },
			wantNil: true,
		},
		{
			name:    "only nil callbacks",
			cbs:     func(*[]string) []Callback { return []Callback{nil, nil} },
			wantNil: true,
		},
		{
			name: "callbacks run in order",
			cbs: func(log *[]string) []Callback {
				return []Callback{
					func(int) { *log = append(*log, "a") },
					nil,
					func(int) { *log = append(*log, "b") },
				}
			},
			wantLog: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			cb := Chain(tt.cbs(&log)...)
			if (cb == nil) != tt.wantNil {
				t.Fatalf("Chain() nil = %v, want %v", cb == nil, tt.wantNil)
			}
			if cb == nil {
				return
			}
			cb(1)
			if strings.Join(log, ",") != strings.Join(tt.wantLog, ",") {
				t.Errorf("call order = %v, want %v", log, tt.wantLog)
			}
		})
	}
}

func TestChain_WithReader(t *testing.T) {
	first, second := NewCounter(), NewCounter()
	pr := NewReader(strings.NewReader("0123456789"), Chain(first.Callback(), second.Callback()))

	buf := make([]byte, 4)
	for {
		if _, err := pr.Read(buf); err != nil {
			break
		}
	}
	if first.Total() != 10 || second.Total() != 10 {
		t.Errorf("totals = %d, %d, want 10, 10", first.Total(), second.Total())
	}
}
