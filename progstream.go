// Package progstream reports byte counts for io.Reader and io.Writer
// streams through a callback, without changing what the stream returns.
package progstream

import "io"

// Reader wraps r so that cb sees the count of every read.
// A nil cb returns r unchanged.
func Reader(r io.Reader, cb Callback) io.Reader {
	if cb == nil {
		return r
	}
	return NewReader(r, cb)
}

// Writer wraps w so that cb sees the count of every write.
// A nil cb returns w unchanged.
func Writer(w io.Writer, cb Callback) io.Writer {
	if cb == nil {
		return w
	}
	return NewWriter(w, cb)
}

// Ensure our types implement the standard interfaces
var (
	_ io.Reader = (*ProgressReader[io.Reader])(nil)
	_ io.Writer = (*ProgressWriter[io.Writer])(nil)
	_ Flusher   = (*ProgressWriter[io.Writer])(nil)
)
