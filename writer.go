package progstream

import "io"

// Flusher is implemented by sinks that buffer output, such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// ProgressWriter wraps an io.Writer and reports every write to a Callback.
type ProgressWriter[W io.Writer] struct {
	dst      W
	callback Callback
	released bool
}

// NewWriter takes ownership of w and cb. The caller must not use w
// directly until it is returned by Unwrap.
func NewWriter[W io.Writer](w W, cb Callback) *ProgressWriter[W] {
	return &ProgressWriter[W]{
		dst:      w,
		callback: cb,
	}
}

// Write implements io.Writer.
//
// The callback receives the count the inner writer reports, which can be
// less than len(p) on a short write. A failed write that moved no bytes is
// not reported.
func (pw *ProgressWriter[W]) Write(p []byte) (int, error) {
	if pw.released {
		return 0, ErrReleased
	}
	n, err := pw.dst.Write(p)
	if err == nil || n > 0 {
		pw.callback.report(n)
	}
	return n, err
}

// Flush forwards to the inner writer when it implements Flusher and is a
// no-op otherwise. It never calls the callback.
func (pw *ProgressWriter[W]) Flush() error {
	if pw.released {
		return ErrReleased
	}
	if f, ok := any(pw.dst).(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Unwrap releases the inner writer without flushing it and drops the
// callback. Later calls return ErrReleased.
func (pw *ProgressWriter[W]) Unwrap() W {
	var zero W
	dst := pw.dst
	pw.dst = zero
	pw.callback = nil
	pw.released = true
	return dst
}
