package progstream

import "io"

// ProgressReader wraps an io.Reader and reports every read to a Callback.
// Data and errors pass through untouched.
type ProgressReader[R io.Reader] struct {
	src      R
	callback Callback
	released bool
}

// NewReader takes ownership of r and cb. The caller must not use r
// directly until it is returned by Unwrap.
func NewReader[R io.Reader](r R, cb Callback) *ProgressReader[R] {
	return &ProgressReader[R]{
		src:      r,
		callback: cb,
	}
}

// Read implements io.Reader.
//
// The callback fires once per call with the count returned by the inner
// reader, including zero for an empty buffer or at io.EOF. It is skipped
// only when the inner reader fails with any other error and moves no bytes.
func (pr *ProgressReader[R]) Read(p []byte) (int, error) {
	if pr.released {
		return 0, ErrReleased
	}
	n, err := pr.src.Read(p)
	if err == nil || n > 0 || err == io.EOF {
		pr.callback.report(n)
	}
	return n, err
}

// Unwrap releases the inner reader and drops the callback. Later calls to
// Read return ErrReleased.
func (pr *ProgressReader[R]) Unwrap() R {
	var zero R
	src := pr.src
	pr.src = zero
	pr.callback = nil
	pr.released = true
	return src
}
