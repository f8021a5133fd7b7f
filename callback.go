package progstream

import "errors"

// Callback receives the number of bytes moved by a single successful
// Read or Write. It is never called concurrently by the same wrapper.
type Callback func(n int)

// ErrReleased is returned by a wrapper after Unwrap handed the inner
// stream back to the caller.
var ErrReleased = errors.New("progstream: stream released")

func (cb Callback) report(n int) {
	if cb != nil {
		cb(n)
	}
}
