package async

import "errors"

var (
	ErrWaitAborted = errors.New("async: stopped waiting for future")
	ErrPanic       = errors.New("async: function panicked")
)
