package execctx

import "errors"

// Errors returned by context validation.
var (
	ErrMissingEngine  = errors.New("execution context missing engine")
	ErrMissingCursors = errors.New("execution context missing cursors")
)
