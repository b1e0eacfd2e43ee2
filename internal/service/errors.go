package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// status codes; anything not wrapping one of these is an internal error.
var (
	ErrValidation = errors.New("validation")      // 400
	ErrConflict   = errors.New("already exists")  // 400
	ErrNotFound   = errors.New("not found")       // 404
)
