package httputil

import "errors"

// Errors for request parsing that are returned to API consumers.
var (
	ErrInvalidBody      = errors.New("the request body could not be parsed. Please check the body and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
