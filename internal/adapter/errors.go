package adapter

import "errors"

// Status-derived errors. mapHTTPError wraps them with the response body so
// callers can match with errors.Is and still read the server message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrRequestFailed wraps failures that produced no HTTP response at all:
	// refused connections, DNS errors, timeouts.
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedResponse means a 2xx response body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)
