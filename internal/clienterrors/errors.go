package clienterrors

import "errors"

// Transport-level errors
var (
	ErrRequestFailed = errors.New("request failed")
	ErrBadEnvelope   = errors.New("malformed response envelope")
)

// Client state errors
var (
	ErrNoUser          = errors.New("no user loaded")
	ErrRouteNotFound   = errors.New("route not found")
	ErrUnknownCurrency = errors.New("unknown currency code")
)
