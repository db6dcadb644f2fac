package exchange

import "errors"

//
// ErrMissingCredentials is returned by any signed call made on a client that was not constructed
// with both an API key and an API secret. It is a usage error and is always returned before any
// network traffic happens.
//
var ErrMissingCredentials = errors.New("api key and secret must be set")

//
// APIError generically provides an interface to objects that represent a first-class error provided
// in the response of a request against a cryptocurrency exchange's API.
//
type APIError interface {
	error

	//
	// ErrorCode returns the actual error code provided by the API (if there was one).
	//
	ErrorCode() int

	//
	// ErrorMessage returns the actual error message provided by the API.
	//
	ErrorMessage() string
}
