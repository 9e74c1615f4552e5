package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse is reported when a handler returns a nil Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized is reported when streaming is attempted on a
	// request that did not come from the DataStar client.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError pairs a status code with a machine readable key. Message, when
// set, replaces the generic status text shown to the client.
type HTTPError struct {
	Code    int
	Key     string
	Message string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError returns an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// With returns a copy of e with its own key and client message.
func (e HTTPError) With(key, message string) HTTPError {
	e.Key = key
	e.Message = message
	return e
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict              = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable    = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that hands err to the route's error handler
// instead of rendering anything itself.
func Error(err error) Response {
	return errorResponse{err: err}
}
