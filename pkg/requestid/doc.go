// Package requestid tags every HTTP request with an identifier taken from the
// X-Request-ID header, or a fresh UUID when the header is missing or unsafe.
// The id is echoed in the response header and stored in the request context
// for handlers and loggers.
package requestid
