package binder

import (
	"mime"
	"net/http"
	"strings"
)

const (
	// DataStarRequestHeader is set by the DataStar client on every request it sends.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarAcceptHeader is the Accept value the DataStar client sends.
	DataStarAcceptHeader = "text/event-stream"
)

// DefaultMaxBodySize caps the bytes a body binder will read.
const DefaultMaxBodySize = 64 << 10

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// IsDataStar reports whether r came from the DataStar client. Its body, if
// any, carries the client's signals rather than a plain JSON document.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) != "" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has("datastar")
}
