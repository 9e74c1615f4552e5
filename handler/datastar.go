package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/signupkit/pkg/binder"
)

// IsDataStar reports whether r came from the DataStar client and expects
// an event stream back. Binders use the same check to pick the signals
// decoder over the JSON one.
func IsDataStar(r *http.Request) bool {
	return binder.IsDataStar(r)
}

// NewSSE opens a DataStar event stream on w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
