package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open DataStar event stream.
type StreamContext interface {
	Context
	// SendSignals patches the client's signal store with v, which must
	// marshal to a JSON object.
	SendSignals(v any) error
	// SendSignal patches a single top-level signal.
	SendSignal(name string, value any) error
}

// SSEHandler drives an event stream until it returns or the client leaves.
type SSEHandler func(ctx StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendSignals(v any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) SendSignal(name string, value any) error {
	return c.SendSignals(map[string]any{name: value})
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE responds with an event stream driven by h. Non-DataStar requests get
// a 400.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
