package handler

import (
	"encoding/json"
	"net/http"
)

type signalsResponse struct {
	signals any
	status  int
}

// Render patches the DataStar signal store for DataStar requests and falls
// back to a JSON body with the same payload under "data" otherwise.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return JSON(s.signals, WithJSONStatus(s.status)).Render(w, r)
	}

	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}
	return NewSSE(w, r).PatchSignals(data)
}

// Signals responds with a signal patch. v must marshal to a JSON object.
func Signals(v any) Response {
	return signalsResponse{signals: v, status: http.StatusOK}
}

// SignalsWithStatus is Signals with the status used for the JSON fallback.
// Event streams are always 200.
func SignalsWithStatus(status int, v any) Response {
	return signalsResponse{signals: v, status: status}
}
