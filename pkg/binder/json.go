package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// JSON binds an application/json body. Strings are decoded verbatim.
// Requests sent by the DataStar client are left to Signals.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" || IsDataStar(r) {
			return ErrBinderNotApplicable
		}

		body, err := readBody(r)
		if err != nil {
			return err
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}
		return nil
	}
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, DefaultMaxBodySize)
	}
	return body, nil
}
