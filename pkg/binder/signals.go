package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

var errEmptySignals = errors.New("no signals in request")

// Signals binds the signal store sent by the DataStar client. GET requests
// carry it in the "datastar" query parameter, others in the JSON body.
// Signals the target does not declare are ignored.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return ErrBinderNotApplicable
		}

		if r.Method != http.MethodGet && r.Body != nil {
			body, err := readBody(r)
			if err != nil {
				return err
			}
			if len(bytes.TrimSpace(body)) == 0 {
				return fmt.Errorf("%w: %w", ErrFailedToReadSignal, errEmptySignals)
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToReadSignal, err)
		}
		return nil
	}
}
