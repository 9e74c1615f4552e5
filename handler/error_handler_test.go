package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/binder"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	rules := validator.ValidationErrors{
		{Field: "name", Message: "At least 3 characters"},
		{Field: "email", Message: "Invalid email format"},
	}

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		kind   string
	}{
		{"generic", errors.New("db down"), http.StatusInternalServerError, "internal_server_error", "error"},
		{"http error", fmt.Errorf("lookup: %w", handler.ErrConflict), http.StatusConflict, "conflict", "warning"},
		{"rule failures", errors.Join(errors.New("form invalid"), rules), http.StatusUnprocessableEntity, "validation_error", "warning"},
		{"payload guard", errors.Join(binder.ErrInvalidPayload, binder.FieldErrors{"name": {"too long"}}), http.StatusBadRequest, "invalid_payload", "warning"},
		{"malformed json", fmt.Errorf("%w: eof", binder.ErrFailedToParseJSON), http.StatusBadRequest, "bad_request", "warning"},
		{"too large", binder.ErrRequestTooLarge, http.StatusRequestEntityTooLarge, "request_entity_too_large", "warning"},
		{"unavailable", handler.ErrServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.kind, info.Kind())
		})
	}

	t.Run("http error with its own message", func(t *testing.T) {
		err := errors.Join(handler.ErrConflict.With("email_taken", "Email already registered"), errors.New("duplicate"))
		info := handler.ClassifyError(err)
		assert.Equal(t, http.StatusConflict, info.StatusCode)
		assert.Equal(t, "email_taken", info.Code)
		assert.Equal(t, "Email already registered", info.Message)

		assert.Equal(t, http.StatusText(http.StatusConflict), handler.ClassifyError(handler.ErrConflict).Message)
	})

	t.Run("rule failures keep per field details", func(t *testing.T) {
		info := handler.ClassifyError(rules)
		assert.Equal(t, map[string][]string{
			"name":  {"At least 3 characters"},
			"email": {"Invalid email format"},
		}, info.Details)
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		assert.Equal(t, slog.LevelError, handler.ClassifyError(errors.New("x")).LogLevel)
		assert.Equal(t, slog.LevelWarn, handler.ClassifyError(handler.ErrNotFound).LogLevel)
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("json for plain requests", func(t *testing.T) {
		var logs bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&logs, nil))
		h := handler.NewErrorHandler(log)

		req := httptest.NewRequest(http.MethodPost, "/signup/check/age", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-1"))
		rec := httptest.NewRecorder()

		h(handler.NewContext(rec, req), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.EqualValues(t, http.StatusNotFound, entry["status_code"])
		assert.Equal(t, "error_handler", entry["component"])
	})

	t.Run("signal patch for datastar requests", func(t *testing.T) {
		h := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		req := dataStarRequest(http.MethodPost, "/signup/")
		rec := httptest.NewRecorder()

		h(handler.NewContext(rec, req), errors.New("boom"))

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"kind":"error"`)
		assert.Contains(t, body, `"submitting":false`)
	})
}
