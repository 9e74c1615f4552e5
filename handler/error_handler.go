package handler

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"

	"github.com/dmitrymomot/signupkit/pkg/binder"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

// ErrorInfo is an error classified for the client.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

func (i ErrorInfo) detail() *ErrorDetail {
	return &ErrorDetail{Code: i.Code, Message: i.Message, Details: i.Details}
}

// Kind is the status kind shown next to the message: "warning" for client
// errors, "error" otherwise.
func (i ErrorInfo) Kind() string {
	if i.StatusCode >= http.StatusBadRequest && i.StatusCode < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

// ClassifyError maps err to a status code and client message.
func ClassifyError(err error) ErrorInfo {
	return classifyError(err)
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var (
		httpErr   HTTPError
		verr      ValidationError
		fieldsErr binder.FieldErrors
	)

	switch {
	case errors.As(err, &verr):
		info.StatusCode = ErrUnprocessableEntity.Code
		info.Code = "validation_error"
		info.Message = verr.Error()
		info.Details = maps.Clone(map[string][]string(verr))
	case validator.IsValidationError(err):
		verr = ValidationErrorFrom(validator.ExtractValidationErrors(err))
		info.StatusCode = ErrUnprocessableEntity.Code
		info.Code = "validation_error"
		info.Message = verr.Error()
		info.Details = map[string][]string(verr)
	case errors.Is(err, binder.ErrInvalidPayload):
		info.StatusCode = http.StatusBadRequest
		info.Code = "invalid_payload"
		info.Message = "Request payload is invalid"
		if errors.As(err, &fieldsErr) {
			info.Details = maps.Clone(map[string][]string(fieldsErr))
		}
	case errors.Is(err, binder.ErrRequestTooLarge):
		info.StatusCode = ErrRequestEntityTooLarge.Code
		info.Code = ErrRequestEntityTooLarge.Key
		info.Message = http.StatusText(info.StatusCode)
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParsePath),
		errors.Is(err, binder.ErrFailedToReadSignal):
		info.StatusCode = ErrBadRequest.Code
		info.Code = ErrBadRequest.Key
		info.Message = "Malformed request"
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = httpErr.Message
		if info.Message == "" {
			info.Message = http.StatusText(httpErr.Code)
		}
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns the error handler used by every signup route.
// It logs the error with the request ID, then answers DataStar requests
// with a status signal patch and everything else with a JSON error body.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		var resp Response
		if IsDataStar(r) {
			resp = Signals(map[string]any{
				"submitting": false,
				"status": map[string]string{
					"message": info.Message,
					"kind":    info.Kind(),
				},
			})
		} else {
			resp = jsonResponse{status: info.StatusCode, body: JSONResponse{Error: info.detail()}}
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
				logger.Component("error_handler"),
			)
		}
	}
}
