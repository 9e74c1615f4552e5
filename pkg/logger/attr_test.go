package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestIdentifiers(t *testing.T) {
	attr := logger.RequestID("abc")
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))

	attr = logger.AccountID("0190c2d4")
	assert.Equal(t, "account_id", attr.Key)
	assert.Equal(t, "0190c2d4", attr.Value.String())
	assert.True(t, logger.AccountID("").Equal(slog.Attr{}))
}

func TestValidationAttrs(t *testing.T) {
	assert.Equal(t, "field", logger.Field("email").Key)
	assert.Equal(t, "email", logger.Field("email").Value.String())

	assert.Equal(t, "rule", logger.Rule("signup.email.format").Key)
	assert.True(t, logger.Rule("").Equal(slog.Attr{}))

	valid := logger.Valid(true)
	assert.Equal(t, "valid", valid.Key)
	assert.True(t, valid.Value.Bool())
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "duration", logger.Duration(time.Second).Key)
	assert.Equal(t, "signup", logger.Component("signup").Value.String())
	assert.Equal(t, "account_created", logger.Event("account_created").Value.String())
	assert.Equal(t, "check", logger.Handler("check").Value.String())
}
