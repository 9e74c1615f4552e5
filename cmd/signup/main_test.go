package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/environment"
	"github.com/dmitrymomot/signupkit/pkg/httpserver"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
)

func TestRun(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := appConfig{
		Name: "signupkit-test",
		Signup: signupConfig{
			SubmitDelay: 0,
			SuccessRate: 1,
			BcryptCost:  4,

			SubmitBurst:          5,
			SubmitRefillInterval: time.Minute,
		},
		HTTP: httpserver.Config{Addr: addr, ShutdownTimeout: time.Second},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, environment.Development, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	var resp *http.Response
	for range 50 {
		resp, err = http.Get("http://" + addr + "/health/ready")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "READY", string(body))
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))

	resp, err = http.Get("http://" + addr + "/signup/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		require.Fail(t, "server did not stop")
	}
}
