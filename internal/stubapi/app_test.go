package stubapi

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]string{"-a", ":9999", "-x", "ignored", "-l=debug"})
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "secretKey", cfg.SecretKey)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestApp_ServesAndShutsDown(t *testing.T) {
	var logs bytes.Buffer
	cfg := &Config{}
	cfg.LoadDefaults()
	app := NewApp(cfg, logging.New("info", &logs))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/users?limit=1")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Contains(t, logs.String(), "path=/users")
	assert.Contains(t, logs.String(), "status=200")
}
