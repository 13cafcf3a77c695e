package cli

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/config"
	"github.com/dmitrijs2005/addressbook/internal/client/storage"
	"github.com/dmitrijs2005/addressbook/internal/logging"
	"github.com/dmitrijs2005/addressbook/internal/stubapi"
	"github.com/stretchr/testify/require"
)

// capturePrintln sends REPL output into buf for the duration of the test.
func capturePrintln(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
}

// pipedStdin makes GetPassword read from the app's reader.
func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func stubServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(stubapi.New([]byte("test-secret")).Router())
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(url string) *config.Config {
	var c config.Config
	c.LoadDefaults()
	c.APIBaseURL = url
	c.Storage = storage.BackendMemory
	c.RequestTimeout = 5 * time.Second
	return &c
}

// newTestApp builds an App against baseURL with a fresh memory store and the
// given lines as stdin. Everything printed ends up in the returned buffer.
func newTestApp(t *testing.T, baseURL string, lines ...string) (*App, *bytes.Buffer, *storage.MemoryStore) {
	t.Helper()
	pipedStdin(t)

	var out bytes.Buffer
	capturePrintln(t, &out)

	api, err := client.NewHTTPClient(baseURL, time.Second)
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return newApp(testConfig(baseURL), store, api, logging.Nop(), in, &out), &out, store
}
