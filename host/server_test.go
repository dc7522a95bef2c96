package host

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return resp.StatusCode, m
}

func TestServerHealth(t *testing.T) {
	app := NewServer(NewChain("devnet:battleship"))
	status, body := doJSON(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
}

func TestServerCallRoundTrip(t *testing.T) {
	app := NewServer(NewChain("devnet:battleship"))

	status, body := doJSON(t, app, http.MethodPost, "/call/b_new",
		`{"sender":"hive:alice","payload":{"player1":"hive:alice"}}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "1", body["result"])

	status, body = doJSON(t, app, http.MethodPost, "/call/b_join",
		`{"sender":"hive:bob","payload":{"gameId":1,"player2":"hive:bob"}}`)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, body["result"])

	status, body = doJSON(t, app, http.MethodGet, "/games/1", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "hive:alice", body["player1"])
	require.Equal(t, "hive:bob", body["player2"])
	require.Equal(t, float64(0), body["status"])
}

func TestServerCallAbort(t *testing.T) {
	app := NewServer(NewChain("devnet:battleship"))

	status, body := doJSON(t, app, http.MethodPost, "/call/b_join",
		`{"sender":"hive:bob","payload":{"gameId":5,"player2":"hive:bob"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "game not found", body["error"])
}

func TestServerCallMissingSender(t *testing.T) {
	app := NewServer(NewChain("devnet:battleship"))

	status, body := doJSON(t, app, http.MethodPost, "/call/b_count",
		`{"payload":{}}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "sender is mandatory", body["error"])
}

func TestServerGameNotFound(t *testing.T) {
	app := NewServer(NewChain("devnet:battleship"))

	status, body := doJSON(t, app, http.MethodGet, "/games/7", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "game not found", body["error"])
}

func TestServerGameCount(t *testing.T) {
	chain := NewChain("devnet:battleship")
	app := NewServer(chain)

	status, body := doJSON(t, app, http.MethodGet, "/games", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "0", body["count"])

	_, err := chain.Invoke("hive:alice", "b_new", `{"player1":"hive:alice"}`)
	require.NoError(t, err)

	_, body = doJSON(t, app, http.MethodGet, "/games", "")
	require.Equal(t, "1", body["count"])
}
