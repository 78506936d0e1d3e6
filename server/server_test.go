package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/server"
	"github.com/katalvlaran/lvlmaze/service"
	"github.com/katalvlaran/lvlmaze/transport/mcp"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.MaxDimension = 50
	svc, err := service.New(cfg)
	require.NoError(t, err)
	srv := server.NewServer(svc, server.Options{
		DefaultWidth:  5,
		DefaultHeight: 4,
		MCP:           mcp.NewServer(svc, "test"),
	})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestMazeJSON(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/maze?width=4&height=3&seed=8&solve=true")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "8", resp.Header.Get("X-Maze-Seed"))
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	var view service.View
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, resp.Header.Get("X-Maze-Id"), view.ID)
	assert.Equal(t, 4, view.Width)
	assert.Equal(t, 3, view.Height)
	assert.Len(t, view.Removed, 11)
	assert.Equal(t, 0, view.Solution[0])
	assert.Equal(t, 11, view.Solution[len(view.Solution)-1])

	resp, _ = get(t, ts.URL+"/api/maze?width=4&height=3&seed=8&solve=true")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
}

func TestMazeDefaults(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts.URL+"/api/maze")
	var view service.View
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 5, view.Width)
	assert.Equal(t, 4, view.Height)
}

func TestMazeRendered(t *testing.T) {
	ts := newTestServer(t)
	cases := []struct {
		ext, contentType, prefix string
	}{
		{"svg", "image/svg+xml", "<svg "},
		{"png", "image/png", "\x89PNG"},
		{"txt", "text/plain; charset=utf-8", "+---+---+---+\n"},
	}
	for _, tc := range cases {
		t.Run(tc.ext, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/api/maze."+tc.ext+"?width=3&height=2&seed=1")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.contentType, resp.Header.Get("Content-Type"))
			assert.True(t, strings.HasPrefix(string(body), tc.prefix), "body starts with %q", body[:8])
		})
	}

	resp, _ := get(t, ts.URL+"/api/maze.gif")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMazeErrors(t *testing.T) {
	ts := newTestServer(t)
	cases := []struct {
		query  string
		status int
	}{
		{"width=abc", http.StatusBadRequest},
		{"seed=1.5", http.StatusBadRequest},
		{"solve=maybe", http.StatusBadRequest},
		{"width=0", http.StatusBadRequest},
		{"height=-2", http.StatusBadRequest},
		{"width=51", http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/api/maze?"+tc.query)
			assert.Equal(t, tc.status, resp.StatusCode)
			var e map[string]string
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e["error"])
		})
	}
}

func TestMCPEndpoint(t *testing.T) {
	ts := newTestServer(t)
	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`
	resp, err := http.Post(ts.URL+"/mcp", "application/json", strings.NewReader(initialize))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"lvlmaze"`)
}

func dialWS(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketStream(t *testing.T) {
	ts := newTestServer(t)
	conn := dialWS(t, ts, "width=3&height=2&seed=1&delay=1ms")
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first server.Message
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, server.TypeGrid, first.Type)
	assert.Equal(t, 3, first.Width)
	assert.Equal(t, 2, first.Height)
	assert.InDelta(t, 500.0/3, first.Scale, 1e-9)

	for seq := 1; seq <= 5; seq++ {
		var msg server.Message
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, server.TypeErase, msg.Type)
		assert.Equal(t, seq, msg.Seq)
		assert.Len(t, msg.Cells, 2)
		assert.Len(t, msg.Line, 4)
	}

	var last server.Message
	require.NoError(t, conn.ReadJSON(&last))
	assert.Equal(t, server.TypeComplete, last.Type)
	require.NotNil(t, last.Result)
	assert.Equal(t, 5, last.Result.Connections)
	assert.Equal(t, int64(1), last.Result.Seed)

	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
}

func TestWebSocketRejectsBadRequest(t *testing.T) {
	ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?width=0"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	url = "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?delay=soon"
	_, resp, err = websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
