package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedtestDownload(t *testing.T) {
	rs := setupTestServer(t)

	{
		w := doRequest(rs, http.MethodGet, "/speedtest/download?size=4096", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, "4096", w.Header().Get("Content-Length"))
		assert.Equal(t, make([]byte, 4096), w.Body.Bytes())
	}

	{
		w := doRequest(rs, http.MethodGet, "/speedtest/download", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, strconv.Itoa(defaultDownloadBytes), w.Header().Get("Content-Length"))
		assert.Equal(t, defaultDownloadBytes, w.Body.Len())
	}

	for _, bad := range []string{"?size=-1", "?size=60000000", "?size=big"} {
		w := doRequest(rs, http.MethodGet, "/speedtest/download"+bad, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestSpeedtestUpload(t *testing.T) {
	rs := setupTestServer(t)

	payload := bytes.Repeat([]byte{0x5a}, 256*1024)
	req := httptest.NewRequest(http.MethodPost, "/speedtest/upload", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Bytes      int64   `json:"bytes"`
		DurationMs float64 `json:"duration_ms"`
		Mbps       float64 `json:"mbps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(len(payload)), res.Bytes)
	assert.GreaterOrEqual(t, res.DurationMs, 0.0)
	assert.GreaterOrEqual(t, res.Mbps, 0.0)
}

func TestSpeedtestPing(t *testing.T) {
	rs := setupTestServer(t)

	before := time.Now().UnixMilli()
	w := doRequest(rs, http.MethodGet, "/speedtest/ping", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Pong int64 `json:"pong"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.GreaterOrEqual(t, res.Pong, before)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestZeroReader(t *testing.T) {
	buf := []byte{1, 2, 3}
	n, err := zeroReader{}.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0, 0, 0}, buf)
}
