package cogitator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// #region helpers
func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.URL = url
	cfg.Timeout = 5 * time.Second
	return cfg
}

func ollamaServer(t *testing.T, status int, body string, seen *generateRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// #endregion helpers

// #region generate-tests
func TestGenerate_Success(t *testing.T) {
	var seen generateRequest
	srv := ollamaServer(t, http.StatusOK, `{"model":"llama3","response":"the geometry hums","done":true}`, &seen)
	c := NewClient(testConfig(srv.URL+"/"), zaptest.NewLogger(t))

	res, err := c.Generate(context.Background(), "what lies below?")
	require.NoError(t, err)
	assert.Equal(t, "the geometry hums", res.Text)
	assert.Equal(t, "llama3", res.Model)

	assert.Equal(t, DefaultModel, seen.Model)
	assert.Equal(t, "what lies below?", seen.Prompt)
	assert.Equal(t, DefaultSystemPrompt, seen.System)
	assert.False(t, seen.Stream)
	assert.InDelta(t, DefaultTemperature, seen.Options.Temperature, 1e-9)
}

func TestGenerate_StatusError(t *testing.T) {
	srv := ollamaServer(t, http.StatusInternalServerError, `{"error":"model not loaded"}`, nil)
	c := NewClient(testConfig(srv.URL), zaptest.NewLogger(t))

	_, err := c.Generate(context.Background(), "hello")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se), "expected StatusError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Contains(t, se.Body, "model not loaded")
}

func TestGenerate_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(testConfig(url), zaptest.NewLogger(t))
	_, err := c.Generate(context.Background(), "hello")
	require.Error(t, err)

	var ce *ConnectionError
	assert.True(t, errors.As(err, &ce), "expected ConnectionError, got %T", err)
}

func TestGenerate_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	c := NewClient(cfg, nil)

	_, err := c.Generate(context.Background(), "hello")
	var ce *ConnectionError
	require.True(t, errors.As(err, &ce), "expected ConnectionError on timeout, got %v", err)
}

func TestGenerate_BadJSON(t *testing.T) {
	srv := ollamaServer(t, http.StatusOK, `not json`, nil)
	c := NewClient(testConfig(srv.URL), nil)

	_, err := c.Generate(context.Background(), "hello")
	require.Error(t, err)

	var se *StatusError
	var ce *ConnectionError
	assert.False(t, errors.As(err, &se))
	assert.False(t, errors.As(err, &ce))
}

func TestGenerate_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	_, err := NewClient(cfg, nil).Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)

	cfg = DefaultConfig()
	cfg.URL = ""
	_, err = NewClient(cfg, nil).Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

// #endregion generate-tests

// #region advise-tests
func TestAdvise_ReturnsText(t *testing.T) {
	srv := ollamaServer(t, http.StatusOK, `{"response":"collaborate"}`, nil)
	c := NewClientWithHTTP(testConfig(srv.URL), srv.Client(), nil)

	text, err := c.Advise(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "collaborate", text)
	assert.Equal(t, DefaultModel, c.Model())
}

// #endregion advise-tests
