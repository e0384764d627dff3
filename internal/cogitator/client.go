package cogitator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// #region client-struct
// Client talks to an Ollama server's /api/generate endpoint.
type Client struct {
	cfg    Config
	hc     *http.Client
	logger *zap.Logger
}

// #endregion client-struct

// #region constructor
// NewClient builds a client from cfg. A nil logger is replaced with a no-op.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.URL = strings.TrimSuffix(cfg.URL, "/")
	return &Client{
		cfg:    cfg,
		hc:     &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// NewClientWithHTTP builds a client around an injected *http.Client.
// Used for testing against httptest servers.
func NewClientWithHTTP(cfg Config, hc *http.Client, logger *zap.Logger) *Client {
	c := NewClient(cfg, logger)
	c.hc = hc
	return c
}

// #endregion constructor

// #region generate
// Generate sends prompt with the configured system preamble. It performs a
// single attempt; callers decide what to do with the classified error.
func (c *Client) Generate(ctx context.Context, prompt string) (GenerateResult, error) {
	if !c.cfg.Enabled || c.cfg.URL == "" {
		return GenerateResult{}, ErrUnavailable
	}

	body, err := json.Marshal(generateRequest{
		Model:   c.cfg.Model,
		Prompt:  prompt,
		System:  c.cfg.SystemPrompt,
		Stream:  false,
		Options: generateOptions{Temperature: c.cfg.Temperature},
	})
	if err != nil {
		return GenerateResult{}, fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return GenerateResult{}, fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("cogitator generate", zap.String("model", c.cfg.Model), zap.Int("prompt_len", len(prompt)))

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("cogitator unreachable", zap.String("url", c.cfg.URL), zap.Error(err))
		return GenerateResult{}, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateResult{}, &ConnectionError{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("cogitator returned error status", zap.Int("status", resp.StatusCode))
		return GenerateResult{}, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return GenerateResult{}, fmt.Errorf("decode generate response: %w", err)
	}

	return GenerateResult{Text: gr.Response, Model: gr.Model}, nil
}

// #endregion generate

// #region advise
// Advise satisfies the router's advisory interface.
func (c *Client) Advise(ctx context.Context, prompt string) (string, error) {
	res, err := c.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.cfg.Model }

// #endregion advise
