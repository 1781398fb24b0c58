// Package api implements the client for the remote Success Tech Lab
// REST API. It is the single chokepoint for outbound calls: every
// request goes through Client.do, which attaches the bearer credential
// and normalizes failures into the Fault taxonomy.
//
// The client performs no retries, never clears a session and never
// redirects; those policy decisions belong to the HTTP handlers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a client for the backend described by cfg.
func New(cfg config.BackendAPI, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// errorBody is the shape the backend uses for failure responses.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one request against the backend. A non-empty token is sent
// as a bearer credential; an empty token omits the header entirely. The
// returned error is always a *Fault.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	const op = "api.do"

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return &Fault{Kind: FaultNetwork, Message: "request could not be prepared", Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return &Fault{Kind: FaultNetwork, Message: "request could not be prepared", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("backend unreachable",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			sl.Err(err))
		return &Fault{Kind: FaultNetwork, Message: "the service is temporarily unavailable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Fault{Kind: FaultNetwork, Message: "the service is temporarily unavailable", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := FaultServer
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = FaultAuth
		}
		msg := "request failed"
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
			msg = eb.Message
		}
		c.log.Warn("backend rejected request",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return &Fault{Kind: kind, Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Fault{Kind: FaultServer, Status: resp.StatusCode, Message: "unexpected response from the service", Err: err}
		}
	}
	return nil
}
