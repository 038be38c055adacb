// Package assist talks to the external text-to-configuration service.
// Every failure mode degrades to the local interpreter, so callers
// always get a usable result.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuinmax/verandaplanner/pkg/config"
	"github.com/tuinmax/verandaplanner/pkg/interpret"
)

const (
	// historyTurns is how many previous user inputs ride along with a
	// request. The service only needs enough context for pronouns and
	// relative wishes.
	historyTurns = 2

	requestTimeout = 10 * time.Second

	// maxResponseBytes caps how much of a response body is decoded.
	maxResponseBytes = 1 << 20
)

type request struct {
	RequestID string   `json:"request_id"`
	Text      string   `json:"text"`
	History   []string `json:"history,omitempty"`
}

type response struct {
	Config  *config.Configuration `json:"config"`
	Changes []string              `json:"changes"`
	Error   string                `json:"error,omitempty"`
}

// Client is safe for concurrent use. Responses carry a sequence number
// taken at request time; a response that arrives after a later request
// has already been applied is reported stale instead of applied.
type Client struct {
	Logger zerolog.Logger

	baseURL string
	apiKey  string
	httpc   *http.Client

	mu          sync.Mutex
	seq         uint64
	lastApplied uint64
	history     []string
}

// NewClient builds a client for the service at baseURL. An empty apiKey
// sends unauthenticated requests, which the dev service accepts.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		Logger:  zerolog.Nop(),
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Interpret sends the text to the service and returns the resulting
// partial configuration. On any failure it falls back to the local
// regex interpreter. The second return value is false when a newer
// request was applied in the meantime; the caller must discard the
// result then.
func (c *Client) Interpret(ctx context.Context, text string, prev *config.Configuration) (interpret.Result, bool) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	hist := append([]string(nil), c.history...)
	c.mu.Unlock()

	res, err := c.call(ctx, text, hist)
	if err != nil {
		c.Logger.Warn().Err(err).Str("text", text).Msg("assist service failed, using local interpreter")
		res = interpret.Interpret(text, prev)
	}
	return c.commit(seq, text, res)
}

func (c *Client) call(ctx context.Context, text string, history []string) (interpret.Result, error) {
	body, err := json.Marshal(request{
		RequestID: uuid.NewString(),
		Text:      text,
		History:   history,
	})
	if err != nil {
		return interpret.Result{}, fmt.Errorf("encoding assist request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/interpret", bytes.NewReader(body))
	if err != nil {
		return interpret.Result{}, fmt.Errorf("building assist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return interpret.Result{}, fmt.Errorf("calling assist service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interpret.Result{}, fmt.Errorf("assist service returned %s", resp.Status)
	}

	var out response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return interpret.Result{}, fmt.Errorf("decoding assist response: %w", err)
	}
	if out.Error != "" {
		return interpret.Result{}, fmt.Errorf("assist service error: %s", out.Error)
	}
	if out.Config == nil {
		return interpret.Result{}, fmt.Errorf("assist response carries no configuration")
	}

	return interpret.Result{
		Config:  config.Sanitize(*out.Config),
		Changes: out.Changes,
	}, nil
}

// commit applies the recency guard and records the turn in the history.
func (c *Client) commit(seq uint64, text string, res interpret.Result) (interpret.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.lastApplied {
		c.Logger.Debug().Uint64("seq", seq).Uint64("applied", c.lastApplied).Msg("stale assist response discarded")
		return res, false
	}
	c.lastApplied = seq

	c.history = append(c.history, text)
	if len(c.history) > historyTurns {
		c.history = c.history[len(c.history)-historyTurns:]
	}
	return res, true
}
