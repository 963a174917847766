package traffic

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Result is the outcome of a single request attempt. It is consumed into
// RunStats immediately; scenarios never retry or abort on a failed Result.
type Result struct {
	OK        bool
	LatencyMS float64
	Data      map[string]any // parsed body on HTTP 200
	ErrText   string         // error text or response body otherwise
}

// chatResponse extracts the optional usage fields from a success response.
// Any other shape is tolerated; missing fields contribute zero.
type chatResponse struct {
	Tokens struct {
		TotalTokens int64 `json:"total_tokens"`
	} `json:"tokens"`
	Cost struct {
		TotalCostUSD float64 `json:"total_cost_usd"`
	} `json:"cost"`
}

// Dispatcher sends individual requests to the chat endpoint and folds each
// outcome into the shared statistics. It never returns an error to the
// scenario layer; every attempt yields a Result.
type Dispatcher struct {
	baseURL string
	chat    *http.Client
	probe   *http.Client
	stats   *RunStats
	logger  zerolog.Logger
}

// NewDispatcher builds a dispatcher for the configured base URL. A trailing
// slash on the URL is stripped so route concatenation stays predictable.
func NewDispatcher(cfg Config, stats *RunStats, logger zerolog.Logger) *Dispatcher {
	c := cfg
	_ = c.validate()
	return &Dispatcher{
		baseURL: c.BaseURL,
		chat:    &http.Client{Timeout: chatTimeout},
		probe:   &http.Client{Timeout: probeTimeout},
		stats:   stats,
		logger:  logger,
	}
}

// SendChat issues one well-formed chat request and classifies the outcome.
// Latency is wall clock from just before send to response-read completion.
func (d *Dispatcher) SendChat(ctx context.Context, message string, safeMode bool) Result {
	payload := map[string]any{"message": message, "safe_mode": safeMode}

	start := time.Now()
	status, body, err := d.post(ctx, d.chat, payload)
	latencyMS := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		// A canceled run aborts the in-flight request; that attempt never
		// completed and is not classified.
		if ctx.Err() == nil {
			d.stats.RecordError(latencyMS)
			d.logger.Error().
				Float64("latency_ms", latencyMS).
				Str("error", truncate(err.Error(), 100)).
				Msg("Request failed")
		}
		return Result{OK: false, LatencyMS: latencyMS, ErrText: err.Error()}
	}

	if status != http.StatusOK {
		d.stats.RecordError(latencyMS)
		d.logger.Error().
			Int("status", status).
			Float64("latency_ms", latencyMS).
			Str("body", truncate(string(body), 100)).
			Msg("Request rejected")
		return Result{OK: false, LatencyMS: latencyMS, ErrText: string(body)}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		d.stats.RecordError(latencyMS)
		d.logger.Error().
			Float64("latency_ms", latencyMS).
			Str("error", err.Error()).
			Msg("Malformed response body")
		return Result{OK: false, LatencyMS: latencyMS, ErrText: err.Error()}
	}

	var usage chatResponse
	_ = json.Unmarshal(body, &usage)

	d.stats.RecordSuccess(latencyMS, usage.Tokens.TotalTokens, usage.Cost.TotalCostUSD)
	d.logger.Info().
		Float64("latency_ms", latencyMS).
		Str("prompt", truncate(message, 50)).
		Msg("Chat ok")
	return Result{OK: true, LatencyMS: latencyMS, Data: data}
}

// SendMalformed issues an arbitrary JSON body the endpoint is expected to
// reject. A non-200 answer is the desired outcome here, but the counters
// keep their usual meaning: rejections land in the error counter, and an
// unexpected 200 still counts as a success.
func (d *Dispatcher) SendMalformed(ctx context.Context, payload map[string]any) Result {
	start := time.Now()
	status, body, err := d.post(ctx, d.probe, payload)
	latencyMS := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		if ctx.Err() == nil {
			d.stats.RecordError(latencyMS)
			d.logger.Error().
				Float64("latency_ms", latencyMS).
				Str("error", truncate(err.Error(), 100)).
				Msg("Probe failed")
		}
		return Result{OK: false, LatencyMS: latencyMS, ErrText: err.Error()}
	}

	if status != http.StatusOK {
		d.stats.RecordError(latencyMS)
		d.logger.Info().
			Int("status", status).
			Float64("latency_ms", latencyMS).
			Msg("Expected rejection")
		return Result{OK: false, LatencyMS: latencyMS, ErrText: string(body)}
	}

	d.stats.RecordSuccess(latencyMS, 0, 0)
	d.logger.Warn().
		Float64("latency_ms", latencyMS).
		Msg("Unexpected success for malformed request")
	return Result{OK: true, LatencyMS: latencyMS}
}

// post sends one JSON POST to the chat route and returns status and body.
func (d *Dispatcher) post(ctx context.Context, client *http.Client, payload map[string]any) (int, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/chat", bytes.NewReader(raw))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
