package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/fracdiv/internal/store"
)

// Recorder persists LLM request events. store.EventRepo satisfies it.
type Recorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider records every call to the wrapped provider, both as a
// structured log line and, when a Recorder is set, as a stored event.
type LoggingProvider struct {
	inner    Provider
	provider string
	rec      Recorder
	logger   zerolog.Logger
}

// WithLogging wraps p. rec may be nil.
func WithLogging(p Provider, provider string, rec Recorder, logger zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, provider: provider, rec: rec, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if c := LookupCost(data.Model); c != nil {
		data.CostUSD = c.Cost(data.InputTokens, data.OutputTokens)
	}

	ev := l.logger.Debug()
	if err != nil {
		data.ErrorMessage = err.Error()
		ev = l.logger.Warn().Err(err)
	}
	ev.Str("provider", data.Provider).
		Str("model", data.Model).
		Str("purpose", data.Purpose).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Dur("latency", latency).
		Msg("llm request")

	if l.rec != nil {
		if recErr := l.rec.AppendLLMRequest(ctx, data); recErr != nil {
			l.logger.Warn().Err(recErr).Msg("record llm request event")
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// describeRequest renders the request for the event log.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
