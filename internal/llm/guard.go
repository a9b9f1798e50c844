package llm

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
	"saarthi/pkg/platform/circuit"
)

// ErrCircuitOpen is returned without calling the model while the breaker is
// open. The chat pipeline treats it like any other collaborator failure.
var ErrCircuitOpen = errors.New("llm: circuit open, skipping model call")

// GuardedClient wraps a Client with a circuit breaker. When the model fails
// repeatedly the breaker opens and calls short-circuit, sparing latency and
// quota while the pipeline keeps serving rule-based fallbacks. Periodic
// probe calls are still let through so recovery is noticed.
type GuardedClient struct {
	inner   Client
	breaker *circuit.Breaker
	logger  *slog.Logger
	blocked atomic.Uint64
}

// NewGuardedClient wraps inner with a breaker.
func NewGuardedClient(inner Client, breaker *circuit.Breaker, logger *slog.Logger) *GuardedClient {
	return &GuardedClient{inner: inner, breaker: breaker, logger: logger}
}

// DetectAndTranslate implements Client.
func (g *GuardedClient) DetectAndTranslate(ctx context.Context, text string) (Translation, error) {
	var tr Translation
	err := g.call(ctx, func() error {
		var err error
		tr, err = g.inner.DetectAndTranslate(ctx, text)
		return err
	})
	return tr, err
}

// ExtractProfile implements Client.
func (g *GuardedClient) ExtractProfile(ctx context.Context, englishText string) (eligibility.UserProfile, error) {
	var profile eligibility.UserProfile
	err := g.call(ctx, func() error {
		var err error
		profile, err = g.inner.ExtractProfile(ctx, englishText)
		return err
	})
	return profile, err
}

// Explain implements Client.
func (g *GuardedClient) Explain(ctx context.Context, s scheme.SchemeDefinition, profile eligibility.UserProfile, language string) (string, error) {
	var out string
	err := g.call(ctx, func() error {
		var err error
		out, err = g.inner.Explain(ctx, s, profile, language)
		return err
	})
	return out, err
}

// Translate implements Client.
func (g *GuardedClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == DefaultLanguage {
		return text, nil
	}
	var out string
	err := g.call(ctx, func() error {
		var err error
		out, err = g.inner.Translate(ctx, text, targetLanguage)
		return err
	})
	return out, err
}

// AnswerWithContext implements Client.
func (g *GuardedClient) AnswerWithContext(ctx context.Context, message string, eligibleSchemes, potentialSchemes []scheme.SchemeDefinition, language string) (string, error) {
	var out string
	err := g.call(ctx, func() error {
		var err error
		out, err = g.inner.AnswerWithContext(ctx, message, eligibleSchemes, potentialSchemes, language)
		return err
	})
	return out, err
}

// call runs fn under the breaker. Every tenth blocked call is let through as
// a probe; a probe success starts closing the breaker.
func (g *GuardedClient) call(ctx context.Context, fn func() error) error {
	if g.breaker.IsOpen() && !g.probe() {
		return ErrCircuitOpen
	}

	if err := fn(); err != nil {
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.logger.WarnContext(ctx, "model circuit opened",
				"breaker", g.breaker.Name(),
				"error", err,
			)
		}
		return err
	}

	if _, change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "model circuit closed", "breaker", g.breaker.Name())
	}
	return nil
}

// probe lets one in every probeInterval blocked calls through while the
// breaker is open.
func (g *GuardedClient) probe() bool {
	return g.blocked.Add(1)%probeInterval == 0
}

const probeInterval = 10
