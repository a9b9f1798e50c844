package llm

import (
	"context"
	"errors"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

// ErrDisabled is returned by DisabledClient for every call.
var ErrDisabled = errors.New("llm: no API key configured")

// DisabledClient is the Client used when no API key is configured. Every call
// fails immediately, so the chat pipeline runs entirely on its deterministic
// fallbacks.
type DisabledClient struct{}

// NewDisabledClient returns a client whose calls always fail.
func NewDisabledClient() *DisabledClient {
	return &DisabledClient{}
}

func (*DisabledClient) DetectAndTranslate(context.Context, string) (Translation, error) {
	return Translation{}, ErrDisabled
}

func (*DisabledClient) ExtractProfile(context.Context, string) (eligibility.UserProfile, error) {
	return eligibility.UserProfile{}, ErrDisabled
}

func (*DisabledClient) Explain(context.Context, scheme.SchemeDefinition, eligibility.UserProfile, string) (string, error) {
	return "", ErrDisabled
}

func (*DisabledClient) Translate(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}

func (*DisabledClient) AnswerWithContext(context.Context, string, []scheme.SchemeDefinition, []scheme.SchemeDefinition, string) (string, error) {
	return "", ErrDisabled
}
