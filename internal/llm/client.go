// Package llm is the boundary to the generative-text collaborator. Everything
// here is treated as unreliable: calls may time out, return nothing, or return
// malformed structured output. Callers are expected to substitute their own
// fallback whenever a method returns an error; no method retries.
package llm

import (
	"context"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

// Translation is the result of language detection plus translation to the
// pipeline's common language.
type Translation struct {
	Language    string `json:"original_language"`
	EnglishText string `json:"english_text"`
}

// DefaultLanguage is the pipeline's common language and the fallback when
// detection fails.
const DefaultLanguage = "English"

// InsufficientContextSentinel marks a context-grounded answer that could not
// actually answer the question. Responses containing it are treated as
// non-substantive by the chat pipeline.
const InsufficientContextSentinel = "I don't have enough information"

// Client is the generative-text service surface consumed by the chat
// pipeline.
type Client interface {
	// DetectAndTranslate identifies the language of text and renders it in
	// English.
	DetectAndTranslate(ctx context.Context, text string) (Translation, error)

	// ExtractProfile pulls a structured user profile out of an English
	// message. Fields the message does not mention come back unknown.
	ExtractProfile(ctx context.Context, englishText string) (eligibility.UserProfile, error)

	// Explain generates a short friendly explanation of why the profile
	// qualifies for the scheme, in the given language.
	Explain(ctx context.Context, s scheme.SchemeDefinition, profile eligibility.UserProfile, language string) (string, error)

	// Translate renders English text in the target language. Scheme names,
	// document names and URLs are kept verbatim.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)

	// AnswerWithContext answers a follow-up question grounded in the prior
	// turn's eligible and potential schemes.
	AnswerWithContext(ctx context.Context, message string, eligibleSchemes, potentialSchemes []scheme.SchemeDefinition, language string) (string, error)
}
