package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

// GeminiClient implements Client on top of the Gemini API. Each call is
// bounded by the configured timeout; a timeout surfaces as an ordinary error
// so the caller's fallback applies.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

// DetectAndTranslate implements Client.
func (c *GeminiClient) DetectAndTranslate(ctx context.Context, text string) (Translation, error) {
	raw, err := c.generate(ctx, translateToEnglishPrompt(text))
	if err != nil {
		return Translation{}, err
	}

	var tr Translation
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &tr); err != nil {
		return Translation{}, fmt.Errorf("parse translation response: %w", err)
	}
	if tr.Language == "" || tr.EnglishText == "" {
		return Translation{}, fmt.Errorf("incomplete translation response")
	}
	return tr, nil
}

// ExtractProfile implements Client.
func (c *GeminiClient) ExtractProfile(ctx context.Context, englishText string) (eligibility.UserProfile, error) {
	raw, err := c.generate(ctx, extractProfilePrompt(englishText))
	if err != nil {
		return eligibility.UserProfile{}, err
	}

	var profile eligibility.UserProfile
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &profile); err != nil {
		return eligibility.UserProfile{}, fmt.Errorf("parse profile response: %w", err)
	}
	if profile.SpecialConditions == nil {
		profile.SpecialConditions = []string{}
	}
	return profile, nil
}

// Explain implements Client.
func (c *GeminiClient) Explain(ctx context.Context, s scheme.SchemeDefinition, profile eligibility.UserProfile, language string) (string, error) {
	return c.generate(ctx, explainPrompt(s, profile, language))
}

// Translate implements Client. Target "English" short-circuits.
func (c *GeminiClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == DefaultLanguage {
		return text, nil
	}
	return c.generate(ctx, translatePrompt(text, targetLanguage))
}

// AnswerWithContext implements Client.
func (c *GeminiClient) AnswerWithContext(ctx context.Context, message string, eligibleSchemes, potentialSchemes []scheme.SchemeDefinition, language string) (string, error) {
	return c.generate(ctx, answerWithContextPrompt(message, eligibleSchemes, potentialSchemes, language))
}

// Close closes the underlying API client. genai.Client holds no resources
// that need releasing, so this is a no-op.
func (c *GeminiClient) Close() error {
	return nil
}

// generate runs one bounded model call and returns the trimmed response text.
// An empty response is an error: the pipeline must fall back rather than emit
// a blank answer.
func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// cleanJSONResponse removes markdown code fences the model sometimes wraps
// around JSON output.
func cleanJSONResponse(resp string) string {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	return strings.TrimSpace(resp)
}
