package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saarthi/internal/chat/metrics"
	"saarthi/internal/eligibility"
	"saarthi/internal/llm"
	"saarthi/internal/scheme"
	"saarthi/pkg/requestcontext"
)

// Catalog is the read-only scheme source the pipeline evaluates against.
type Catalog interface {
	All() []scheme.SchemeDefinition
}

// Service runs the chat pipeline. The eligibility engine in the middle is
// pure and cannot fail; every collaborator call around it is individually
// guarded so a single failure degrades the response instead of aborting it.
type Service struct {
	llm     llm.Client
	catalog Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the chat service.
func New(client llm.Client, catalog Catalog, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{llm: client, catalog: catalog, logger: logger, metrics: m}
}

// Handle processes one chat turn. It never returns an error for collaborator
// failures; those are logged, counted, and replaced by fallbacks.
func (s *Service) Handle(ctx context.Context, req Request) Result {
	start := time.Now()
	requestID := requestcontext.RequestID(ctx)
	s.metrics.IncrementRequests()
	defer s.metrics.ObserveDuration(start)

	// Step 1: language detection + translation into the common language.
	language := llm.DefaultLanguage
	englishMessage := req.Message
	if tr, err := s.llm.DetectAndTranslate(ctx, req.Message); err != nil {
		s.fallback(ctx, requestID, "detect_translate", err)
	} else {
		language = tr.Language
		englishMessage = tr.EnglishText
	}

	// Step 2: structured profile extraction.
	profile := eligibility.EmptyProfile()
	if extracted, err := s.llm.ExtractProfile(ctx, englishMessage); err != nil {
		s.fallback(ctx, requestID, "extract_profile", err)
	} else {
		profile = extracted
	}
	profile = eligibility.Normalize(profile)

	// Step 3: deterministic eligibility matching.
	results := eligibility.Evaluate(profile, s.catalog.All())

	// Step 4: per-scheme explanations, sequential by design; one failed
	// explanation must not cost the others.
	eligibleSchemes := make([]EligibleScheme, 0, len(results.Eligible))
	for _, match := range results.Eligible {
		explanation := fmt.Sprintf("You qualify for %s.", match.Scheme.Name)
		if text, err := s.llm.Explain(ctx, match.Scheme, profile, language); err != nil {
			s.fallback(ctx, requestID, "explain", err)
		} else {
			explanation = text
		}
		eligibleSchemes = append(eligibleSchemes, EligibleScheme{
			SchemeDefinition: match.Scheme,
			WhyEligible:      explanation,
			MatchReasons:     match.Reasons,
			IsRuleBased:      true,
		})
	}

	potentialSchemes := make([]PotentialScheme, 0, len(results.Potential))
	for _, match := range results.Potential {
		potentialSchemes = append(potentialSchemes, PotentialScheme{
			SchemeDefinition: match.Scheme,
			MissingInfo:      match.MissingInfo,
			IsRuleBased:      true,
		})
	}

	s.metrics.AddSchemes("eligible", len(eligibleSchemes))
	s.metrics.AddSchemes("potential", len(potentialSchemes))

	// Step 5: compose the summary, then try the context fallback for
	// follow-up questions when this turn matched nothing new.
	responseText := eligibility.Compose(results.Eligible, results.Potential)
	usedContextFallback := false

	if len(eligibleSchemes) == 0 && (len(req.LastEligible) > 0 || len(req.LastPotential) > 0) {
		answer, err := s.llm.AnswerWithContext(ctx, englishMessage, req.LastEligible, req.LastPotential, language)
		switch {
		case err != nil:
			s.fallback(ctx, requestID, "context_answer", err)
		case answer == "" || strings.Contains(answer, llm.InsufficientContextSentinel):
			// Non-substantive answer; keep the composed response.
		default:
			responseText = answer
			usedContextFallback = true
		}
	}

	// Step 6: translate back unless the context answer already arrived in the
	// user's language.
	if language != llm.DefaultLanguage && !usedContextFallback {
		if translated, err := s.llm.Translate(ctx, responseText, language); err != nil {
			s.fallback(ctx, requestID, "translate_response", err)
		} else {
			responseText = translated
		}
	}

	s.logger.InfoContext(ctx, "chat turn processed",
		"request_id", requestID,
		"language", language,
		"eligible", len(eligibleSchemes),
		"potential", len(potentialSchemes),
		"context_fallback", usedContextFallback,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Result{
		Response:         responseText,
		DetectedLanguage: language,
		ExtractedProfile: profile,
		EligibleSchemes:  eligibleSchemes,
		PotentialSchemes: potentialSchemes,
		IsRuleBased:      true,
	}
}

// fallback records a recovered collaborator failure. Failures here are
// expected operating conditions, not errors to propagate.
func (s *Service) fallback(ctx context.Context, requestID, step string, err error) {
	s.metrics.IncrementFallback(step)
	s.logger.WarnContext(ctx, "collaborator failed, using fallback",
		"request_id", requestID,
		"step", step,
		"error", err,
	)
}
