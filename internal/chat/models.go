// Package chat is the orchestration boundary: it sequences the optional
// language, extraction, explanation and translation calls around the
// deterministic eligibility engine, substituting a named fallback whenever a
// collaborator fails.
package chat

import (
	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

// Turn is one prior exchange in the conversation. Accepted for wire
// compatibility; the pipeline itself is stateless and only uses the explicit
// scheme context lists below.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the POST /api/chat payload. Message is the only required field.
// The two scheme lists carry the previous turn's results back from the
// client; they feed the context fallback and nothing else.
type Request struct {
	Message             string                    `json:"message"`
	ConversationHistory []Turn                    `json:"conversationHistory,omitempty"`
	LastEligible        []scheme.SchemeDefinition `json:"lastEligibleSchemes,omitempty"`
	LastPotential       []scheme.SchemeDefinition `json:"lastPotentialSchemes,omitempty"`
}

// EligibleScheme is a catalog scheme the user qualifies for, annotated with
// the generated explanation and the engine's reasons.
type EligibleScheme struct {
	scheme.SchemeDefinition
	WhyEligible  string   `json:"why_eligible"`
	MatchReasons []string `json:"match_reasons"`
	IsRuleBased  bool     `json:"is_rule_based"`
}

// PotentialScheme is a scheme that needs more information to decide.
type PotentialScheme struct {
	scheme.SchemeDefinition
	MissingInfo []string `json:"missing_info"`
	IsRuleBased bool     `json:"is_rule_based"`
}

// Result is the chat pipeline output, serialized as the /api/chat response
// body.
type Result struct {
	Response         string                  `json:"response"`
	DetectedLanguage string                  `json:"detected_language"`
	ExtractedProfile eligibility.UserProfile `json:"extracted_profile"`
	EligibleSchemes  []EligibleScheme        `json:"eligible_schemes"`
	PotentialSchemes []PotentialScheme       `json:"potential_schemes"`
	IsRuleBased      bool                    `json:"is_rule_based"`
}
