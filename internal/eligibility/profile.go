// Package eligibility implements the deterministic rule engine that matches a
// partially-known user profile against the scheme catalog. Everything in this
// package is pure computation: no I/O, no clock, no external calls.
package eligibility

// UserProfile is the structured self-description extracted from a user's
// message. A nil pointer is the explicit "unknown" value for that field,
// distinct from any known value; extraction is unreliable so every field is
// independently optional.
type UserProfile struct {
	Age               *int     `json:"age"`
	Gender            *string  `json:"gender"`
	State             *string  `json:"state"`
	Occupation        *string  `json:"occupation"`
	AnnualIncome      *float64 `json:"annual_income"`
	SpecialConditions []string `json:"special_conditions"`
}

// EmptyProfile is the all-unknown profile used when extraction fails.
func EmptyProfile() UserProfile {
	return UserProfile{SpecialConditions: []string{}}
}
