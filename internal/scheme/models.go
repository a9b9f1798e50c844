// Package scheme defines the welfare scheme catalog records. Schemes are
// loaded once at startup and shared read-only across requests.
package scheme

// Document is one required document for a scheme application.
type Document struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Eligibility is a scheme's eligibility predicate. Every criterion is
// optional; a nil/empty field means that dimension is unconstrained. A scheme
// with no criteria at all is vacuously eligible for everyone.
type Eligibility struct {
	State           *string  `json:"state,omitempty"`
	MinAge          *int     `json:"min_age,omitempty"`
	MaxAge          *int     `json:"max_age,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
	MaxAnnualIncome *float64 `json:"max_annual_income,omitempty"`
	Occupation      *string  `json:"occupation,omitempty"`
	// TargetGroups lists accepted gender/category tags. The sentinel "all"
	// makes the criterion pass unconditionally.
	TargetGroups     []string `json:"target_groups,omitempty"`
	SpecialCondition *string  `json:"special_condition,omitempty"`
}

// SchemeDefinition is one government welfare scheme.
type SchemeDefinition struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Documents    []Document  `json:"documents"`
	Steps        []string    `json:"steps"`
	OfficialLink string      `json:"official_link,omitempty"`
	Eligibility  Eligibility `json:"eligibility"`
}

// TargetGroupAll is the sentinel tag meaning the target_groups criterion
// accepts everyone.
const TargetGroupAll = "all"
