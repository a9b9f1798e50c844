package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	"saarthi/internal/scheme"
)

// Status is the three-way classification of one (profile, scheme) pair.
type Status string

const (
	StatusEligible      Status = "eligible"
	StatusNeedsMoreInfo Status = "needs_more_info"
	StatusNotEligible   Status = "not_eligible"
)

// MatchResult records the evaluation of one scheme against one profile.
// Matched starts true and may only flip to false. Reasons are appended in
// criterion evaluation order. MissingInfo is an ordered, deduplicated list of
// the profile fields needed to complete the decision.
type MatchResult struct {
	Scheme      scheme.SchemeDefinition
	Matched     bool
	Reasons     []string
	MissingInfo []string
}

// Status derives the classification from the accumulated state.
func (m *MatchResult) Status() Status {
	if !m.Matched {
		return StatusNotEligible
	}
	if len(m.MissingInfo) == 0 {
		return StatusEligible
	}
	return StatusNeedsMoreInfo
}

func (m *MatchResult) fail(reason string) {
	m.Matched = false
	m.Reasons = append(m.Reasons, reason)
}

func (m *MatchResult) pass(reason string) {
	m.Reasons = append(m.Reasons, reason)
}

func (m *MatchResult) needs(field string) {
	for _, f := range m.MissingInfo {
		if f == field {
			return
		}
	}
	m.MissingInfo = append(m.MissingInfo, field)
}

// Results groups the surviving classifications. Schemes whose Matched flag
// flipped to false appear in neither list: the system never reports which
// schemes rejected a user, only which they qualify for or could qualify for
// with more information.
type Results struct {
	Eligible  []MatchResult
	Potential []MatchResult
}

// Evaluate runs every scheme's eligibility predicate against the normalized
// profile. Missing information is never disqualifying: an unknown field marks
// the criterion as needing follow-up, while only a known violating value
// excludes a scheme. Criteria absent from a predicate contribute nothing.
func Evaluate(profile UserProfile, schemes []scheme.SchemeDefinition) Results {
	var res Results
	for _, s := range schemes {
		m := evaluateScheme(profile, s)
		switch m.Status() {
		case StatusEligible:
			res.Eligible = append(res.Eligible, m)
		case StatusNeedsMoreInfo:
			res.Potential = append(res.Potential, m)
		}
	}
	return res
}

// evaluateScheme applies each defined criterion in fixed order: state, age
// bounds, gender, income, occupation, target groups, special condition. The
// order is observable through Reasons and must not change.
func evaluateScheme(p UserProfile, s scheme.SchemeDefinition) MatchResult {
	m := MatchResult{Scheme: s, Matched: true}
	e := s.Eligibility

	if e.State != nil {
		if p.State != nil {
			if *p.State != strings.ToLower(*e.State) {
				m.fail(fmt.Sprintf("Requires residence in %s", *e.State))
			} else {
				m.pass(fmt.Sprintf("You are a resident of %s", *e.State))
			}
		} else {
			m.needs("state")
		}
	}

	if e.MinAge != nil {
		if p.Age != nil {
			if *p.Age < *e.MinAge {
				m.fail(fmt.Sprintf("Minimum age is %d", *e.MinAge))
			} else {
				m.pass(fmt.Sprintf("You meet the minimum age requirement (%d+)", *e.MinAge))
			}
		} else {
			m.needs("age")
		}
	}

	if e.MaxAge != nil {
		if p.Age != nil {
			if *p.Age > *e.MaxAge {
				m.fail(fmt.Sprintf("Maximum age is %d", *e.MaxAge))
			} else {
				m.pass(fmt.Sprintf("You meet the age requirement (up to %d)", *e.MaxAge))
			}
		} else {
			m.needs("age")
		}
	}

	if e.Gender != nil {
		if p.Gender != nil {
			if *p.Gender != strings.ToLower(*e.Gender) {
				m.fail(fmt.Sprintf("This scheme is for %s applicants", *e.Gender))
			} else {
				m.pass(fmt.Sprintf("This scheme is available for %s applicants", *e.Gender))
			}
		} else {
			m.needs("gender")
		}
	}

	if e.MaxAnnualIncome != nil {
		if p.AnnualIncome != nil {
			if *p.AnnualIncome > *e.MaxAnnualIncome {
				m.fail(fmt.Sprintf("Family income must be below ₹%s/year", formatAmount(*e.MaxAnnualIncome)))
			} else {
				m.pass("Your income is within the eligible range")
			}
		} else {
			m.needs("annual_income")
		}
	}

	if e.Occupation != nil {
		if p.Occupation != nil {
			if *p.Occupation != strings.ToLower(*e.Occupation) {
				m.fail(fmt.Sprintf("This scheme is intended for %s applicants", *e.Occupation))
			} else {
				m.pass(fmt.Sprintf("You are a %s", *e.Occupation))
			}
		} else {
			m.needs("occupation")
		}
	}

	if len(e.TargetGroups) > 0 {
		hasAll := contains(e.TargetGroups, scheme.TargetGroupAll)
		inGroup := p.Gender != nil && contains(e.TargetGroups, *p.Gender)
		if !hasAll && !inGroup {
			// Never a hard fail on missing data alone: an unknown gender
			// defers the decision instead of rejecting.
			if p.Gender != nil {
				m.fail(fmt.Sprintf("Target group: %s", strings.Join(e.TargetGroups, ", ")))
			} else {
				m.needs("gender")
			}
		}
	}

	if e.SpecialCondition != nil {
		if len(p.SpecialConditions) > 0 {
			if !contains(p.SpecialConditions, *e.SpecialCondition) {
				m.fail(fmt.Sprintf("Requires: %s", spaced(*e.SpecialCondition)))
			} else {
				m.pass(fmt.Sprintf("You meet the special requirement: %s", spaced(*e.SpecialCondition)))
			}
		} else {
			m.needs("special_conditions")
		}
	}

	return m
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func spaced(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

// formatAmount renders an income ceiling with thousands separators, e.g.
// 200000 -> "200,000".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if frac != "" {
		out += "." + frac
	}
	return out
}
