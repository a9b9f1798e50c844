package eligibility

import (
	"strings"

	platformstrings "saarthi/pkg/platform/strings"
)

// Normalize canonicalizes the comparable string fields (state, gender,
// occupation) to lower case so criterion matching is case-insensitive, and
// dedupes the special condition tags. Other fields pass through untouched;
// unknown stays unknown. No validation happens here: the evaluator tolerates
// any value shape.
func Normalize(p UserProfile) UserProfile {
	p.State = lower(p.State)
	p.Gender = lower(p.Gender)
	p.Occupation = lower(p.Occupation)
	if len(p.SpecialConditions) > 0 {
		p.SpecialConditions = platformstrings.DedupeAndTrimLower(p.SpecialConditions)
	}
	return p
}

func lower(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}
