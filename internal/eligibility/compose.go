package eligibility

import (
	"fmt"
	"strings"
)

// Compose turns classification results into one templated English summary.
// Language concerns live elsewhere; translation is layered on top by the
// chat pipeline. Priority: eligible matches, then potential matches, then a
// prompt for more detail.
func Compose(eligible, potential []MatchResult) string {
	if len(eligible) > 0 {
		names := make([]string, len(eligible))
		for i, m := range eligible {
			names[i] = "**" + m.Scheme.Name + "**"
		}
		return fmt.Sprintf("Based on the information you provided, I found %d scheme(s) you may be eligible for: %s!",
			len(eligible), strings.Join(names, ", "))
	}
	if len(potential) > 0 {
		return "I found some schemes that might be relevant, but I need a bit more information to confirm your eligibility."
	}
	return "I couldn't find matching schemes based on the information provided. " +
		"Could you tell me more about yourself? For example: your age, state, occupation, and family income."
}
