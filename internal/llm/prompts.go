package llm

import (
	"fmt"
	"strings"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

func translateToEnglishPrompt(text string) string {
	return fmt.Sprintf(`You are a translation assistant. Analyze the following text.
If the text is in English, return it as is.
If the text is in another language (like Assamese, Hindi, Bengali), translate it to English.

Return your response as JSON with the following structure:
{
  "original_language": "detected language name (e.g., 'English', 'Assamese', 'Hindi')",
  "english_text": "the text in English"
}

Text to analyze:
%q

Return ONLY the JSON, no other text.`, text)
}

func extractProfilePrompt(englishText string) string {
	return fmt.Sprintf(`You are a data extraction assistant for a government scheme eligibility system.
Extract the following information from the user's message. If information is not provided, use null.

Fields to extract:
- age: number or null
- gender: "male", "female", or null
- state: Indian state name or null
- occupation: "student", "farmer", "unemployed", "employed", "retired", or null
- annual_income: number (approximate annual family income in INR) or null
- special_conditions: array of strings like ["registered_marriage", "bpl_card_holder"] or empty array

User message:
%q

Return ONLY a valid JSON object with these fields, no other text.`, englishText)
}

func explainPrompt(s scheme.SchemeDefinition, p eligibility.UserProfile, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a helpful assistant explaining government schemes to citizens.

The user qualifies for: %s
Scheme description: %s

User profile:
- Age: %s
- Gender: %s
- State: %s
- Occupation: %s
- Annual Income: %s

Generate a brief, friendly 2-3 sentence explanation of why this user qualifies for the scheme.
`, s.Name, s.Description,
		orUnspecified(intString(p.Age)),
		orUnspecified(derefString(p.Gender)),
		orUnspecified(derefString(p.State)),
		orUnspecified(derefString(p.Occupation)),
		orUnspecified(incomeString(p.AnnualIncome)))
	if language != DefaultLanguage {
		fmt.Fprintf(&b, "Translate your response to %s.\n", language)
	}
	b.WriteString("\nKeep it simple and encouraging. Do not use complex legal terms.")
	return b.String()
}

func translatePrompt(text, targetLanguage string) string {
	return fmt.Sprintf(`Translate the following English text to %s.
Keep any scheme names, document names, and URLs unchanged (do not translate them).
Return only the translated text, nothing else.

Text:
%q`, targetLanguage, text)
}

func answerWithContextPrompt(message string, eligible, potential []scheme.SchemeDefinition, language string) string {
	var ctx strings.Builder
	ctx.WriteString("Available schemes information:\n\n")

	if len(eligible) > 0 {
		ctx.WriteString("ELIGIBLE SCHEMES:\n")
		for _, s := range eligible {
			fmt.Fprintf(&ctx, "- %s: %s\n", s.Name, s.Description)
			if len(s.Documents) > 0 {
				names := make([]string, len(s.Documents))
				for i, d := range s.Documents {
					names[i] = d.Name
				}
				fmt.Fprintf(&ctx, "  Documents: %s\n", strings.Join(names, ", "))
			}
			if len(s.Steps) > 0 {
				fmt.Fprintf(&ctx, "  Steps: %s\n", strings.Join(s.Steps, "; "))
			}
		}
	}

	if len(potential) > 0 {
		ctx.WriteString("\nPOTENTIAL SCHEMES (need more info):\n")
		for _, s := range potential {
			fmt.Fprintf(&ctx, "- %s: %s\n", s.Name, s.Description)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are Saarthi, a helpful government schemes assistant.
Based on the following schemes information (including eligible and potential matches), answer the user's follow-up question.

%s

User question: %q

INSTRUCTIONS:
1. If the user asks about "documents", "required papers", or similar, list the specific documents for the eligible schemes first.
2. If they ask about "how to apply" or "steps", provide the application steps.
3. If they ask about a specific scheme mentioned in the context, focus on that.
4. If there's a typo in the question, interpret the user's intent naturally.
5. Be friendly, encouraging, and clear.
6. If the question is completely unrelated to government schemes or the context, politely guide them back to talking about their eligibility.
7. IMPORTANT: Use plain text only. Do NOT use markdown formatting like ** for bold or * for bullets. Just use simple text with line breaks.
`, ctx.String(), message)
	if language != DefaultLanguage {
		fmt.Fprintf(&b, "\nIMPORTANT: Respond entirely in %s.", language)
	}
	return b.String()
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intString(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}

func incomeString(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("₹%.0f", *v)
}
