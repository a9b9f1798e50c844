package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saarthi/internal/eligibility"
	"saarthi/internal/scheme"
)

func TestCleanJSONResponse(t *testing.T) {
	cases := map[string]string{
		"{\"a\": 1}":                      `{"a": 1}`,
		"```json\n{\"a\": 1}\n```":        `{"a": 1}`,
		"```\n{\"a\": 1}\n```":            `{"a": 1}`,
		"  \n```json\n{\"a\": 1}\n```\n ": `{"a": 1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanJSONResponse(in))
	}
}

func TestExplainPromptFillsUnknownsAsNotSpecified(t *testing.T) {
	s := scheme.SchemeDefinition{Name: "Orunodoi", Description: "Monthly support"}

	prompt := explainPrompt(s, eligibility.EmptyProfile(), DefaultLanguage)

	assert.Contains(t, prompt, "Orunodoi")
	assert.Contains(t, prompt, "Age: Not specified")
	assert.Contains(t, prompt, "State: Not specified")
	assert.NotContains(t, prompt, "Translate your response")
}

func TestExplainPromptRequestsTranslation(t *testing.T) {
	s := scheme.SchemeDefinition{Name: "Orunodoi"}

	prompt := explainPrompt(s, eligibility.EmptyProfile(), "Assamese")

	assert.Contains(t, prompt, "Translate your response to Assamese.")
}

func TestAnswerWithContextPromptIncludesDocumentsAndSteps(t *testing.T) {
	eligible := []scheme.SchemeDefinition{{
		Name:        "Pragyan Bharati Scholarship",
		Description: "Fee waiver for students",
		Documents: []scheme.Document{
			{Name: "Admission Receipt"},
			{Name: "Income Certificate"},
		},
		Steps: []string{"Register on the portal", "Upload documents"},
	}}
	potential := []scheme.SchemeDefinition{{Name: "Orunodoi", Description: "Monthly support"}}

	prompt := answerWithContextPrompt("what documents do I need?", eligible, potential, "Hindi")

	assert.Contains(t, prompt, "ELIGIBLE SCHEMES:")
	assert.Contains(t, prompt, "Documents: Admission Receipt, Income Certificate")
	assert.Contains(t, prompt, "Steps: Register on the portal; Upload documents")
	assert.Contains(t, prompt, "POTENTIAL SCHEMES (need more info):")
	assert.Contains(t, prompt, "Respond entirely in Hindi.")
}
