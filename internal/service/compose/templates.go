package compose

// AnswerTemplate is a recommended outline for a primary answer.
type AnswerTemplate struct {
	Key      string
	Name     string
	Sections []string
}

var answerTemplates = []AnswerTemplate{
	{
		Key:      "concept",
		Name:     "Concept explanation",
		Sections: []string{"Short answer", "How it works", "Example", "Common pitfalls"},
	},
	{
		Key:      "comparison",
		Name:     "Comparison",
		Sections: []string{"Short answer", "Key differences", "When to use which", "Example"},
	},
	{
		Key:      "process",
		Name:     "Step-by-step process",
		Sections: []string{"Short answer", "Steps", "Edge cases", "Follow-up questions"},
	},
	{
		Key:      "practical",
		Name:     "Practical task",
		Sections: []string{"Approach", "Solution", "Complexity", "Alternatives"},
	},
	{
		Key:      "troubleshooting",
		Name:     "Troubleshooting",
		Sections: []string{"Symptoms", "Likely causes", "How to diagnose", "Fix"},
	},
}

const defaultTemplateKey = "concept"

// Templates returns the known answer templates.
func Templates() []AnswerTemplate {
	out := make([]AnswerTemplate, len(answerTemplates))
	copy(out, answerTemplates)
	return out
}

func templateByKey(key string) (AnswerTemplate, bool) {
	for _, t := range answerTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return AnswerTemplate{}, false
}
