package compose

import "github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"

var suggestTopicsSchema = llm.MustCompileSchema("suggest_topics", `{
	"type": "object",
	"required": ["topics"],
	"properties": {
		"topics": {
			"type": "array",
			"maxItems": 10,
			"items": {
				"type": "object",
				"required": ["slug"],
				"properties": {
					"slug": {"type": "string"},
					"reason": {"type": "string"}
				}
			}
		},
		"newTopic": {
			"type": ["object", "null"],
			"required": ["name", "subcategorySlug"],
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"subcategorySlug": {"type": "string"},
				"shortDescription": {"type": "string"}
			}
		}
	}
}`)

var resolveTemplateSchema = llm.MustCompileSchema("resolve_template", `{
	"type": "object",
	"required": ["template"],
	"properties": {
		"template": {"enum": ["concept", "comparison", "process", "practical", "troubleshooting"]},
		"sections": {
			"type": "array",
			"maxItems": 8,
			"items": {"type": "string", "minLength": 1}
		},
		"reason": {"type": "string"}
	}
}`)

var generateAnswerSchema = llm.MustCompileSchema("generate_answer", `{
	"type": "object",
	"required": ["answerMarkdown"],
	"properties": {
		"answerMarkdown": {"type": "string", "minLength": 1},
		"summary": {"type": "string"}
	}
}`)
