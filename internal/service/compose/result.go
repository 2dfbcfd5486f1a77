package compose

import "github.com/heartmarshall/interviewprep-backend/internal/service/content"

// TopicSuggestion is an existing topic the model thinks fits the question.
type TopicSuggestion struct {
	Slug            string
	Name            string
	SubcategorySlug string
	Reason          string
}

type SuggestTopicsResult struct {
	Suggestions []TopicSuggestion
	// NewTopic is set when the model proposed a topic that does not exist yet.
	// It is ready to be sent back as the inline topic of a draft save.
	NewTopic *content.CreateTopicInput
	Warnings []string
}

type ResolveTemplateResult struct {
	Template AnswerTemplate
	Reason   string
}

type GenerateAnswerResult struct {
	AnswerMarkdown string
	Summary        string
}
