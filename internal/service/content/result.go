package content

import (
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// SaveDraftResult is returned by SaveDraft.
type SaveDraftResult struct {
	QuestionSlug   string
	TopicSlugs     []string
	CategoryLabels []string
	PreviewURL     string
	Warnings       []string
}

// PublishResult is returned by Publish.
type PublishResult struct {
	QuestionSlug        string
	Status              domain.ContentStatus
	PublishedAt         *time.Time
	PublishedTopicSlugs []string
	AlreadyPublished    bool
	Warnings            []string
}

// UnpublishResult is returned by Unpublish.
type UnpublishResult struct {
	QuestionSlug string
	Status       domain.ContentStatus
	WasPublished bool
}

// TopicResult is returned by CreateTopic.
type TopicResult struct {
	Topic    domain.Topic
	Created  bool
	Warnings []string
}
