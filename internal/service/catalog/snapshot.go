package catalog

import (
	"time"
)

// Snapshot is a self-contained copy of the published catalog, keyed by slug
// so it can be written to another database.
type Snapshot struct {
	ExportedAt time.Time          `json:"exportedAt" yaml:"exported_at"`
	Categories []SnapshotCategory `json:"categories" yaml:"categories"`
	Questions  []SnapshotQuestion `json:"questions" yaml:"questions"`
}

type SnapshotCategory struct {
	Slug          string                `json:"slug" yaml:"slug"`
	Name          string                `json:"name" yaml:"name"`
	Description   string                `json:"description,omitempty" yaml:"description,omitempty"`
	SortOrder     int                   `json:"sortOrder" yaml:"sort_order"`
	Subcategories []SnapshotSubcategory `json:"subcategories" yaml:"subcategories"`
}

type SnapshotSubcategory struct {
	Slug        string          `json:"slug" yaml:"slug"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	SortOrder   int             `json:"sortOrder" yaml:"sort_order"`
	Topics      []SnapshotTopic `json:"topics" yaml:"topics"`
}

type SnapshotTopic struct {
	Slug             string     `json:"slug" yaml:"slug"`
	Name             string     `json:"name" yaml:"name"`
	ShortDescription string     `json:"shortDescription,omitempty" yaml:"short_description,omitempty"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty" yaml:"published_at,omitempty"`
}

type SnapshotQuestion struct {
	Slug           string     `json:"slug" yaml:"slug"`
	Title          string     `json:"title" yaml:"title"`
	Summary        string     `json:"summary,omitempty" yaml:"summary,omitempty"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty" yaml:"published_at,omitempty"`
	AnswerMarkdown string     `json:"answerMarkdown" yaml:"answer_markdown"`
	TopicSlugs     []string   `json:"topicSlugs" yaml:"topic_slugs"`
}

// Counts summarizes a snapshot for logging.
func (s *Snapshot) Counts() (categories, subcategories, topics, questions int) {
	for _, c := range s.Categories {
		categories++
		for _, sub := range c.Subcategories {
			subcategories++
			topics += len(sub.Topics)
		}
	}
	return categories, subcategories, topics, len(s.Questions)
}
