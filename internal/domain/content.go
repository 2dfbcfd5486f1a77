package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top level of the catalog hierarchy.
type Category struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subcategory groups topics inside a category.
type Subcategory struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Slug        string
	Name        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Topic is a subject area that questions are linked to.
type Topic struct {
	ID               uuid.UUID
	Slug             string
	Name             string
	ShortDescription string
	SubcategoryID    uuid.UUID
	Status           ContentStatus
	PublishedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Question is an interview question. Its displayed answer is the primary Answer.
type Question struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Summary     string
	Status      ContentStatus
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuestionTopic links a question to a topic. SortOrder leaves gaps of 10 so
// links can be reordered by hand.
type QuestionTopic struct {
	QuestionID uuid.UUID
	TopicID    uuid.UUID
	SortOrder  int
}

// Answer is markdown content attached to a question.
type Answer struct {
	ID              uuid.UUID
	QuestionID      uuid.UUID
	IsPrimary       bool
	Status          ContentStatus
	ContentMarkdown string
	PublishedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TopicLabel is a topic together with the names of its catalog parents,
// used to build category labels in composer responses.
type TopicLabel struct {
	TopicID         uuid.UUID
	TopicSlug       string
	TopicName       string
	SubcategorySlug string
	SubcategoryName string
	CategorySlug    string
	CategoryName    string
}

// CategoryLabel renders "Category / Subcategory".
func (l TopicLabel) CategoryLabel() string {
	return l.CategoryName + " / " + l.SubcategoryName
}

// SortOrderForIndex returns the sort_order of the i-th (0-based) link.
func SortOrderForIndex(i int) int {
	return (i + 1) * 10
}

// CatalogCategory is a category with its subcategories for the public catalog tree.
type CatalogCategory struct {
	Category
	Subcategories []CatalogSubcategory
}

// CatalogSubcategory is a subcategory with its published topics.
type CatalogSubcategory struct {
	Subcategory
	Topics []Topic
}

// PublishedQuestion is a published question flattened with its primary
// answer and linked topic slugs, as read for listings and data sync.
type PublishedQuestion struct {
	Question
	AnswerMarkdown string
	TopicSlugs     []string
}

// QuestionDetail is a question with its primary answer and topics.
type QuestionDetail struct {
	Question
	Answer *Answer
	Topics []TopicLabel
}

// QuestionFilter narrows published question listings.
type QuestionFilter struct {
	TopicSlug string
	Limit     int
	Offset    int
}
