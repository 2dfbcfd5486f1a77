package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// SyncResult counts rows written to the target.
type SyncResult struct {
	Categories    int
	Subcategories int
	Topics        int
	Questions     int
	// Skipped lists questions that have no topic present in the snapshot.
	// Publishing them would violate the topic guardrail on the target.
	Skipped []string
}

// Syncer writes snapshots into a target database, upserting by slug.
type Syncer struct {
	target catalogWriter
	tx     txManager
	log    *slog.Logger
}

func NewSyncer(log *slog.Logger, target catalogWriter, tx txManager) *Syncer {
	return &Syncer{
		target: target,
		tx:     tx,
		log:    log.With("service", "catalog_sync"),
	}
}

// Apply writes the snapshot in one transaction. Parents are written before
// children and topics before the questions that link to them, so the target
// never holds a published question without a published topic.
func (s *Syncer) Apply(ctx context.Context, snap *Snapshot) (*SyncResult, error) {
	res := &SyncResult{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		*res = SyncResult{}
		topicIDs := make(map[string]uuid.UUID)

		for _, c := range snap.Categories {
			catID, err := s.target.UpsertCategory(txCtx, domain.Category{
				Slug: c.Slug, Name: c.Name, Description: c.Description, SortOrder: c.SortOrder,
			})
			if err != nil {
				return fmt.Errorf("upsert category %s: %w", c.Slug, err)
			}
			res.Categories++

			for _, sub := range c.Subcategories {
				subID, err := s.target.UpsertSubcategory(txCtx, domain.Subcategory{
					Slug: sub.Slug, Name: sub.Name, Description: sub.Description, SortOrder: sub.SortOrder,
				}, catID)
				if err != nil {
					return fmt.Errorf("upsert subcategory %s: %w", sub.Slug, err)
				}
				res.Subcategories++

				for _, t := range sub.Topics {
					id, err := s.target.UpsertPublishedTopic(txCtx, domain.Topic{
						Slug: t.Slug, Name: t.Name, ShortDescription: t.ShortDescription, PublishedAt: t.PublishedAt,
					}, subID)
					if err != nil {
						return fmt.Errorf("upsert topic %s: %w", t.Slug, err)
					}
					topicIDs[t.Slug] = id
					res.Topics++
				}
			}
		}

		for _, q := range snap.Questions {
			ids := make([]uuid.UUID, 0, len(q.TopicSlugs))
			for _, slug := range q.TopicSlugs {
				if id, ok := topicIDs[slug]; ok {
					ids = append(ids, id)
				}
			}
			if len(ids) == 0 {
				res.Skipped = append(res.Skipped, q.Slug)
				continue
			}

			err := s.target.UpsertPublishedQuestion(txCtx, domain.PublishedQuestion{
				Question: domain.Question{
					Slug:        q.Slug,
					Title:       q.Title,
					Summary:     q.Summary,
					Status:      domain.ContentStatusPublished,
					PublishedAt: q.PublishedAt,
				},
				AnswerMarkdown: q.AnswerMarkdown,
				TopicSlugs:     q.TopicSlugs,
			}, ids)
			if err != nil {
				return fmt.Errorf("upsert question %s: %w", q.Slug, err)
			}
			res.Questions++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "catalog synced",
		slog.Int("categories", res.Categories),
		slog.Int("subcategories", res.Subcategories),
		slog.Int("topics", res.Topics),
		slog.Int("questions", res.Questions),
		slog.Int("skipped", len(res.Skipped)))

	for _, slug := range res.Skipped {
		s.log.WarnContext(ctx, "question skipped: no topic in snapshot", slog.String("slug", slug))
	}

	return res, nil
}
