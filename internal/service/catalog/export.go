package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Export reads the whole published catalog into a Snapshot. The hierarchy and
// the question pages are loaded concurrently.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	var (
		tree      []domain.CatalogCategory
		questions []domain.PublishedQuestion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tree, err = s.Tree(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.allPublishedQuestions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog.Export: %w", err)
	}

	snap := &Snapshot{
		ExportedAt: time.Now().UTC(),
		Categories: make([]SnapshotCategory, 0, len(tree)),
		Questions:  make([]SnapshotQuestion, 0, len(questions)),
	}
	for _, c := range tree {
		sc := SnapshotCategory{
			Slug:          c.Slug,
			Name:          c.Name,
			Description:   c.Description,
			SortOrder:     c.SortOrder,
			Subcategories: make([]SnapshotSubcategory, 0, len(c.Subcategories)),
		}
		for _, sub := range c.Subcategories {
			ss := SnapshotSubcategory{
				Slug:        sub.Slug,
				Name:        sub.Name,
				Description: sub.Description,
				SortOrder:   sub.SortOrder,
				Topics:      make([]SnapshotTopic, 0, len(sub.Topics)),
			}
			for _, t := range sub.Topics {
				ss.Topics = append(ss.Topics, SnapshotTopic{
					Slug:             t.Slug,
					Name:             t.Name,
					ShortDescription: t.ShortDescription,
					PublishedAt:      t.PublishedAt,
				})
			}
			sc.Subcategories = append(sc.Subcategories, ss)
		}
		snap.Categories = append(snap.Categories, sc)
	}
	for _, q := range questions {
		snap.Questions = append(snap.Questions, SnapshotQuestion{
			Slug:           q.Slug,
			Title:          q.Title,
			Summary:        q.Summary,
			PublishedAt:    q.PublishedAt,
			AnswerMarkdown: q.AnswerMarkdown,
			TopicSlugs:     q.TopicSlugs,
		})
	}

	cats, subs, topics, qs := snap.Counts()
	s.log.InfoContext(ctx, "catalog exported",
		slog.Int("categories", cats),
		slog.Int("subcategories", subs),
		slog.Int("topics", topics),
		slog.Int("questions", qs))

	return snap, nil
}

func (s *Service) allPublishedQuestions(ctx context.Context) ([]domain.PublishedQuestion, error) {
	var all []domain.PublishedQuestion
	for offset := 0; ; offset += exportPageSize {
		page, err := s.catalog.ListPublishedQuestions(ctx, domain.QuestionFilter{Limit: exportPageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("list published questions: %w", err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}
