package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Tree returns categories with their subcategories and published topics.
// Subcategories without published topics are kept so the navigation stays stable.
func (s *Service) Tree(ctx context.Context) ([]domain.CatalogCategory, error) {
	var (
		categories    []domain.Category
		subcategories []domain.Subcategory
		topics        []domain.Topic
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.catalog.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		subcategories, err = s.catalog.ListSubcategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		topics, err = s.catalog.ListTopics(gctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog.Tree: %w", err)
	}

	return buildTree(categories, subcategories, topics), nil
}

// buildTree assembles the hierarchy, preserving the input order at each level.
// Orphaned rows are dropped.
func buildTree(categories []domain.Category, subcategories []domain.Subcategory, topics []domain.Topic) []domain.CatalogCategory {
	topicsBySub := make(map[uuid.UUID][]domain.Topic)
	for _, t := range topics {
		topicsBySub[t.SubcategoryID] = append(topicsBySub[t.SubcategoryID], t)
	}

	subsByCat := make(map[uuid.UUID][]domain.CatalogSubcategory)
	for _, sub := range subcategories {
		subsByCat[sub.CategoryID] = append(subsByCat[sub.CategoryID], domain.CatalogSubcategory{
			Subcategory: sub,
			Topics:      topicsBySub[sub.ID],
		})
	}

	tree := make([]domain.CatalogCategory, 0, len(categories))
	for _, c := range categories {
		tree = append(tree, domain.CatalogCategory{
			Category:      c,
			Subcategories: subsByCat[c.ID],
		})
	}
	return tree
}
