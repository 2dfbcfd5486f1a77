// Command smoke-published-question-topic-guardrail runs the publish guardrail
// scenario against a live database and removes everything it created.
//
// Scenario:
//
//  1. create a draft question with no topic links; publishing must fail
//  2. link one published topic; publishing must succeed
//  3. removing that last link must fail while the question is published
//  4. demote the question; removing the link must now succeed
//  5. publishing again must fail until a topic is relinked
//  6. the audit trail holds the accepted edits only, rejected ones roll back
//
// Guardrail rejections are expected; any bypass exits with status 1.
//
// Flags:
//
//	--subcategory  subcategory slug for the scratch topic (default: first one)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/audit"
	catalogrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/catalog"
	questionrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/question"
	topicrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/interviewprep-backend/internal/app"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
)

type smoke struct {
	log       *slog.Logger
	content   *content.Service
	questions *questionrepo.Repo
	topics    *topicrepo.Repo
	audit     *auditrepo.Repo
	auth      domain.AuthContext
	failures  int
}

func main() {
	subcategoryFlag := flag.String("subcategory", "", "subcategory slug for the scratch topic")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	catalogs := catalogrepo.New(pool)
	subcategory, err := pickSubcategory(ctx, catalogs, *subcategoryFlag)
	if err != nil {
		logger.Error("pick subcategory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	s := &smoke{
		log:       logger,
		content:   app.NewServices(logger, pool, cfg).Content,
		questions: questionrepo.New(pool),
		topics:    topicrepo.New(pool),
		audit:     auditrepo.New(pool),
		auth:      domain.AuthContext{UserID: uuid.New(), Role: domain.UserRoleAdmin},
	}

	if err := s.run(ctx, subcategory); err != nil {
		logger.Error("smoke aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if s.failures > 0 {
		logger.Error("guardrail bypassed", slog.Int("failures", s.failures))
		os.Exit(1)
	}
	logger.Info("guardrail smoke passed")
}

func pickSubcategory(ctx context.Context, catalogs *catalogrepo.Repo, slug string) (string, error) {
	if slug != "" {
		sub, err := catalogs.GetSubcategoryBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		return sub.Slug, nil
	}
	subs, err := catalogs.ListSubcategories(ctx)
	if err != nil {
		return "", err
	}
	if len(subs) == 0 {
		return "", errors.New("no subcategories; seed the catalog first")
	}
	return subs[0].Slug, nil
}

func (s *smoke) run(ctx context.Context, subcategory string) error {
	suffix := uuid.NewString()[:8]

	topicRes, err := s.content.CreateTopic(ctx, s.auth, scratchTopic(suffix, subcategory))
	if err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	topic := topicRes.Topic
	defer s.cleanup(topic.ID, "topic", s.topics.Delete)

	question, err := s.questions.Create(ctx, "smoke-q-"+suffix, "Smoke question "+suffix, "")
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	defer s.cleanup(question.ID, "question", s.questions.Delete)

	s.log.Info("scratch rows created",
		slog.String("question", question.Slug),
		slog.String("topic", topic.Slug))

	publish := func() error {
		_, err := s.content.Publish(ctx, s.auth, content.PublishInput{QuestionSlug: question.Slug})
		return err
	}

	s.expectRejected("publish without topics", publish())

	_, err = s.questions.Publish(ctx, question.ID)
	s.expectRejected("raw publish without topics", err)

	if _, err := s.content.SaveDraft(ctx, s.auth, linkDraft(question.Title, question.Slug, topic.Slug)); err != nil {
		return fmt.Errorf("link topic: %w", err)
	}
	s.expectOK("publish with one topic", publish())

	s.expectRejected("unlink last topic of published question", s.questions.UnlinkTopic(ctx, question.ID, topic.ID))

	if _, err := s.content.Unpublish(ctx, s.auth, content.UnpublishInput{QuestionSlug: question.Slug}); err != nil {
		return fmt.Errorf("unpublish: %w", err)
	}
	s.expectOK("unlink topic of draft question", s.questions.UnlinkTopic(ctx, question.ID, topic.ID))

	s.expectRejected("republish without topics", publish())

	return s.checkAudit(ctx, question.Slug, []domain.AuditAction{
		domain.AuditActionUnpublish,
		domain.AuditActionPublish,
		domain.AuditActionSaveDraft,
	})
}

// scratchTopic is the published topic the scenario links and unlinks.
func scratchTopic(suffix, subcategory string) content.CreateTopicInput {
	return content.CreateTopicInput{
		Name:             "Smoke topic " + suffix,
		ShortDescription: "Scratch topic for the publish guardrail smoke run.",
		Slug:             "smoke-topic-" + suffix,
		SubcategorySlug:  subcategory,
		Publish:          true,
	}
}

func linkDraft(title, questionSlug, topicSlug string) content.SaveDraftInput {
	return content.SaveDraftInput{
		Title:              title,
		QuestionSlug:       questionSlug,
		ExistingTopicSlugs: []string{topicSlug},
		AnswerMarkdown:     "Smoke answer.",
	}
}

func (s *smoke) checkAudit(ctx context.Context, slug string, want []domain.AuditAction) error {
	records, err := s.audit.ListByEntity(ctx, domain.AuditEntityQuestion, slug, 0)
	if err != nil {
		return fmt.Errorf("list audit trail: %w", err)
	}
	got := make([]domain.AuditAction, len(records))
	for i, rec := range records {
		got[i] = rec.Action
	}
	if slices.Equal(got, want) {
		s.log.Info("ok", slog.String("step", "audit trail"), slog.Int("records", len(got)))
		return nil
	}
	s.failures++
	s.log.Error("audit trail mismatch", slog.Any("got", got), slog.Any("want", want))
	return nil
}

func (s *smoke) expectRejected(step string, err error) {
	if errors.Is(err, domain.ErrGuardrail) {
		s.log.Info("rejected as expected", slog.String("step", step), slog.String("reason", err.Error()))
		return
	}
	s.failures++
	if err == nil {
		s.log.Error("guardrail bypassed", slog.String("step", step))
		return
	}
	s.log.Error("unexpected error", slog.String("step", step), slog.String("error", err.Error()))
}

func (s *smoke) expectOK(step string, err error) {
	if err == nil {
		s.log.Info("ok", slog.String("step", step))
		return
	}
	s.failures++
	s.log.Error("step failed", slog.String("step", step), slog.String("error", err.Error()))
}

// cleanup runs on a fresh context so rows are removed even after a timeout.
func (s *smoke) cleanup(id uuid.UUID, kind string, del func(context.Context, uuid.UUID) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := del(ctx, id); err != nil {
		s.log.Warn("cleanup failed", slog.String("kind", kind), slog.String("id", id.String()), slog.String("error", err.Error()))
	}
}
