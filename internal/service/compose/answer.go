package compose

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
)

type generateAnswerOutput struct {
	AnswerMarkdown string `json:"answerMarkdown"`
	Summary        string `json:"summary"`
}

// GenerateAnswer drafts answer markdown for the editor to review. Nothing is saved.
func (s *Service) GenerateAnswer(ctx context.Context, auth domain.AuthContext, input GenerateAnswerInput) (*GenerateAnswerResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := input.TemplateKey
	if key == "" {
		key = defaultTemplateKey
	}
	tmpl, _ := templateByKey(key)

	var out generateAnswerOutput
	err := s.llm.CompleteJSON(ctx, llm.Request{
		System: composerSystemPrompt,
		Prompt: generateAnswerPrompt(input.QuestionDraft, tmpl, input.TopicSlugs),
		Schema: generateAnswerSchema,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("compose.GenerateAnswer: %w", err)
	}

	answer := strings.TrimSpace(out.AnswerMarkdown)
	if len(answer) > content.MaxAnswerLength {
		return nil, fmt.Errorf("%w: generated answer exceeds %d bytes", domain.ErrUpstream, content.MaxAnswerLength)
	}

	summary := strings.TrimSpace(out.Summary)
	if strings.TrimSpace(input.Summary) != "" {
		summary = strings.TrimSpace(input.Summary)
	}
	if len(summary) > content.MaxSummaryLength {
		summary = summary[:content.MaxSummaryLength]
	}

	s.log.InfoContext(ctx, "answer generated",
		slog.String("user_id", auth.UserID.String()),
		slog.String("template", tmpl.Key),
		slog.Int("answer_bytes", len(answer)))

	return &GenerateAnswerResult{AnswerMarkdown: answer, Summary: summary}, nil
}
