package compose

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

type resolveTemplateOutput struct {
	Template string   `json:"template"`
	Sections []string `json:"sections"`
	Reason   string   `json:"reason"`
}

// ResolveTemplate picks the answer outline that fits the question. The model
// may rename sections; an empty outline falls back to the template default.
func (s *Service) ResolveTemplate(ctx context.Context, auth domain.AuthContext, input ResolveTemplateInput) (*ResolveTemplateResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out resolveTemplateOutput
	err := s.llm.CompleteJSON(ctx, llm.Request{
		System: composerSystemPrompt,
		Prompt: resolveTemplatePrompt(input.QuestionDraft),
		Schema: resolveTemplateSchema,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("compose.ResolveTemplate: %w", err)
	}

	tmpl, ok := templateByKey(out.Template)
	if !ok {
		tmpl, _ = templateByKey(defaultTemplateKey)
	}

	var sections []string
	for _, sec := range out.Sections {
		if sec = strings.TrimSpace(sec); sec != "" {
			sections = append(sections, sec)
		}
	}
	if len(sections) > 0 {
		tmpl.Sections = sections
	}

	s.log.InfoContext(ctx, "template resolved",
		slog.String("user_id", auth.UserID.String()),
		slog.String("template", tmpl.Key))

	return &ResolveTemplateResult{Template: tmpl, Reason: strings.TrimSpace(out.Reason)}, nil
}
