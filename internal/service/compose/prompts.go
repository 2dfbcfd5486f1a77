package compose

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

const composerSystemPrompt = `You help editors of a technical interview preparation site.
Answer with a single JSON object and nothing else. Do not invent facts about the catalog:
only use topic and subcategory slugs that appear in the prompt.`

func writeDraft(b *strings.Builder, d QuestionDraft) {
	fmt.Fprintf(b, "Question title: %s\n", strings.TrimSpace(d.Title))
	if s := strings.TrimSpace(d.Summary); s != "" {
		fmt.Fprintf(b, "Summary: %s\n", s)
	}
	if a := strings.TrimSpace(d.AnswerMarkdown); a != "" {
		fmt.Fprintf(b, "Current answer draft:\n%s\n", a)
	}
}

func suggestTopicsPrompt(d QuestionDraft, topics []domain.Topic, subcategories []domain.Subcategory) string {
	var b strings.Builder
	writeDraft(&b, d)

	byID := make(map[uuid.UUID]domain.Subcategory, len(subcategories))
	b.WriteString("\nSubcategories (slug: name):\n")
	for _, sub := range subcategories {
		byID[sub.ID] = sub
		fmt.Fprintf(&b, "- %s: %s\n", sub.Slug, sub.Name)
	}

	b.WriteString("\nExisting topics (slug: name [subcategory]):\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "- %s: %s [%s]\n", t.Slug, t.Name, byID[t.SubcategoryID].Slug)
	}

	fmt.Fprintf(&b, `
Pick up to %d existing topics this question belongs to, best match first, as
{"topics": [{"slug": "...", "reason": "..."}], "newTopic": null}.
Only if no existing topic fits, set "newTopic" to
{"name": "...", "subcategorySlug": "...", "shortDescription": "..."}.`, MaxSuggestions)

	return b.String()
}

func resolveTemplatePrompt(d QuestionDraft) string {
	var b strings.Builder
	writeDraft(&b, d)

	b.WriteString("\nAnswer templates (key: name - sections):\n")
	for _, t := range answerTemplates {
		fmt.Fprintf(&b, "- %s: %s - %s\n", t.Key, t.Name, strings.Join(t.Sections, ", "))
	}
	b.WriteString(`
Choose the template that best fits the question as
{"template": "<key>", "sections": ["..."], "reason": "..."}.
"sections" may adapt the template headings to this question; leave it empty to keep them.`)

	return b.String()
}

func generateAnswerPrompt(d QuestionDraft, tmpl AnswerTemplate, topicSlugs []string) string {
	var b strings.Builder
	writeDraft(&b, d)
	if len(topicSlugs) > 0 {
		fmt.Fprintf(&b, "Topics: %s\n", strings.Join(topicSlugs, ", "))
	}

	fmt.Fprintf(&b, "\nWrite the answer in Markdown using these sections as level-2 headings: %s.\n",
		strings.Join(tmpl.Sections, ", "))
	b.WriteString(`Keep it accurate and interview-focused; use fenced code blocks for code.
Respond as {"answerMarkdown": "...", "summary": "one or two sentences"}.`)

	return b.String()
}
