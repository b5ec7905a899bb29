// Package citation turns search results into numbered, citation-bearing
// synthesized text. Citation numbers are global across a research run:
// iteration k's numbers start at len(LinksOfSystem)+1 before the new links
// are appended.
package citation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Analysis is the output of one synthesis pass.
type Analysis struct {
	Content   string
	Documents []models.Document
}

// Handler asks the LLM to synthesize cited text from sources. The
// zero-configured handler does initial/follow-up analysis; options enable
// cross-source fact checking and forced-answer mode.
type Handler struct {
	llm       llm.Client
	factCheck bool
	forced    bool
	logger    *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithFactChecking enables the cross-reference pass on follow-up analysis.
func WithFactChecking() Option {
	return func(h *Handler) { h.factCheck = true }
}

// WithForcedAnswer makes the handler instruct the model to always commit
// to a single final answer, for benchmark-style questions.
func WithForcedAnswer() Option {
	return func(h *Handler) { h.forced = true }
}

// NewHandler builds a citation handler around a model client.
func NewHandler(client llm.Client, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{llm: client, logger: logger.With("component", "citation_handler")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// BuildDocuments converts results into citation-ready documents. Each
// document's index is linkOffset + position + 1, so numbering continues
// from the accumulated links of the whole run.
func BuildDocuments(results []models.SearchResult, linkOffset int) []models.Document {
	docs := make([]models.Document, 0, len(results))
	for i, r := range results {
		docs = append(docs, models.Document{
			PageContent: r.Content(),
			Metadata: models.DocumentMetadata{
				Source: r.Link,
				Title:  r.Title,
				Index:  linkOffset + i + 1,
			},
		})
	}
	return docs
}

// Analyze synthesizes cited text for one sub-question. previousKnowledge
// is empty on the first question of a run. nrOfLinks is the length of the
// accumulated link list before this question's results are appended.
//
// Model failures degrade to a fixed notice rather than erroring; the only
// returned errors are context cancellation.
func (h *Handler) Analyze(ctx context.Context, question string, results []models.SearchResult, previousKnowledge string, nrOfLinks int) (*Analysis, error) {
	docs := BuildDocuments(results, nrOfLinks)
	if len(docs) == 0 {
		return &Analysis{Content: "No relevant results found."}, nil
	}

	critique := ""
	if h.factCheck && previousKnowledge != "" {
		critique = h.crossReference(ctx, question, docs, previousKnowledge)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	prompt := h.buildPrompt(question, docs, previousKnowledge, critique)
	resp, err := h.llm.Invoke(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		h.logger.Warn("synthesis call failed", "question", question, "error", err)
		return &Analysis{
			Content:   "Analysis unavailable due to a model error; sources are listed below.",
			Documents: docs,
		}, nil
	}

	return &Analysis{Content: resp.Content, Documents: docs}, nil
}

// crossReference asks the model to flag contradictions between previous
// knowledge and the new sources. Failures return an empty critique.
func (h *Handler) crossReference(ctx context.Context, question string, docs []models.Document, previousKnowledge string) string {
	prompt := fmt.Sprintf(`Cross-check the new sources against the existing knowledge.

Question: %s

Existing knowledge:
%s

New sources:
%s

List any contradictions between the existing knowledge and the new
sources, citing source numbers. If there are none, reply "No conflicts."`,
		question, previousKnowledge, formatSources(docs))

	resp, err := h.llm.Invoke(ctx, prompt)
	if err != nil {
		h.logger.Warn("cross-reference call failed", "error", err)
		return ""
	}
	return resp.Content
}

func (h *Handler) buildPrompt(question string, docs []models.Document, previousKnowledge, critique string) string {
	today := time.Now().UTC().Format("2006-01-02")
	var sb strings.Builder

	if previousKnowledge == "" {
		fmt.Fprintf(&sb, `Analyze the sources below concerning this question. Today is %s.

Question: %s

Sources:
%s
`, today, question, formatSources(docs))
	} else {
		fmt.Fprintf(&sb, `Using the existing knowledge and the new sources, answer the follow-up question. Today is %s.

Question: %s

Existing knowledge:
%s

New sources:
%s
`, today, question, previousKnowledge, formatSources(docs))
	}

	if critique != "" {
		fmt.Fprintf(&sb, "\nCross-source review to take into account:\n%s\n", critique)
	}

	sb.WriteString(`
Requirements:
- Cite claims inline as [n], where n is the number of the supporting source above.
- Never invent URLs or sources; only cite the numbered sources given.
- Do not append a bibliography or source list; it is added separately.`)

	if h.forced {
		sb.WriteString(`
- Commit to one single final answer even if uncertain; state the most likely answer rather than hedging.`)
	}
	return sb.String()
}

// formatSources renders documents for a prompt, one block per source,
// headed by its citation number.
func formatSources(docs []models.Document) string {
	var sb strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&sb, "[%d] %s (%s)\n%s\n\n", d.Metadata.Index, d.Metadata.Title, d.Metadata.Source, llm.TruncateChars(d.PageContent, 4000))
	}
	return strings.TrimRight(sb.String(), "\n")
}
