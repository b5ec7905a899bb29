// Package report turns a completed research pass into a structured
// multi-section document: outline from the model, one bounded research run
// per subsection, then assembly with de-duplicated headers and a sources
// list.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/strategy"

	"log/slog"
)

// Runner executes one bounded research pass for a subsection query. The
// service wires this to a strategy configured with a single iteration.
type Runner interface {
	Run(ctx context.Context, query string) (*strategy.Result, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, query string) (*strategy.Result, error)

func (f RunnerFunc) Run(ctx context.Context, query string) (*strategy.Result, error) {
	return f(ctx, query)
}

// Metadata describes how a report was produced.
type Metadata struct {
	GeneratedAt        string `json:"generated_at"`
	InitialSources     int    `json:"initial_sources"`
	SectionsResearched int    `json:"sections_researched"`
	SearchesPerSection int    `json:"searches_per_section"`
	Query              string `json:"query"`
}

// Report is the assembled document plus its metadata.
type Report struct {
	Content  string
	Metadata Metadata
	// Links is every source observed across the initial pass and the
	// per-section runs, in citation order.
	Links []models.SearchResult
}

// Generator builds detailed reports.
type Generator struct {
	llm                llm.Client
	runner             Runner
	searchesPerSection int
	progress           strategy.ProgressFunc
	logger             *slog.Logger
}

// NewGenerator wires a report generator. searchesPerSection bounds the
// sub-queries each subsection run may issue.
func NewGenerator(client llm.Client, runner Runner, searchesPerSection int, progress strategy.ProgressFunc, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if searchesPerSection <= 0 {
		searchesPerSection = 2
	}
	return &Generator{
		llm:                client,
		runner:             runner,
		searchesPerSection: searchesPerSection,
		progress:           progress,
		logger:             logger.With("component", "report_generator"),
	}
}

// Generate produces the full report for a finished research run.
// initialFindings is the accumulated knowledge of the primary pass and
// links its collected sources.
func (g *Generator) Generate(ctx context.Context, query, initialFindings string, links []models.SearchResult) (*Report, error) {
	if err := g.report("Structuring the report", 0, models.PhaseReportGeneration); err != nil {
		return nil, err
	}

	outline := g.outline(ctx, query, initialFindings)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := outline.SubsectionCount()
	done := 0
	allLinks := append([]models.SearchResult(nil), links...)
	bodies := map[string]string{}

	for _, section := range outline.Sections {
		for _, sub := range section.Subsections {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			progress := 0
			if total > 0 {
				progress = done * 90 / total
			}
			if err := g.report(fmt.Sprintf("Researching section: %s", sub.Title), progress, models.PhaseReportGeneration); err != nil {
				return nil, err
			}

			subQuery := strings.TrimSpace(fmt.Sprintf("%s %s %s %s", query, section.Title, sub.Title, sub.Purpose))
			result, err := g.runner.Run(ctx, subQuery)
			if err != nil {
				if ctx.Err() != nil || err == strategy.ErrTerminated {
					return nil, err
				}
				g.logger.Warn("section research failed, leaving section empty",
					"section", sub.Title, "error", err)
				result = &strategy.Result{CurrentKnowledge: "No information was gathered for this section."}
			}
			bodies[section.Title+"\x00"+sub.Title] = result.CurrentKnowledge
			allLinks = append(allLinks, result.AllLinks...)
			done++
		}
	}

	summary := g.summary(ctx, query, initialFindings)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := assemble(query, summary, outline, bodies, allLinks)
	if err := g.report("Report assembled", 95, models.PhaseReportComplete); err != nil {
		return nil, err
	}

	return &Report{
		Content: content,
		Links:   allLinks,
		Metadata: Metadata{
			GeneratedAt:        models.FormatTimestamp(time.Now().UTC()),
			InitialSources:     len(links),
			SectionsResearched: total,
			SearchesPerSection: g.searchesPerSection,
			Query:              query,
		},
	}, nil
}

func (g *Generator) report(message string, progress int, phase string) error {
	if g.progress == nil {
		return nil
	}
	return g.progress(message, progress, map[string]any{"phase": phase})
}

// outline asks the model for the bracketed structure. Any failure falls
// back to the single-section outline.
func (g *Generator) outline(ctx context.Context, query, initialFindings string) Outline {
	prompt := fmt.Sprintf(`Design a report outline for this research query, based on the initial
findings below.

Query: %s

Initial findings:
%s

Respond with ONLY the outline between STRUCTURE and END_STRUCTURE markers.
Number each section; under each section, bullet its subsections as
"- <subsection title> | <purpose of the subsection>". Example:

STRUCTURE
1. Background
- Origins | how the subject came to be
- Key terms | define the vocabulary the reader needs
2. Current State
- Adoption | who uses it today
END_STRUCTURE`, query, llm.TruncateChars(initialFindings, 8000))

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("outline call failed, using fallback outline", "error", err)
		return FallbackOutline(query)
	}
	return ParseOutline(resp.Content, query)
}

// summary asks for the opening paragraph; failure degrades to truncated
// findings so the report always has an introduction.
func (g *Generator) summary(ctx context.Context, query, initialFindings string) string {
	if initialFindings == "" {
		return "No initial findings were available for this query."
	}
	prompt := fmt.Sprintf(`Write one paragraph summarizing the research findings below as the
introduction of a report. Keep the existing [n] citations.

Query: %s

Findings:
%s`, query, llm.TruncateChars(initialFindings, 8000))

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil || strings.TrimSpace(resp.Content) == "" {
		g.logger.Warn("summary call failed, truncating findings instead", "error", err)
		return llm.TruncateChars(initialFindings, 1500)
	}
	return resp.Content
}

// assemble renders the final markdown: title, table of contents, summary,
// sections, sources. Repeated header lines are skipped so a model that
// echoes headings into section bodies cannot duplicate them.
func assemble(query, summary string, outline Outline, bodies map[string]string, allLinks []models.SearchResult) string {
	var sb strings.Builder
	seenHeaders := map[string]bool{}

	writeHeader := func(line string) {
		key := strings.ToLower(strings.TrimSpace(line))
		if seenHeaders[key] {
			return
		}
		seenHeaders[key] = true
		sb.WriteString(line + "\n")
	}

	writeHeader(fmt.Sprintf("# Research Report: %s", query))

	sb.WriteString("\n## Table of Contents\n\n")
	for i, section := range outline.Sections {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, section.Title)
		for _, sub := range section.Subsections {
			fmt.Fprintf(&sb, "   - %s\n", sub.Title)
		}
	}

	sb.WriteString("\n")
	writeHeader("## Research Summary")
	sb.WriteString("\n" + strings.TrimSpace(summary) + "\n")

	for _, section := range outline.Sections {
		sb.WriteString("\n")
		writeHeader("## " + section.Title)
		for _, sub := range section.Subsections {
			sb.WriteString("\n")
			writeHeader("### " + sub.Title)
			body := strings.TrimSpace(bodies[section.Title+"\x00"+sub.Title])
			if body == "" {
				body = "No information was gathered for this section."
			}
			sb.WriteString("\n" + stripDuplicateHeaders(body, seenHeaders) + "\n")
		}
	}

	sb.WriteString("\n")
	writeHeader("## Sources")
	sb.WriteString("\n")
	if len(allLinks) == 0 {
		sb.WriteString("No sources were collected.\n")
	} else {
		seen := map[string]bool{}
		n := 0
		for _, link := range allLinks {
			if link.Link == "" || seen[link.Link] {
				continue
			}
			seen[link.Link] = true
			n++
			fmt.Fprintf(&sb, "%d. %s - %s\n", n, link.Title, link.Link)
		}
	}
	return sb.String()
}

// stripDuplicateHeaders drops markdown heading lines already emitted by the
// assembler, keeping everything else intact.
func stripDuplicateHeaders(body string, seen map[string]bool) string {
	lines := strings.Split(body, "\n")
	out := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			key := strings.ToLower(trimmed)
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
