package report

import (
	"regexp"
	"strings"
)

// Outline is the parsed report structure the generator researches section
// by section.
type Outline struct {
	Sections []Section
}

// Section groups subsections under one top-level heading.
type Section struct {
	Title       string
	Subsections []Subsection
}

// Subsection is one researchable unit with the purpose the model assigned
// to it.
type Subsection struct {
	Title   string
	Purpose string
}

var (
	numberedLine = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.*)$`)
	bulletLine   = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)
)

// ParseOutline extracts the bracketed structure from a model response. The
// parser is line-oriented: it looks for the STRUCTURE and END_STRUCTURE
// markers, treats numbered lines as sections and bulleted lines as
// subsections, and splits subsections on the first "|" into title and
// purpose. It is total: any response that yields no sections produces the
// single-section fallback instead of an error.
func ParseOutline(response, query string) Outline {
	lines := strings.Split(response, "\n")

	start, end := -1, len(lines)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if start < 0 && strings.EqualFold(trimmed, "STRUCTURE") {
			start = i + 1
			continue
		}
		if start >= 0 && strings.EqualFold(trimmed, "END_STRUCTURE") {
			end = i
			break
		}
	}
	if start < 0 {
		// No markers; try the whole response before giving up.
		start, end = 0, len(lines)
	}

	var outline Outline
	for _, line := range lines[start:end] {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(m[2])
			if title != "" {
				outline.Sections = append(outline.Sections, Section{Title: title})
			}
			continue
		}
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			if len(outline.Sections) == 0 {
				continue
			}
			title, purpose := splitPurpose(m[1])
			if title == "" {
				continue
			}
			last := &outline.Sections[len(outline.Sections)-1]
			last.Subsections = append(last.Subsections, Subsection{Title: title, Purpose: purpose})
		}
	}

	// Sections without subsections get one covering the whole heading, so
	// every section is researched.
	complete := outline.Sections[:0]
	for _, s := range outline.Sections {
		if len(s.Subsections) == 0 {
			s.Subsections = []Subsection{{Title: s.Title, Purpose: "cover this topic"}}
		}
		complete = append(complete, s)
	}
	outline.Sections = complete

	if len(outline.Sections) == 0 {
		return FallbackOutline(query)
	}
	return outline
}

// FallbackOutline is the single-section outline used when the model's
// structure cannot be parsed.
func FallbackOutline(query string) Outline {
	return Outline{Sections: []Section{{
		Title: "Research Findings",
		Subsections: []Subsection{
			{Title: "Overview", Purpose: "summarize what was found about " + query},
		},
	}}}
}

func splitPurpose(s string) (title, purpose string) {
	title = strings.TrimSpace(s)
	if idx := strings.Index(s, "|"); idx >= 0 {
		title = strings.TrimSpace(s[:idx])
		purpose = strings.TrimSpace(s[idx+1:])
	}
	return title, purpose
}

// SubsectionCount reports how many research passes the outline requires.
func (o Outline) SubsectionCount() int {
	n := 0
	for _, s := range o.Sections {
		n += len(s.Subsections)
	}
	return n
}
