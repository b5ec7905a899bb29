package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultOutputDir is where finished reports and quick summaries land,
// relative to the working directory unless configured otherwise.
const DefaultOutputDir = "research_outputs"

const maxFilenameLen = 50

// SanitizeFilename maps a query to a safe filename stem: only letters,
// digits, dashes, underscores, and spaces survive; the result is
// lowercased, spaces become underscores, and the stem is capped at 50
// characters.
func SanitizeFilename(query string) string {
	var sb strings.Builder
	for _, r := range query {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == ' ' {
			sb.WriteRune(r)
		}
	}
	s := strings.ToLower(sb.String())
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > maxFilenameLen {
		s = s[:maxFilenameLen]
	}
	if s == "" {
		s = "research"
	}
	return s
}

// Write stores report content under dir as <sanitized_query>.md, creating
// the directory as needed, and returns the written path.
func Write(dir, query, content string) (string, error) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, SanitizeFilename(query)+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
