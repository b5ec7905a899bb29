package models

// SearchResult is a single result returned by a search engine. Engine
// specific extras survive in Extra so downstream formatters can use them.
type SearchResult struct {
	Title       string         `json:"title"`
	Link        string         `json:"link"`
	Snippet     string         `json:"snippet"`
	FullContent string         `json:"full_content,omitempty"`
	// Index is the global citation number, 1-based. Zero until the
	// citation handler assigns it.
	Index int            `json:"index,omitempty"`
	Extra map[string]any `json:"extra,omitempty"`
}

// Content returns the best available body text for synthesis.
func (r SearchResult) Content() string {
	if r.FullContent != "" {
		return r.FullContent
	}
	return r.Snippet
}

// DocumentMetadata identifies the source behind a document.
type DocumentMetadata struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	Index  int    `json:"index"`
}

// Document is a citation-ready unit of source text.
type Document struct {
	PageContent string           `json:"page_content"`
	Metadata    DocumentMetadata `json:"metadata"`
}

// Finding records one sub-question's cited synthesis and its sources.
type Finding struct {
	Phase         string         `json:"phase"`
	Content       string         `json:"content"`
	Question      string         `json:"question"`
	SearchResults []SearchResult `json:"search_results,omitempty"`
	Documents     []Document     `json:"documents,omitempty"`
}

// QuestionsByIteration maps an iteration number to the ordered sub-queries
// issued during it.
type QuestionsByIteration map[int][]string
