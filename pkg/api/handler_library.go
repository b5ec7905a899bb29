package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxInlineReportChars bounds the report content echoed in the JSON
// response. The full content still lands in output_file when requested.
const maxInlineReportChars = 10000

func (s *Server) handleQuickSummary(c *gin.Context) {
	var req QuickSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	summary, err := s.library.QuickSummary(c.Request.Context(), req.Query, req.toOptions())
	if err != nil {
		mapLibraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleGenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rep, err := s.library.GenerateReport(c.Request.Context(), req.Query, req.toOptions())
	if err != nil {
		mapLibraryError(c, err)
		return
	}

	content := rep.Content
	truncated := false
	if len(content) > maxInlineReportChars {
		content = content[:maxInlineReportChars]
		truncated = true
	}
	c.JSON(http.StatusOK, gin.H{
		"content":   content,
		"truncated": truncated,
		"metadata":  rep.Metadata,
		"file_path": rep.FilePath,
	})
}

func (s *Server) handleAnalyzeDocuments(c *gin.Context) {
	var req AnalyzeDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.CollectionName == "" {
		writeError(c, http.StatusBadRequest, "collection_name is required")
		return
	}

	analysis, err := s.library.AnalyzeDocuments(c.Request.Context(), req.Query, req.CollectionName, req.toOptions())
	if err != nil {
		mapLibraryError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleSearchEngines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"engines": s.library.AvailableSearchEngines()})
}

func (s *Server) handleCollections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": s.library.AvailableCollections()})
}
