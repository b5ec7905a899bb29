package api

import (
	"errors"
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
)

func researchID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid research id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleStartResearch(c *gin.Context) {
	var req StartResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rec, err := s.runner.Start(c.Request.Context(), services.StartOptions{
		Query:                 req.Query,
		Mode:                  models.ResearchMode(req.Mode),
		Strategy:              req.Strategy,
		Engine:                req.SearchEngine,
		MaxIterations:         req.MaxIterations,
		QuestionsPerIteration: req.QuestionsPerIteration,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, StartResearchResponse{Status: "success", ResearchID: rec.ID})
}

// handleStatus returns the persisted record overlaid with the live
// worker's progress when the research is running in this process.
func (s *Server) handleStatus(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	rec, err := s.research.GetResearch(c.Request.Context(), id, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := toResearchResponse(rec)
	message := ""
	if handle, ok := s.active.Get(id); ok {
		var percent int
		message, percent, _ = handle.Snapshot()
		if percent > resp.Progress {
			resp.Progress = percent
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"research": resp,
		"progress": resp.Progress,
		"message":  message,
	})
}

// handleDetails returns the record plus the union of persisted log rows
// and the in-memory progress log of a live worker, ordered by time.
func (s *Server) handleDetails(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	rec, err := s.research.GetResearch(c.Request.Context(), id, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	persisted, err := s.logs.GetLogs(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	entries := make([]models.ProgressEntry, 0, len(persisted))
	seen := make(map[string]bool, len(persisted))
	for _, row := range persisted {
		entry := models.ProgressEntry{
			Time:     models.FormatTimestamp(row.Time),
			Message:  row.Message,
			Progress: row.Progress,
			Metadata: row.Metadata,
		}
		entries = append(entries, entry)
		seen[entry.Time+"\x00"+entry.Message] = true
	}

	// Milestone persistence skips most entries; a live worker's full log
	// is only in memory.
	if handle, ok := s.active.Get(id); ok {
		_, _, inMemory := handle.Snapshot()
		for _, entry := range inMemory {
			if seen[entry.Time+"\x00"+entry.Message] {
				continue
			}
			entries = append(entries, entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Time < entries[j].Time })

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"research": toResearchResponse(rec),
		"log":      entries,
	})
}

func (s *Server) handleHistory(c *gin.Context) {
	filters := models.ResearchFilters{
		Status: models.ResearchStatus(c.Query("status")),
		Mode:   models.ResearchMode(c.Query("mode")),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filters.Offset = offset
	}

	list, err := s.research.ListResearch(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"researches":  toResearchResponses(list.Researches),
		"total_count": list.TotalCount,
		"limit":       list.Limit,
		"offset":      list.Offset,
	})
}

func (s *Server) handleHistoryReport(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	rec, err := s.research.GetResearch(c.Request.Context(), id, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if rec.ReportPath == nil || *rec.ReportPath == "" {
		writeError(c, http.StatusNotFound, "no report available for this research")
		return
	}

	content, err := os.ReadFile(*rec.ReportPath)
	if err != nil {
		s.logger.Error("Failed to read report file", "research_id", id, "path", *rec.ReportPath, "error", err)
		writeError(c, http.StatusNotFound, "report file is missing")
		return
	}
	c.JSON(http.StatusOK, ReportContentResponse{
		Status:   "success",
		Content:  string(content),
		Metadata: rec.ResearchMeta,
	})
}

// handleTerminate requests cooperative termination. Terminating a record
// that already reached a terminal state is a no-op success.
func (s *Server) handleTerminate(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	err := s.runner.Terminate(c.Request.Context(), id)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "termination requested"})
		return
	}
	if !errors.Is(err, services.ErrNotFound) {
		mapServiceError(c, err)
		return
	}

	// Not running in this process; succeed if the record exists.
	if _, recErr := s.research.GetResearch(c.Request.Context(), id, false); recErr != nil {
		mapServiceError(c, recErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "research is not running"})
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	rec, err := s.research.GetResearch(c.Request.Context(), id, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if err := s.research.DeleteResearch(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}

	if rec.ReportPath != nil && *rec.ReportPath != "" {
		if err := os.Remove(*rec.ReportPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove report file", "research_id", id, "path", *rec.ReportPath, "error", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "research deleted"})
}

func (s *Server) handleLogs(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	logs, err := s.logs.GetLogs(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "logs": toLogResponses(logs)})
}

func (s *Server) handleResources(c *gin.Context) {
	id, ok := researchID(c)
	if !ok {
		return
	}

	resources, err := s.resources.GetResources(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "resources": toResourceResponses(resources)})
}
