package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/research"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
)

// errorResponse is the JSON body every failed request gets.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Status: "error", Message: message})
}

// mapServiceError translates service-layer errors to HTTP responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		writeError(c, http.StatusBadRequest, validErr.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyRunning):
		writeError(c, http.StatusConflict, "another research is already in progress")
	case errors.Is(err, services.ErrResearchActive):
		writeError(c, http.StatusForbidden, "research is in progress; terminate it first")
	case errors.Is(err, services.ErrAlreadyExists):
		writeError(c, http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Unexpected service error", "error", err)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

// mapLibraryError translates facade errors to HTTP responses.
func mapLibraryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, research.ErrEmptyQuery):
		writeError(c, http.StatusBadRequest, research.ErrEmptyQuery.Error())
	case errors.Is(err, research.ErrUnknownCollection):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, research.ErrNoModel):
		writeError(c, http.StatusServiceUnavailable, research.ErrNoModel.Error())
	default:
		slog.Error("Research call failed", "error", err)
		writeError(c, http.StatusInternalServerError, "research failed: "+err.Error())
	}
}
