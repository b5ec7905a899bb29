package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/research"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
)

func statusFor(t *testing.T, mapper func(*gin.Context, error), err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	mapper(c, err)
	return rec.Code
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", services.NewValidationError("query", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrNotFound), http.StatusNotFound},
		{"already running", services.ErrAlreadyRunning, http.StatusConflict},
		{"research active", services.ErrResearchActive, http.StatusForbidden},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(t, mapServiceError, tt.err))
		})
	}
}

func TestMapLibraryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty query", research.ErrEmptyQuery, http.StatusBadRequest},
		{"unknown collection", fmt.Errorf("%w: %q", research.ErrUnknownCollection, "docs"), http.StatusNotFound},
		{"no model", research.ErrNoModel, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(t, mapLibraryError, tt.err))
		})
	}
}
