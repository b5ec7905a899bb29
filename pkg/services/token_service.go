package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// TokenService persists per-call token usage. It implements
// llm.UsageRecorder so the meter can be wired directly.
type TokenService struct {
	client *ent.Client
}

// NewTokenService creates a new TokenService
func NewTokenService(client *ent.Client) *TokenService {
	return &TokenService{client: client}
}

// RecordTokenUsage writes one usage row. Failures are returned to the
// caller (the meter), which logs and continues; usage accounting never
// fails a research.
func (s *TokenService) RecordTokenUsage(httpCtx context.Context, researchID int, provider, model string, promptTokens, completionTokens int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TokenUsage.Create().
		SetResearchID(researchID).
		SetProvider(provider).
		SetModel(model).
		SetPromptTokens(promptTokens).
		SetCompletionTokens(completionTokens).
		SetTotalTokens(promptTokens + completionTokens).
		SetCreatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record token usage: %w", err)
	}
	return nil
}

// UsageSummary aggregates token usage for one research.
type UsageSummary struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
	Calls            int `json:"calls"`
}

// GetUsage sums the usage rows of a research.
func (s *TokenService) GetUsage(ctx context.Context, researchID int) (*UsageSummary, error) {
	rows, err := s.client.TokenUsage.Query().
		Where(tokenusage.ResearchIDEQ(researchID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token usage: %w", err)
	}

	summary := &UsageSummary{Calls: len(rows)}
	for _, row := range rows {
		summary.PromptTokens += row.PromptTokens
		summary.CompletionTokens += row.CompletionTokens
		summary.TotalTokens += row.TotalTokens
	}
	return summary, nil
}
