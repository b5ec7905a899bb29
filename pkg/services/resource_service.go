package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// previewLimit bounds the stored snippet of each resource.
const previewLimit = 500

// ResourceService persists the sources a research cited.
type ResourceService struct {
	client *ent.Client
}

// NewResourceService creates a new ResourceService
func NewResourceService(client *ent.Client) *ResourceService {
	return &ResourceService{client: client}
}

// SaveLinks persists the accumulated link bag of a finished research as
// resource rows. The slice index matches the citation number the
// synthesis used, so citation_index is i+1.
func (s *ResourceService) SaveLinks(httpCtx context.Context, researchID int, links []models.SearchResult) (int, error) {
	if len(links) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builders := make([]*ent.ResearchResourceCreate, 0, len(links))
	for i, link := range links {
		if link.Link == "" {
			continue
		}
		title := link.Title
		if title == "" {
			title = "Untitled"
		}
		preview := link.Snippet
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}
		builders = append(builders, s.client.ResearchResource.Create().
			SetResearchID(researchID).
			SetTitle(title).
			SetURL(link.Link).
			SetContentPreview(preview).
			SetSourceType("web").
			SetCitationIndex(i+1).
			SetCreatedAt(time.Now()))
	}
	if len(builders) == 0 {
		return 0, nil
	}

	created, err := s.client.ResearchResource.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to save research resources: %w", err)
	}
	return len(created), nil
}

// GetResources returns the resources of a research in citation order.
func (s *ResourceService) GetResources(ctx context.Context, researchID int) ([]*ent.ResearchResource, error) {
	resources, err := s.client.ResearchResource.Query().
		Where(researchresource.ResearchIDEQ(researchID)).
		Order(ent.Asc(researchresource.FieldCitationIndex), ent.Asc(researchresource.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get research resources: %w", err)
	}
	return resources, nil
}

// DeleteResources removes all resources of a research. Returns the
// number of rows removed.
func (s *ResourceService) DeleteResources(ctx context.Context, researchID int) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.ResearchResource.Delete().
		Where(researchresource.ResearchIDEQ(researchID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete research resources: %w", err)
	}
	return count, nil
}
