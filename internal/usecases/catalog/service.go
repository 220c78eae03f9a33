// Package catalog exposes the read-only reference data the upload form
// needs: campaigns with their owning client, and the scrape type list.
package catalog

import (
	"context"

	"github.com/calibre9/scrape-import-api/infrastructure/repository"
	"github.com/calibre9/scrape-import-api/internal/domain"
)

type CatalogService interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	ListScrapeTypes(ctx context.Context) ([]*domain.ScrapeType, error)
}

type Service struct {
	campaignRepo   repository.CampaignRepository
	scrapeTypeRepo repository.ScrapeTypeRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	scrapeTypeRepo repository.ScrapeTypeRepository,
) CatalogService {
	return &Service{
		campaignRepo:   campaignRepo,
		scrapeTypeRepo: scrapeTypeRepo,
	}
}

// ListCampaigns returns every campaign with its client block, ordered by
// domain name ascending. No caching: the operator always sees current data.
func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return nil, NewCatalogError(ErrFetchCampaigns, err.Error())
	}
	return campaigns, nil
}

func (s *Service) ListScrapeTypes(ctx context.Context) ([]*domain.ScrapeType, error) {
	scrapeTypes, err := s.scrapeTypeRepo.ListScrapeTypes(ctx)
	if err != nil {
		return nil, NewCatalogError(ErrFetchScrapeTypes, err.Error())
	}
	return scrapeTypes, nil
}
