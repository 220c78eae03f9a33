package catalog

import (
	"context"
	"testing"

	"github.com/calibre9/scrape-import-api/infrastructure/repository/mocks"
	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	scrapeTypeRepo := mocks.NewMockScrapeTypeRepository(ctrl)
	service := NewService(campaignRepo, scrapeTypeRepo)

	campaigns := []*domain.Campaign{
		{ID: 2, DomainName: "acme-tools.co.uk", BrandName: "Acme Tools", Client: &domain.Client{ID: 7, Name: "Jordan"}},
		{ID: 1, DomainName: "zenith-audio.com", BrandName: "Zenith Audio", Client: &domain.Client{ID: 3, Name: "Sam"}},
	}

	campaignRepo.EXPECT().ListCampaigns(gomock.Any()).Return(campaigns, nil)

	result, err := service.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, campaigns, result)
}

func TestListCampaignsRepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	scrapeTypeRepo := mocks.NewMockScrapeTypeRepository(ctrl)
	service := NewService(campaignRepo, scrapeTypeRepo)

	campaignRepo.EXPECT().ListCampaigns(gomock.Any()).Return(nil, errors.New("pq: relation does not exist"))

	result, err := service.ListCampaigns(context.Background())
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchCampaigns))

	var catalogErr *CatalogError
	require.True(t, errors.As(err, &catalogErr))
	assert.Contains(t, catalogErr.Details, "relation does not exist")
}

func TestListScrapeTypes(t *testing.T) {
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	scrapeTypeRepo := mocks.NewMockScrapeTypeRepository(ctrl)
	service := NewService(campaignRepo, scrapeTypeRepo)

	scrapeTypes := []*domain.ScrapeType{
		{ID: domain.ScrapeTypeProducts, Name: "Products Scrape"},
		{ID: domain.ScrapeTypeShoppingTab, Name: "Shopping Tab Scrape"},
	}

	scrapeTypeRepo.EXPECT().ListScrapeTypes(gomock.Any()).Return(scrapeTypes, nil)

	result, err := service.ListScrapeTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scrapeTypes, result)
}

func TestListScrapeTypesRepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	scrapeTypeRepo := mocks.NewMockScrapeTypeRepository(ctrl)
	service := NewService(campaignRepo, scrapeTypeRepo)

	scrapeTypeRepo.EXPECT().ListScrapeTypes(gomock.Any()).Return(nil, errors.New("connection reset"))

	result, err := service.ListScrapeTypes(context.Background())
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrFetchScrapeTypes))
}
