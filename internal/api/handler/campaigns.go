package handler

import (
	"errors"
	"net/http"

	"github.com/calibre9/scrape-import-api/internal/usecases/catalog"
	"github.com/calibre9/scrape-import-api/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CampaignList returns every campaign with its embedded client block,
// ordered by domain name. This is what the upload form's picker consumes.
func CampaignList(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			logrus.Error("Error listing campaigns:", err)

			if errors.Is(err, catalog.ErrFetchCampaigns) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error fetching campaigns from database", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error listing campaigns", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error encoding response", nil)
		}
	})
}

// ScrapeTypeList returns the seeded scrape type reference rows.
func ScrapeTypeList(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scrapeTypes, err := service.ListScrapeTypes(r.Context())
		if err != nil {
			logrus.Error("Error listing scrape types:", err)

			if errors.Is(err, catalog.ErrFetchScrapeTypes) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error fetching scrape types from database", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error listing scrape types", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(scrapeTypes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error encoding response", nil)
		}
	})
}
