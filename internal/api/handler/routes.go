package handler

import (
	"net/http"

	"github.com/calibre9/scrape-import-api/internal/api/handler/router"
	"github.com/calibre9/scrape-import-api/internal/usecases/catalog"
	"github.com/calibre9/scrape-import-api/internal/usecases/importing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignList(service),
		},
		{
			Path:    "/v1/scrape-types",
			Method:  http.MethodGet,
			Handler: ScrapeTypeList(service),
		},
	}
}

func Imports(service importing.ImportService, maxUploadMB int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/imports",
			Method:  http.MethodPost,
			Handler: ImportWorkbook(service, maxUploadMB),
		},
	}
}

func Form(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: UploadForm(service),
		},
	}
}
