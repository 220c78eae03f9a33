package handler

import (
	"html/template"
	"net/http"

	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/calibre9/scrape-import-api/internal/usecases/catalog"
	"github.com/calibre9/scrape-import-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// The form owns no logic: it lists campaigns and scrape types and posts the
// chosen file to /v1/imports. Success and errors come back as JSON from that
// endpoint.
var uploadFormTemplate = template.Must(template.New("upload").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Shopping Scraper Data Import</title>
</head>
<body>
  <h1>Shopping Scraper Data Import</h1>
  <p>Upload Excel files from the shopping scraper and import them into the database.</p>
  <form action="/v1/imports" method="post" enctype="multipart/form-data">
    <p>
      <label for="campaign_id">Campaign</label>
      <select name="campaign_id" id="campaign_id">
        {{- range .Campaigns}}
        <option value="{{.ID}}">{{.DomainName}} (ID: {{.ID}}) - {{.ClientDisplayName}}</option>
        {{- end}}
      </select>
    </p>
    <p>
      <label for="scrape_type_id">Scrape type</label>
      <select name="scrape_type_id" id="scrape_type_id">
        {{- range .ScrapeTypes}}
        <option value="{{.ID}}">{{.Name}}</option>
        {{- end}}
      </select>
    </p>
    <p>
      <label for="file">Excel file</label>
      <input type="file" name="file" id="file" accept=".xlsx,.xls">
    </p>
    <p><button type="submit">Process File</button></p>
  </form>
</body>
</html>
`))

type uploadFormData struct {
	Campaigns   []*domain.Campaign
	ScrapeTypes []*domain.ScrapeType
}

func UploadForm(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			logrus.Error("Error loading campaigns for upload form:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error fetching campaigns from database", nil)
			return
		}

		scrapeTypes, err := service.ListScrapeTypes(r.Context())
		if err != nil {
			logrus.Error("Error loading scrape types for upload form:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error fetching scrape types from database", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		data := uploadFormData{Campaigns: campaigns, ScrapeTypes: scrapeTypes}
		if err := uploadFormTemplate.Execute(w, data); err != nil {
			logrus.WithError(err).Error("error rendering upload form")
		}
	})
}
