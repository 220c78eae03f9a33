package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/calibre9/scrape-import-api/internal/usecases/importing"
	"github.com/calibre9/scrape-import-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ImportWorkbook handles the multipart upload: file + campaign_id +
// scrape_type_id. It runs the import synchronously and returns the summary,
// or the failure reason.
func ImportWorkbook(service importing.ImportService, maxUploadMB int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportWorkbook")

		w.Header().Set("Content-Type", "application/json")

		maxBytes := maxUploadMB << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid multipart request: "+err.Error(), nil)
			return
		}

		campaignID, err := strconv.ParseInt(r.FormValue("campaign_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_id is required", nil)
			return
		}

		scrapeTypeID, err := strconv.ParseInt(r.FormValue("scrape_type_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "scrape_type_id is required", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "file is required", nil)
			return
		}
		defer file.Close()

		logrus.WithFields(logrus.Fields{
			"filename":       header.Filename,
			"size_bytes":     header.Size,
			"campaign_id":    campaignID,
			"scrape_type_id": scrapeTypeID,
		}).Info("processing uploaded workbook")

		summary, err := service.ImportWorkbook(r.Context(), importing.ImportRequest{
			CampaignID:   campaignID,
			ScrapeTypeID: domain.ScrapeTypeID(scrapeTypeID),
			File:         file,
		})
		if err != nil {
			writeImportError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error encoding response", nil)
		}
	})
}

func writeImportError(w http.ResponseWriter, err error) {
	logrus.Error("Error importing workbook:", err)

	var importErr *importing.ImportError
	if errors.As(err, &importErr) {
		details := map[string]interface{}{}
		if importErr.Sheet != "" {
			details["sheet"] = importErr.Sheet
		}
		apiErrors.WriteError(w, importErr.Code, importErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, importing.ErrNothingToImport):
		apiErrors.WriteError(w, apiErrors.ErrEmptyImport, "workbook contains no importable rows", nil)

	case errors.Is(err, importing.ErrSheetStructure):
		apiErrors.WriteError(w, apiErrors.ErrSheetStructure, "sheet structure does not match the scrape type", nil)

	case errors.Is(err, importing.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error inserting scrape data", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error importing workbook", nil)
	}
}
