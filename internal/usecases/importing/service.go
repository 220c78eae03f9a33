package importing

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/calibre9/scrape-import-api/infrastructure/repository"
	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/calibre9/scrape-import-api/internal/spreadsheet"
	"github.com/calibre9/scrape-import-api/pkg/apiErrors"
	"github.com/calibre9/scrape-import-api/pkg/log"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

const (
	importIDLength     = 10
	importIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ImportRequest is one operator-triggered batch import: a workbook plus the
// campaign and scrape type it belongs to.
type ImportRequest struct {
	CampaignID   int64
	ScrapeTypeID domain.ScrapeTypeID
	File         io.Reader
}

type ImportService interface {
	ImportWorkbook(ctx context.Context, req ImportRequest) (*domain.ImportSummary, error)
}

type Service struct {
	campaignRepo     repository.CampaignRepository
	scrapeTypeRepo   repository.ScrapeTypeRepository
	scrapeRecordRepo repository.ScrapeRecordRepository

	// now is swappable for tests; it stamps records whose sheet carries
	// no usable date.
	now func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	scrapeTypeRepo repository.ScrapeTypeRepository,
	scrapeRecordRepo repository.ScrapeRecordRepository,
) *Service {
	return &Service{
		campaignRepo:     campaignRepo,
		scrapeTypeRepo:   scrapeTypeRepo,
		scrapeRecordRepo: scrapeRecordRepo,
		now:              time.Now,
	}
}

// ImportWorkbook runs one synchronous import to completion: validate the
// request, normalize every data sheet, then persist everything as a single
// transactional batch. Normalization finishes before the first insert, so a
// structurally broken sheet aborts the import with nothing written.
func (s *Service) ImportWorkbook(ctx context.Context, req ImportRequest) (*domain.ImportSummary, error) {
	importID, err := gonanoid.Generate(importIDCharacters, importIDLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate import id")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"import_id":      importID,
		"campaign_id":    req.CampaignID,
		"scrape_type_id": req.ScrapeTypeID,
	})

	if req.CampaignID <= 0 {
		return nil, NewImportError(ErrCampaignRequired, apiErrors.ErrMissingRequiredData, "")
	}

	// scrape_data.campaign_id carries no referential constraint, so the
	// existence check happens here.
	campaign, err := s.campaignRepo.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if campaign == nil {
		return nil, NewImportError(ErrUnknownCampaign, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("campaign %d", req.CampaignID))
	}

	scrapeType, err := s.scrapeTypeRepo.GetScrapeTypeByID(ctx, req.ScrapeTypeID)
	if err != nil {
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if scrapeType == nil {
		return nil, NewImportError(ErrUnknownScrapeType, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("scrape type %d", req.ScrapeTypeID))
	}

	workbook, err := spreadsheet.OpenWorkbook(req.File)
	if err != nil {
		return nil, NewImportError(ErrUnsupportedFileFormat, apiErrors.ErrInvalidFormat, err.Error())
	}
	defer workbook.Close()

	summary := &domain.ImportSummary{
		ImportID:     importID,
		CampaignID:   req.CampaignID,
		ScrapeTypeID: int64(req.ScrapeTypeID),
	}

	records := make([]*domain.ScrapeRecord, 0)

	for _, sheetName := range workbook.DataSheets(req.ScrapeTypeID) {
		sheet, err := workbook.ReadSheet(sheetName)
		if err != nil {
			return nil, NewImportErrorWithSheet(ErrUnsupportedFileFormat, apiErrors.ErrInvalidFormat, sheetName, err.Error())
		}

		if sheet.Empty() {
			logger.Warnf("sheet %q has no data rows", sheetName)
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("no data in sheet: %s", sheetName))
			continue
		}

		sheetDate := sheet.DetectDate()
		if sheetDate.IsZero() {
			sheetDate = s.now()
		}

		sheetRecords, err := spreadsheet.NormalizeSheet(sheet, req.ScrapeTypeID, sheetDate)
		if err != nil {
			if errors.Is(err, spreadsheet.ErrMissingRequiredColumns) {
				return nil, NewImportErrorWithSheet(ErrSheetStructure, apiErrors.ErrSheetStructure, sheetName, err.Error())
			}
			return nil, NewImportErrorWithSheet(ErrUnsupportedFileFormat, apiErrors.ErrInvalidFormat, sheetName, err.Error())
		}

		if len(sheetRecords) == 0 {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("no valid records found in sheet: %s", sheetName))
			continue
		}

		logger.Debugf("normalized %d records from sheet %q", len(sheetRecords), sheetName)
		records = append(records, sheetRecords...)
		summary.SheetsProcessed++
	}

	if len(records) == 0 {
		return nil, NewImportError(ErrNothingToImport, apiErrors.ErrEmptyImport, "")
	}

	// The request's campaign and scrape type win over anything a sheet
	// might claim.
	for _, record := range records {
		record.CampaignID = req.CampaignID
		record.ScrapeTypeID = req.ScrapeTypeID
	}

	if err := s.scrapeRecordRepo.BatchInsert(ctx, records); err != nil {
		logger.WithError(err).Error("batch insert failed")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	summary.RowsImported = len(records)

	// Running total for the campaign, so the operator can sanity-check the
	// load. A counting failure does not fail an import that already landed.
	total, err := s.scrapeRecordRepo.CountByCampaign(ctx, req.CampaignID)
	if err != nil {
		logger.WithError(err).Warn("could not count campaign rows")
	} else {
		summary.CampaignTotal = total
	}

	logger.WithFields(log.Fields{
		"sheets_processed": summary.SheetsProcessed,
		"rows_imported":    summary.RowsImported,
	}).Info("import finished")

	return summary, nil
}
