package spreadsheet

import "errors"

var (
	// ErrUnreadableWorkbook means the upload is not a readable xlsx file.
	ErrUnreadableWorkbook = errors.New("workbook could not be read")

	// ErrMissingRequiredColumns means the sheet's header row lacks the
	// identifying columns of the selected scrape type, i.e. a structurally
	// wrong file was chosen.
	ErrMissingRequiredColumns = errors.New("sheet is missing required columns")

	// ErrUnknownScrapeType means the scrape type id has no layout.
	ErrUnknownScrapeType = errors.New("no sheet layout for scrape type")
)
