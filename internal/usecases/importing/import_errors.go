package importing

import (
	"errors"
	"fmt"
)

// Error taxonomy for imports. Validation errors mean the operator picked the
// wrong file or filled the form badly; storage errors mean the database
// rejected the batch; the empty-input error means there was nothing to load.
var (
	// Validation
	ErrCampaignRequired      = errors.New("campaign id is required")
	ErrUnknownCampaign       = errors.New("unknown campaign")
	ErrUnknownScrapeType     = errors.New("unknown scrape type")
	ErrUnsupportedFileFormat = errors.New("uploaded file is not a readable workbook")
	ErrSheetStructure        = errors.New("sheet structure does not match the scrape type")

	// Empty input
	ErrNothingToImport = errors.New("workbook contains no importable rows")

	// Storage
	ErrDatabaseOperation = errors.New("database operation error")
)

// ImportError carries extra context about a failed import
type ImportError struct {
	Err     error  // Base error
	Code    string // API error code
	Sheet   string // Sheet involved, when applicable
	Details string // Extra detail
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewImportErrorWithSheet(err error, code string, sheet string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Sheet:   sheet,
		Details: details,
	}
}
