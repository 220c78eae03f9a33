package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrFetchCampaigns   = errors.New("error fetching campaigns from database")
	ErrFetchScrapeTypes = errors.New("error fetching scrape types from database")
)

// CatalogError wraps a storage failure with extra detail
type CatalogError struct {
	Err     error
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Details: details,
	}
}
