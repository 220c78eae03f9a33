// Package spreadsheet is the one place where stringly-typed cell values are
// turned into the fixed ScrapeRecord shape. Everything downstream works with
// typed fields.
package spreadsheet

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/calibre9/scrape-import-api/pkg/utils"
)

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// dateFormats covers what the two scrapers have been seen to emit.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
}

// parseDate returns the zero time when the cell cannot be read as a date.
func parseDate(cell string) time.Time {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, cell); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// parsePrice extracts the first numeric token from a shopping-grid price
// cell, ignoring currency symbols and thousand separators. Unparsable cells
// degrade to nil.
func parsePrice(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	cleaned := strings.NewReplacer("$", "", "£", "", "€", "", ",", "").Replace(cell)

	match := numberPattern.FindString(cleaned)
	if match == "" {
		return nil
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}

	rounded := utils.RoundWithTwoDecimalPlace(value)
	return &rounded
}

// parseDecimal reads a plain decimal cell. No currency cleaning happens
// here; a products-layout price like "$19.99" stays text and survives only
// in price_raw.
func parseDecimal(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}

	rounded := utils.RoundWithTwoDecimalPlace(value)
	return &rounded
}

// parseRating reads a decimal rating, rounded to one decimal place.
func parseRating(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}

	rounded := utils.RoundWithOneDecimalPlace(value)
	return &rounded
}

// parseInt accepts integer cells that spreadsheets render as floats ("3.0").
func parseInt(cell string) *int {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}

	intValue := int(value)
	return &intValue
}

// parseBool coerces the truthy/falsy spellings the scrapers produce.
// Anything else degrades to nil rather than failing the row.
func parseBool(cell string) *bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	if cell == "" {
		return nil
	}

	var value bool
	switch cell {
	case "true", "t", "yes", "y", "1", "1.0":
		value = true
	case "false", "f", "no", "n", "0", "0.0":
		value = false
	default:
		return nil
	}

	return &value
}

// parseString returns nil for blank cells so they land as NULL.
func parseString(cell string) *string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	return &cell
}
