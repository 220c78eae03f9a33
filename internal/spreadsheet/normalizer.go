package spreadsheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NormalizeSheet converts one sheet's raw rows into ScrapeRecords matching
// the destination schema. Campaign and scrape-type ids are stamped on by the
// loader, not here; records leave with the zero campaign id.
//
// Numeric and boolean cells that fail to parse become nil fields, never
// errors: the import favors completeness over strictness. Only a header row
// missing the layout's identifying columns is a hard failure.
func NormalizeSheet(sheet *Sheet, scrapeTypeID domain.ScrapeTypeID, defaultDate time.Time) ([]*domain.ScrapeRecord, error) {
	switch scrapeTypeID {
	case domain.ScrapeTypeProducts:
		return normalizeProductRows(sheet, defaultDate)
	case domain.ScrapeTypeShoppingTab:
		return normalizeShoppingGridRows(sheet, defaultDate)
	default:
		return nil, errors.Wrapf(ErrUnknownScrapeType, "scrape type %d", scrapeTypeID)
	}
}

// normalizeProductRows handles the flat Products Scrape layout: one product
// per row, the sheet name is the keyword.
func normalizeProductRows(sheet *Sheet, defaultDate time.Time) ([]*domain.ScrapeRecord, error) {
	var missing []string
	for _, column := range productsRequiredColumns {
		if !sheet.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingRequiredColumns,
			"sheet %q lacks columns: %s", sheet.Name, strings.Join(missing, ", "))
	}

	records := make([]*domain.ScrapeRecord, 0, len(sheet.Rows))

	for _, row := range sheet.Rows {
		productID := strings.TrimSpace(sheet.Cell(row, colProductID))
		title := strings.TrimSpace(sheet.Cell(row, colTitle))
		if productID == "" || title == "" {
			continue
		}

		record := &domain.ScrapeRecord{
			ScrapeDate:       rowDate(sheet, row, defaultDate),
			Keyword:          sheet.Name,
			ProductID:        productID,
			Title:            title,
			Link:             productLink(sheet, row, productID),
			Position:         parseInt(sheet.Cell(row, colPosition)),
			Rating:           parseRating(sheet.Cell(row, colRating)),
			Reviews:          parseInt(sheet.Cell(row, colReviews)),
			Price:            parseDecimal(sheet.Cell(row, colPrice)),
			PriceRaw:         productPriceRaw(sheet, row),
			Merchant:         parseString(sheet.Cell(row, colMerchant)),
			IsCarousel:       parseBool(sheet.Cell(row, colIsCarousel)),
			CarouselPosition: parseInt(sheet.Cell(row, colCarouselPosition)),
			Filters:          parseString(sheet.Cell(row, colFilters)),
			HasProductPage:   parseBool(sheet.Cell(row, colHasProductPage)),
		}

		records = append(records, record)
	}

	return records, nil
}

// normalizeShoppingGridRows handles the wide Shopping Tab layout: each row
// is one query/date and carries up to maxGridSlots numbered product groups.
func normalizeShoppingGridRows(sheet *Sheet, defaultDate time.Time) ([]*domain.ScrapeRecord, error) {
	if !hasGridColumns(sheet) {
		return nil, errors.Wrapf(ErrMissingRequiredColumns,
			"sheet %q has no %sN%s/%sN%s column pairs",
			sheet.Name, gridColPrefix, gridTitleSuffix, gridColPrefix, gridLinkSuffix)
	}

	records := make([]*domain.ScrapeRecord, 0)

	for _, row := range sheet.Rows {
		date := rowDate(sheet, row, defaultDate)

		keyword := strings.TrimSpace(sheet.Cell(row, colQuery))
		if keyword == "" {
			keyword = sheet.Name
		}

		for slot := 1; slot <= maxGridSlots; slot++ {
			title := strings.TrimSpace(sheet.Cell(row, gridColumn(slot, gridTitleSuffix)))
			link := strings.TrimSpace(sheet.Cell(row, gridColumn(slot, gridLinkSuffix)))
			if title == "" || link == "" {
				continue
			}

			position := slot
			record := &domain.ScrapeRecord{
				ScrapeDate: date,
				Keyword:    keyword,
				// The grid layout has no stable product identifier.
				ProductID: uuid.New().String(),
				Title:     title,
				Link:      link,
				Position:  &position,
				Price:     parsePrice(sheet.Cell(row, gridColumn(slot, gridPriceSuffix))),
				PriceRaw:  parseString(sheet.Cell(row, gridColumn(slot, gridPriceSuffix))),
				Merchant:  parseString(sheet.Cell(row, gridColumn(slot, gridMerchantSuffix))),
			}

			records = append(records, record)
		}
	}

	return records, nil
}

func hasGridColumns(sheet *Sheet) bool {
	for slot := 1; slot <= maxGridSlots; slot++ {
		if sheet.HasColumn(gridColumn(slot, gridTitleSuffix)) &&
			sheet.HasColumn(gridColumn(slot, gridLinkSuffix)) {
			return true
		}
	}
	return false
}

func gridColumn(slot int, suffix string) string {
	return fmt.Sprintf("%s%d%s", gridColPrefix, slot, suffix)
}

// rowDate prefers the row's own Date cell, then the sheet-level default.
func rowDate(sheet *Sheet, row []string, defaultDate time.Time) time.Time {
	if date := parseDate(sheet.Cell(row, colDate)); !date.IsZero() {
		return date
	}
	return defaultDate
}

// productPriceRaw keeps the raw price text: the price_raw column when the
// scraper filled it, otherwise whatever was in the price cell.
func productPriceRaw(sheet *Sheet, row []string) *string {
	if raw := parseString(sheet.Cell(row, colPriceRaw)); raw != nil {
		return raw
	}
	return parseString(sheet.Cell(row, colPrice))
}

// productLink fills a deterministic placeholder when the scraper omitted the
// link column, keeping the link field non-null downstream.
func productLink(sheet *Sheet, row []string, productID string) string {
	if link := strings.TrimSpace(sheet.Cell(row, colLink)); link != "" {
		return link
	}
	return "https://example.com/product/" + productID
}
