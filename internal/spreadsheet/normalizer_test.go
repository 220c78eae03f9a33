package spreadsheet

import (
	"testing"
	"time"

	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestNormalizeSheetProducts(t *testing.T) {
	header := []string{"id", "title", "link", "position", "rating", "reviews", "price", "price_raw", "merchant", "is_carousel", "carousel_position", "filters", "has_product_page"}

	sheet := NewSheet("wireless earbuds", header, [][]string{
		{"B0ABC123", "Acme Earbuds Pro", "https://shop.example.com/b0abc123", "3", "4.5", "1200", "49.99", "$49.99", "Acme Store", "true", "2", "On Sale", "yes"},
		{"B0DEF456", "Budget Buds", "", "7", "junk", "n/a", "price on request", "", "", "", "", "", ""},
		{"", "Orphan row without id", "", "1", "", "", "", "", "", "", "", "", ""},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeProducts, testDate)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "B0ABC123", first.ProductID)
	assert.Equal(t, "Acme Earbuds Pro", first.Title)
	assert.Equal(t, "https://shop.example.com/b0abc123", first.Link)
	assert.Equal(t, "wireless earbuds", first.Keyword)
	assert.True(t, testDate.Equal(first.ScrapeDate))
	require.NotNil(t, first.Position)
	assert.Equal(t, 3, *first.Position)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.5, *first.Rating, 0.001)
	require.NotNil(t, first.Reviews)
	assert.Equal(t, 1200, *first.Reviews)
	require.NotNil(t, first.Price)
	assert.InDelta(t, 49.99, *first.Price, 0.001)
	require.NotNil(t, first.PriceRaw)
	assert.Equal(t, "$49.99", *first.PriceRaw)
	require.NotNil(t, first.Merchant)
	assert.Equal(t, "Acme Store", *first.Merchant)
	require.NotNil(t, first.IsCarousel)
	assert.True(t, *first.IsCarousel)
	require.NotNil(t, first.CarouselPosition)
	assert.Equal(t, 2, *first.CarouselPosition)
	require.NotNil(t, first.HasProductPage)
	assert.True(t, *first.HasProductPage)

	second := records[1]
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.Reviews)
	assert.Nil(t, second.Price)
	require.NotNil(t, second.PriceRaw)
	assert.Equal(t, "price on request", *second.PriceRaw)
	assert.Nil(t, second.Merchant)
	assert.Nil(t, second.IsCarousel)
	assert.Equal(t, "https://example.com/product/B0DEF456", second.Link)
}

func TestNormalizeSheetProductsCurrencyPriceStaysRaw(t *testing.T) {
	sheet := NewSheet("shoes", []string{"id", "title", "position", "price"}, [][]string{
		{"SKU-1", "Trail Runner", "3", "$19.99"},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeProducts, testDate)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Nil(t, record.Price)
	require.NotNil(t, record.PriceRaw)
	assert.Equal(t, "$19.99", *record.PriceRaw)
	require.NotNil(t, record.Position)
	assert.Equal(t, 3, *record.Position)
}

func TestNormalizeSheetProductsRowDateOverridesDefault(t *testing.T) {
	sheet := NewSheet("gaming mouse", []string{"id", "title", "Date"}, [][]string{
		{"P1", "Mouse One", "2025-01-15"},
		{"P2", "Mouse Two", ""},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeProducts, testDate)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC).Equal(records[0].ScrapeDate))
	assert.True(t, testDate.Equal(records[1].ScrapeDate))
}

func TestNormalizeSheetProductsMissingRequiredColumns(t *testing.T) {
	sheet := NewSheet("broken", []string{"link", "price"}, [][]string{
		{"https://example.com/x", "9.99"},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeProducts, testDate)
	assert.Nil(t, records)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredColumns))
	assert.Contains(t, err.Error(), "id")
	assert.Contains(t, err.Error(), "title")
}

func TestNormalizeSheetShoppingGrid(t *testing.T) {
	header := []string{
		"Date", "Query",
		"Product1_Title", "Product1_Link", "Product1_Price", "Product1_Merchant",
		"Product2_Title", "Product2_Link", "Product2_Price", "Product2_Merchant",
		"Product3_Title", "Product3_Link", "Product3_Price", "Product3_Merchant",
	}

	sheet := NewSheet("standing desk", header, [][]string{
		{
			"2025-02-20", "standing desk",
			"Desk Alpha", "https://example.com/alpha", "£299.00", "Alpha Furniture",
			"", "", "", "",
			"Desk Gamma", "https://example.com/gamma", "not listed", "Gamma Co",
		},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeShoppingTab, testDate)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Desk Alpha", first.Title)
	assert.Equal(t, "https://example.com/alpha", first.Link)
	assert.Equal(t, "standing desk", first.Keyword)
	assert.True(t, time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC).Equal(first.ScrapeDate))
	require.NotNil(t, first.Position)
	assert.Equal(t, 1, *first.Position)
	require.NotNil(t, first.Price)
	assert.InDelta(t, 299.0, *first.Price, 0.001)
	require.NotNil(t, first.PriceRaw)
	assert.Equal(t, "£299.00", *first.PriceRaw)
	require.NotNil(t, first.Merchant)
	assert.Equal(t, "Alpha Furniture", *first.Merchant)
	assert.NotEmpty(t, first.ProductID)

	// empty slot 2 is skipped, slot 3 keeps its grid position
	third := records[1]
	require.NotNil(t, third.Position)
	assert.Equal(t, 3, *third.Position)
	assert.Nil(t, third.Price)
	require.NotNil(t, third.PriceRaw)
	assert.Equal(t, "not listed", *third.PriceRaw)
	assert.NotEqual(t, first.ProductID, third.ProductID)
}

func TestNormalizeSheetShoppingGridFallsBackToSheetName(t *testing.T) {
	sheet := NewSheet("ergonomic chair", []string{"Product1_Title", "Product1_Link"}, [][]string{
		{"Chair One", "https://example.com/chair-one"},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeShoppingTab, testDate)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ergonomic chair", records[0].Keyword)
	assert.True(t, testDate.Equal(records[0].ScrapeDate))
}

func TestNormalizeSheetShoppingGridWithoutGridColumns(t *testing.T) {
	sheet := NewSheet("wrong layout", []string{"id", "title"}, [][]string{
		{"P1", "Looks like a products sheet"},
	})

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeShoppingTab, testDate)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrMissingRequiredColumns))
}

func TestNormalizeSheetUnknownScrapeType(t *testing.T) {
	sheet := NewSheet("anything", []string{"id", "title"}, nil)

	records, err := NormalizeSheet(sheet, domain.ScrapeTypeID(99), testDate)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrUnknownScrapeType))
}

func TestSheetDetectDate(t *testing.T) {
	sheet := NewSheet("kettles", []string{"id", "title", "Date"}, [][]string{
		{"P1", "Kettle", "not a date"},
		{"P2", "Other Kettle", "2025-04-02"},
	})

	assert.True(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC).Equal(sheet.DetectDate()))

	noDate := NewSheet("kettles", []string{"id", "title"}, [][]string{{"P1", "Kettle"}})
	assert.True(t, noDate.DetectDate().IsZero())
}

func TestSheetCellRaggedRow(t *testing.T) {
	sheet := NewSheet("ragged", []string{"id", "title", "price"}, nil)

	assert.Equal(t, "", sheet.Cell([]string{"P1", "Short"}, "price"))
	assert.Equal(t, "", sheet.Cell([]string{"P1"}, "missing_column"))
}
