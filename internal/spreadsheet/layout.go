package spreadsheet

import (
	"github.com/calibre9/scrape-import-api/internal/domain"
)

// Expected column names per scrape type. These are configuration data: the
// names are matched case-sensitively against the sheet's header row, and
// changing a scraper's output format means changing this file, not the
// normalizer.
const (
	// Products Scrape columns (one product per row)
	colProductID        = "id"
	colTitle            = "title"
	colLink             = "link"
	colPosition         = "position"
	colRating           = "rating"
	colReviews          = "reviews"
	colPrice            = "price"
	colPriceRaw         = "price_raw"
	colMerchant         = "merchant"
	colIsCarousel       = "is_carousel"
	colCarouselPosition = "carousel_position"
	colFilters          = "filters"
	colHasProductPage   = "has_product_page"

	// Shared columns
	colDate  = "Date"
	colQuery = "Query"

	// Shopping Tab columns come in numbered groups: Product1_Title,
	// Product1_Link, Product1_Price, Product1_Merchant, ... up to
	// maxGridSlots groups per row.
	gridColPrefix      = "Product"
	gridTitleSuffix    = "_Title"
	gridLinkSuffix     = "_Link"
	gridPriceSuffix    = "_Price"
	gridMerchantSuffix = "_Merchant"

	maxGridSlots = 15
)

// productsRequiredColumns are the identifying columns a Products Scrape
// sheet must carry; their absence means the wrong file was selected.
var productsRequiredColumns = []string{colProductID, colTitle}

// sheets the scrapers emit that hold bookkeeping, not data
var skipSheetsByScrapeType = map[domain.ScrapeTypeID][]string{
	domain.ScrapeTypeProducts:    {"Keywords", "Aggregated Results", "Error Logs"},
	domain.ScrapeTypeShoppingTab: {"Keywords", "Aggregated Results", "Error Logs", "Output"},
}

func skipSheets(scrapeTypeID domain.ScrapeTypeID) []string {
	if sheets, ok := skipSheetsByScrapeType[scrapeTypeID]; ok {
		return sheets
	}
	return skipSheetsByScrapeType[domain.ScrapeTypeProducts]
}
