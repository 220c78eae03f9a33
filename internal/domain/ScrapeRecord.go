package domain

import "time"

type ScrapeTypeID int64

// Seeded reference data; ids match the scrape_types seed rows.
const (
	ScrapeTypeProducts    ScrapeTypeID = 1
	ScrapeTypeShoppingTab ScrapeTypeID = 2
)

type ScrapeType struct {
	ID        ScrapeTypeID `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
}

// ScrapeRecord is one imported row of scraper output. It is a superset of
// both sheet layouts; fields absent from a given layout stay nil and are
// stored as NULL. Records are insert-only.
type ScrapeRecord struct {
	ID               int64        `json:"id"`
	CampaignID       int64        `json:"campaign_id"`
	ScrapeTypeID     ScrapeTypeID `json:"scrape_type_id"`
	ScrapeDate       time.Time    `json:"scrape_date"`
	Keyword          string       `json:"keyword"`
	Position         *int         `json:"position"`
	ProductID        string       `json:"product_id"`
	Title            string       `json:"title"`
	Link             string       `json:"link"`
	Rating           *float64     `json:"rating"`
	Reviews          *int         `json:"reviews"`
	Price            *float64     `json:"price"`
	PriceRaw         *string      `json:"price_raw"`
	Merchant         *string      `json:"merchant"`
	IsCarousel       *bool        `json:"is_carousel"`
	CarouselPosition *int         `json:"carousel_position"`
	Filters          *string      `json:"filters"`
	HasProductPage   *bool        `json:"has_product_page"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ImportSummary is what the operator sees after an import finishes.
type ImportSummary struct {
	ImportID        string   `json:"import_id"`
	CampaignID      int64    `json:"campaign_id"`
	ScrapeTypeID    int64    `json:"scrape_type_id"`
	SheetsProcessed int      `json:"sheets_processed"`
	RowsImported    int      `json:"rows_imported"`
	CampaignTotal   int64    `json:"campaign_total"`
	Warnings        []string `json:"warnings,omitempty"`
}
