package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/calibre9/scrape-import-api/infrastructure/database/postgres"
	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const scrapeDataTable = "scrape_data"

var scrapeDataColumns = []string{
	"campaign_id",
	"scrape_type_id",
	"scrape_date",
	"keyword",
	"position",
	"product_id",
	"title",
	"link",
	"rating",
	"reviews",
	"price",
	"price_raw",
	"merchant",
	"is_carousel",
	"carousel_position",
	"filters",
	"has_product_page",
}

type ScrapeRecordRepository interface {
	BatchInsert(ctx context.Context, records []*domain.ScrapeRecord) error
	CountByCampaign(ctx context.Context, campaignID int64) (int64, error)
}

type scrapeRecordRepository struct {
	conn      *postgres.Connection
	batchSize int
}

// NewScrapeRecordRepository builds the insert-only store for imported rows.
// batchSize bounds the number of rows per INSERT statement; Postgres caps
// bind parameters at 65535, so 17 columns keeps any sane batch size safe.
func NewScrapeRecordRepository(conn *postgres.Connection, batchSize int) ScrapeRecordRepository {
	if batchSize <= 0 {
		batchSize = 100
	}

	return &scrapeRecordRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// BatchInsert persists all records inside one transaction. Either every row
// lands or none do; referential violations on campaign_id/scrape_type_id
// surface as a single error for the batch.
func (r *scrapeRecordRepository) BatchInsert(ctx context.Context, records []*domain.ScrapeRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, chunk := range chunkRecords(records, r.batchSize) {
			if err := insertChunk(ctx, tx, chunk); err != nil {
				return err
			}
		}
		return nil
	})
}

// chunkRecords splits records into consecutive slices of at most size rows,
// each backing one INSERT statement.
func chunkRecords(records []*domain.ScrapeRecord, size int) [][]*domain.ScrapeRecord {
	chunks := make([][]*domain.ScrapeRecord, 0, (len(records)+size-1)/size)

	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}

	return chunks
}

func buildInsertQuery(records []*domain.ScrapeRecord) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert(scrapeDataTable).
		Columns(scrapeDataColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.CampaignID,
			record.ScrapeTypeID,
			record.ScrapeDate,
			record.Keyword,
			record.Position,
			record.ProductID,
			record.Title,
			record.Link,
			record.Rating,
			record.Reviews,
			record.Price,
			record.PriceRaw,
			record.Merchant,
			record.IsCarousel,
			record.CarouselPosition,
			record.Filters,
			record.HasProductPage,
		)
	}

	return query.ToSql()
}

func insertChunk(ctx context.Context, tx *sql.Tx, records []*domain.ScrapeRecord) error {
	sqlQuery, args, err := buildInsertQuery(records)
	if err != nil {
		return errors.Wrap(err, "failed to build insert query")
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return errors.Wrap(err, "failed to execute insert")
	}

	return nil
}

func (r *scrapeRecordRepository) CountByCampaign(ctx context.Context, campaignID int64) (int64, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(scrapeDataTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build count query")
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count scrape records")
	}

	return count, nil
}
