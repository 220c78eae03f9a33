package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/calibre9/scrape-import-api/infrastructure/database/postgres"
	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/pkg/errors"
)

const scrapeTypesTable = "scrape_types"

type ScrapeTypeRepository interface {
	ListScrapeTypes(ctx context.Context) ([]*domain.ScrapeType, error)
	GetScrapeTypeByID(ctx context.Context, id domain.ScrapeTypeID) (*domain.ScrapeType, error)
}

type scrapeTypeRepository struct {
	conn *postgres.Connection
}

func NewScrapeTypeRepository(conn *postgres.Connection) ScrapeTypeRepository {
	return &scrapeTypeRepository{
		conn: conn,
	}
}

func (r *scrapeTypeRepository) ListScrapeTypes(ctx context.Context) ([]*domain.ScrapeType, error) {
	typesSQL, typesArgs, err := squirrel.
		Select("id, name, created_at").
		From(scrapeTypesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scrape types query")
	}

	rows, err := r.conn.QueryContext(ctx, typesSQL, typesArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query scrape types")
	}
	defer rows.Close()

	scrapeTypes := make([]*domain.ScrapeType, 0)

	for rows.Next() {
		scrapeType := &domain.ScrapeType{}
		if err := rows.Scan(&scrapeType.ID, &scrapeType.Name, &scrapeType.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize scrape type")
		}
		scrapeTypes = append(scrapeTypes, scrapeType)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed iterating scrape types")
	}

	return scrapeTypes, nil
}

func (r *scrapeTypeRepository) GetScrapeTypeByID(ctx context.Context, id domain.ScrapeTypeID) (*domain.ScrapeType, error) {
	typeSQL, typeArgs, err := squirrel.
		Select("id, name, created_at").
		From(scrapeTypesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scrape type query")
	}

	scrapeType := &domain.ScrapeType{}
	row := r.conn.QueryRowContext(ctx, typeSQL, typeArgs...)
	if err := row.Scan(&scrapeType.ID, &scrapeType.Name, &scrapeType.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to query scrape type")
	}

	return scrapeType, nil
}
