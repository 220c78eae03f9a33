package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/calibre9/scrape-import-api/infrastructure/database/postgres"
	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	campaignsTable = "campaigns c"
	clientsTable   = "clients cl"
)

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id int64) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// ListCampaigns returns every campaign joined to its owning client, ordered
// by domain name. The dataset is small enough to load in full.
func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select("c.campaign_id, c.client_id, c.domain_name, c.brand_name, c.created_at, cl.client_id, cl.name, cl.surname, cl.email").
		From(campaignsTable).
		Join(clientsTable + " ON c.client_id = cl.client_id").
		OrderBy("c.domain_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build campaigns query")
	}

	rows, err := r.conn.QueryContext(ctx, campaignsSQL, campaignsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to query campaigns")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed iterating campaigns")
	}

	return campaigns, nil
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaignSQL, campaignArgs, err := squirrel.
		Select("c.campaign_id, c.client_id, c.domain_name, c.brand_name, c.created_at, cl.client_id, cl.name, cl.surname, cl.email").
		From(campaignsTable).
		Join(clientsTable + " ON c.client_id = cl.client_id").
		Where(squirrel.Eq{"c.campaign_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build campaign query")
	}

	rows, err := r.conn.QueryContext(ctx, campaignSQL, campaignArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query campaign")
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return deserializeCampaign(rows)
}

func deserializeCampaign(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{Client: &domain.Client{}}

	if err := rows.Scan(
		&campaign.ID,
		&campaign.ClientID,
		&campaign.DomainName,
		&campaign.BrandName,
		&campaign.CreatedAt,
		&campaign.Client.ID,
		&campaign.Client.Name,
		&campaign.Client.Surname,
		&campaign.Client.Email,
	); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize campaign")
	}

	return campaign, nil
}
