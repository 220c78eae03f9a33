package domain

import "time"

// Client is owned by the CRM and is read-only here.
type Client struct {
	ID      int64  `json:"client_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// Campaign is the unit scrape records are attached to. Many campaigns per
// client; this service never writes to either table.
type Campaign struct {
	ID         int64     `json:"campaign_id"`
	ClientID   int64     `json:"client_id"`
	DomainName string    `json:"domain_name"`
	BrandName  string    `json:"brand_name"`
	CreatedAt  time.Time `json:"created_at"`
	Client     *Client   `json:"client"`
}

func (c *Campaign) ClientDisplayName() string {
	if c.Client == nil {
		return ""
	}
	if c.Client.Surname == "" {
		return c.Client.Name
	}
	return c.Client.Name + " " + c.Client.Surname
}
