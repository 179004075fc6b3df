package backoffice

import (
	"net/url"
	"strconv"
)

// ListObjectifsView retourne la vue des objectifs d'une période, filtrée par
// site en mode restreint.
func (c *Client) ListObjectifsView(periodeID int, siteID *int) (any, error) {
	query := url.Values{}
	query.Set("periodeId", strconv.Itoa(periodeID))
	if siteID != nil {
		query.Set("siteId", strconv.Itoa(*siteID))
	}

	return c.get("/objectifs/view", query)
}
