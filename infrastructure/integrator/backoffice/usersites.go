package backoffice

import (
	"fmt"
	"net/url"
	"strconv"
)

// ListUserSites retourne tous les liens utilisateur-site.
func (c *Client) ListUserSites() (any, error) {
	return c.get("/user-sites", url.Values{})
}

// GetUserSiteByID retourne un lien utilisateur-site par son identifiant.
func (c *Client) GetUserSiteByID(id int) (any, error) {
	return c.get(fmt.Sprintf("/user-sites/%d", id), url.Values{})
}

// SearchUserSites recherche les liens selon les filtres donnés.
func (c *Client) SearchUserSites(filters UserSiteFilters) (any, error) {
	query := url.Values{}
	if filters.SiteID > 0 {
		query.Set("siteId", strconv.Itoa(filters.SiteID))
	}
	if filters.ActiveOnly {
		query.Set("actif", "true")
	}

	return c.get("/user-sites/search", query)
}
