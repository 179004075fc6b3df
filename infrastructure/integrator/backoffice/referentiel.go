package backoffice

import "net/url"

// ListGroupements retourne les groupements du réseau.
func (c *Client) ListGroupements() (any, error) {
	return c.get("/groupements", url.Values{})
}

// ListFiliales retourne une page de filiales.
func (c *Client) ListFiliales(page, pageSize int) (any, error) {
	return c.get("/filiales", pageQuery(page, pageSize))
}

// ListSuccursales retourne une page de succursales.
func (c *Client) ListSuccursales(page, pageSize int) (any, error) {
	return c.get("/succursales", pageQuery(page, pageSize))
}

// ListMarques retourne une page de marques.
func (c *Client) ListMarques(onlyActive bool, page, pageSize int) (any, error) {
	query := pageQuery(page, pageSize)
	if onlyActive {
		query.Set("actif", "true")
	}

	return c.get("/marques", query)
}
