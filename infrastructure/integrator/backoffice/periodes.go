package backoffice

// ListActivePeriodes retourne une page des périodes d'objectifs actives.
func (c *Client) ListActivePeriodes(page, pageSize int) (any, error) {
	query := pageQuery(page, pageSize)
	query.Set("actif", "true")

	return c.get("/periodes", query)
}
