package backoffice

import (
	"net/url"
	"strconv"
)

// ListUsers retourne la collection des utilisateurs, éventuellement limitée
// aux actifs.
func (c *Client) ListUsers(activeOnly bool) (any, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("actif", "true")
	}

	return c.get("/users", query)
}

// Login délègue la vérification des identifiants au backoffice.
func (c *Client) Login(email, password string) (any, error) {
	return c.send("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func pageQuery(page, pageSize int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	return query
}
