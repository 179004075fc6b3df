package backoffice

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

// ListVentes retourne une page de ventes pour la fenêtre calendaire donnée.
func (c *Client) ListVentes(q VenteQuery) (any, error) {
	query := pageQuery(q.Page, q.PageSize)
	query.Set("anneeDebut", strconv.Itoa(q.YearFrom))
	query.Set("anneeFin", strconv.Itoa(q.YearTo))
	query.Set("moisDebut", strconv.Itoa(q.MonthFrom))
	query.Set("moisFin", strconv.Itoa(q.MonthTo))

	// Au plus un des deux filtres de site est posé selon le type d'affectation
	if q.FilialeID != nil {
		query.Set("idFiliale", strconv.Itoa(*q.FilialeID))
	}
	if q.SuccursaleID != nil {
		query.Set("idSuccursale", strconv.Itoa(*q.SuccursaleID))
	}

	return c.get("/ventes", query)
}

// CreateVente transmet le payload de création tel quel.
func (c *Client) CreateVente(payload *domain.VentePayload) (any, error) {
	return c.send(http.MethodPost, "/ventes", payload)
}

// UpdateVente transmet le patch partiel : les clés absentes restent
// inchangées côté backend, les valeurs null effacent explicitement.
func (c *Client) UpdateVente(id int, patch map[string]any) (any, error) {
	return c.send(http.MethodPut, fmt.Sprintf("/ventes/%d", id), patch)
}
