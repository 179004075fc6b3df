package normalizing

import (
	"math"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

// Les réponses du backoffice enveloppent leurs données à des profondeurs
// variables selon les endpoints. L'extraction essaie une liste ordonnée de
// formes connues et dégrade silencieusement : une enveloppe inconnue donne
// une collection vide, jamais une erreur.

// envelopeProbe est une tentative typée de résolution d'un chemin dans
// l'enveloppe.
type envelopeProbe struct {
	steps []string
}

// resolve suit le chemin de la sonde à travers les objets imbriqués.
func (p envelopeProbe) resolve(payload any) (any, bool) {
	current := payload
	for _, step := range p.steps {
		m := asMap(current)
		if m == nil {
			return nil, false
		}
		value, ok := m[step]
		if !ok || value == nil {
			return nil, false
		}
		current = value
	}
	return current, true
}

// Chemins candidats vers le tableau d'enregistrements, essayés dans l'ordre.
var arrayProbes = []envelopeProbe{
	{steps: nil}, // le payload lui-même
	{steps: []string{"data"}},
	{steps: []string{"data", "data"}},
	{steps: []string{"items"}},
	{steps: []string{"results"}},
	{steps: []string{"records"}},
	{steps: []string{"rows"}},
	{steps: []string{"data", "items"}},
	{steps: []string{"data", "records"}},
}

// Chemins candidats vers l'objet de métadonnées de pagination.
var paginationProbes = []envelopeProbe{
	{steps: []string{"pagination"}},
	{steps: []string{"data", "pagination"}},
	{steps: []string{"data", "data", "pagination"}},
	{steps: []string{"meta"}},
	{steps: []string{"data", "meta"}},
}

// ExtractArray retourne le premier tableau trouvé parmi les chemins connus,
// ou une collection vide si aucune forme ne correspond. Totale, ne panique
// jamais.
func ExtractArray(payload any) []any {
	for _, probe := range arrayProbes {
		value, ok := probe.resolve(payload)
		if !ok {
			continue
		}
		if rows, ok := value.([]any); ok {
			return rows
		}
	}

	return []any{}
}

// ExtractPagination cherche les métadonnées de pagination parmi les chemins
// connus. Sans métadonnées, rowCountHint > 0 donne un repli mono-page ;
// sinon le résultat reste vide.
func ExtractPagination(payload any, rowCountHint int) domain.Pagination {
	for _, probe := range paginationProbes {
		value, ok := probe.resolve(payload)
		if !ok {
			continue
		}
		meta := asMap(value)
		if meta == nil {
			continue
		}

		pagination := domain.Pagination{
			Page:         intField(meta, 0, "page", "currentPage"),
			PageSize:     intField(meta, 0, "pageSize", "limit"),
			TotalRecords: intField(meta, 0, "totalRecords", "totalCount", "itemsOnPage"),
			TotalPages:   intField(meta, 0, "totalPages"),
		}

		// totalPages est calculé quand le backend ne le fournit pas
		if pagination.TotalPages <= 0 {
			pagination.TotalPages = 1
			if pagination.PageSize > 0 {
				computed := int(math.Ceil(float64(pagination.TotalRecords) / float64(pagination.PageSize)))
				if computed > 1 {
					pagination.TotalPages = computed
				}
			}
		}

		return pagination
	}

	if rowCountHint > 0 {
		return domain.Pagination{
			TotalRecords: rowCountHint,
			TotalPages:   1,
		}
	}

	return domain.Pagination{}
}
