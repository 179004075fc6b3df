package scoping

import (
	"strings"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

// Filtres purs de restriction des collections canoniques au périmètre d'une
// affectation. Totaux : entrée vide ou critère absent donnent une collection
// vide, jamais d'erreur.

// ByPositiveID garde les éléments dont l'identifiant extrait égale id, quand
// id est strictement positif.
func ByPositiveID[T any](collection []T, id int, accessor func(T) int) []T {
	filtered := make([]T, 0, len(collection))
	if id <= 0 {
		return filtered
	}

	for _, item := range collection {
		if accessor(item) == id {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// ByGroupement filtre par identifiant de groupement quand il est positif,
// sinon par égalité de nom épuré insensible à la casse.
func ByGroupement[T any](collection []T, groupementID int, nameFallback string,
	idOf func(T) int, nameOf func(T) string) []T {

	if groupementID > 0 {
		return ByPositiveID(collection, groupementID, idOf)
	}

	filtered := make([]T, 0, len(collection))
	wanted := strings.TrimSpace(nameFallback)
	if wanted == "" {
		return filtered
	}

	for _, item := range collection {
		if strings.EqualFold(strings.TrimSpace(nameOf(item)), wanted) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// MarquesBySiteType restreint les marques au site d'affectation : l'association
// testée est idFiliale pour une filiale, idSuccursale pour une succursale.
func MarquesBySiteType(marques []domain.Marque, siteType domain.SiteType, siteID int) []domain.Marque {
	filtered := make([]domain.Marque, 0, len(marques))
	if siteID <= 0 {
		return filtered
	}

	for _, marque := range marques {
		var association *int
		switch siteType {
		case domain.SiteTypeFiliale:
			association = marque.FilialeID
		case domain.SiteTypeSuccursale:
			association = marque.SuccursaleID
		default:
			continue
		}

		if association != nil && *association == siteID {
			filtered = append(filtered, marque)
		}
	}

	return filtered
}
