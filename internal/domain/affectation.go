package domain

import "strings"

// SiteType distingue les deux familles de sites du réseau.
type SiteType string

const (
	SiteTypeFiliale    SiteType = "Filiale"
	SiteTypeSuccursale SiteType = "Succursale"
)

// Affectation est l'association d'un utilisateur à exactement un site et à son
// groupement propriétaire.
type Affectation struct {
	AssignmentID   int      `json:"assignmentId"`
	GroupementID   int      `json:"groupementId"`
	GroupementName string   `json:"groupementName"`
	SiteID         int      `json:"siteId"`
	SiteName       string   `json:"siteName"`
	SiteType       SiteType `json:"siteType"`
	Active         bool     `json:"active"`
}

// SiteTypeFromGroupement déduit le type de site uniquement du nom du
// groupement : "succursale" (insensible à la casse, espaces ignorés) donne
// Succursale, tout le reste donne Filiale.
func SiteTypeFromGroupement(groupementName string) SiteType {
	if strings.EqualFold(strings.TrimSpace(groupementName), "succursale") {
		return SiteTypeSuccursale
	}
	return SiteTypeFiliale
}

// Usable indique si l'affectation est exploitable : un site positif et un nom
// de groupement non vide. Sinon elle est traitée comme inexistante.
func (a *Affectation) Usable() bool {
	if a == nil {
		return false
	}
	return a.SiteID > 0 && strings.TrimSpace(a.GroupementName) != ""
}
