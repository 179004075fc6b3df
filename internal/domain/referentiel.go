package domain

// Formes canoniques des collections de référence consommées par l'agrégation.
// Reconstruites à chaque cycle, jamais conservées au-delà.

type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	SiteID         int    `json:"siteId,omitempty"`
	GroupementID   int    `json:"groupementId,omitempty"`
	GroupementName string `json:"groupementName,omitempty"`
	Active         bool   `json:"active"`
}

type Groupement struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Site est une filiale ou une succursale selon la collection d'origine.
type Site struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	GroupementID   int    `json:"groupementId,omitempty"`
	GroupementName string `json:"groupementName,omitempty"`
	Active         bool   `json:"active"`
}

// Marque porte une association site facultative : idFiliale ou idSuccursale,
// au plus un site propriétaire.
type Marque struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FilialeID    *int   `json:"branchId"`
	SuccursaleID *int   `json:"agencyId"`
	Active       bool   `json:"active"`
}

// UserSite est le lien utilisateur-site tel que canonisé depuis le backoffice.
type UserSite struct {
	ID             int    `json:"id"`
	UserID         int    `json:"userId"`
	SiteID         int    `json:"siteId"`
	SiteName       string `json:"siteName,omitempty"`
	GroupementID   int    `json:"groupementId,omitempty"`
	GroupementName string `json:"groupementName,omitempty"`
	Active         bool   `json:"active"`
}
