package backoffice

import (
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Les dépôts du backoffice sont des collaborateurs opaques : leurs réponses
// sont retournées décodées mais non typées (any). L'interprétation des formes
// d'enveloppe appartient entièrement au canonicaliseur.

// UserRepository liste les utilisateurs de la console
type UserRepository interface {
	// ListUsers retourne la collection complète ou seulement les actifs
	ListUsers(activeOnly bool) (any, error)
}

// GroupementRepository liste les groupements du réseau
type GroupementRepository interface {
	ListGroupements() (any, error)
}

// FilialeRepository liste les sites de type filiale
type FilialeRepository interface {
	ListFiliales(page, pageSize int) (any, error)
}

// SuccursaleRepository liste les sites de type succursale
type SuccursaleRepository interface {
	ListSuccursales(page, pageSize int) (any, error)
}

// MarqueRepository liste les marques commercialisées
type MarqueRepository interface {
	ListMarques(onlyActive bool, page, pageSize int) (any, error)
}

// UserSiteFilters restreint la recherche de liens utilisateur-site
type UserSiteFilters struct {
	SiteID     int
	ActiveOnly bool
}

// UserSiteRepository expose les liens utilisateur-site
type UserSiteRepository interface {
	ListUserSites() (any, error)
	GetUserSiteByID(id int) (any, error)
	SearchUserSites(filters UserSiteFilters) (any, error)
}

// PeriodeRepository liste les périodes d'objectifs actives
type PeriodeRepository interface {
	ListActivePeriodes(page, pageSize int) (any, error)
}

// ObjectifRepository expose la vue des objectifs d'une période
type ObjectifRepository interface {
	// ListObjectifsView filtre par période, et par site en mode restreint
	ListObjectifsView(periodeID int, siteID *int) (any, error)
}

// VenteQuery décrit la requête de liste des ventes
type VenteQuery struct {
	Page         int
	PageSize     int
	YearFrom     int
	YearTo       int
	MonthFrom    int
	MonthTo      int
	FilialeID    *int
	SuccursaleID *int
}

// VenteRepository expose les ventes
type VenteRepository interface {
	ListVentes(query VenteQuery) (any, error)
	CreateVente(payload *domain.VentePayload) (any, error)
	UpdateVente(id int, patch map[string]any) (any, error)
}

// LoginRepository délègue la vérification des identifiants au backoffice
type LoginRepository interface {
	// Login retourne le profil brut de l'utilisateur authentifié
	Login(email, password string) (any, error)
}

// Repositories regroupe l'ensemble des collaborateurs du backoffice
type Repositories interface {
	UserRepository
	GroupementRepository
	FilialeRepository
	SuccursaleRepository
	MarqueRepository
	UserSiteRepository
	PeriodeRepository
	ObjectifRepository
	VenteRepository
	LoginRepository
}
