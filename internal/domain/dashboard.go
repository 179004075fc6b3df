package domain

// NoActivePeriodLabel est la sentinelle de KPIs quand aucune période active
// n'est élue.
const NoActivePeriodLabel = "no active period"

// Pagination regroupe les métadonnées de pagination extraites des enveloppes
// du backoffice. Dérivée, jamais persistée.
type Pagination struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// CountStat est un compteur par catégorie. Invariant : Active <= Total.
type CountStat struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// DashboardStats est la cartographie à forme fixe des compteurs du tableau de
// bord. Elle est remplacée intégralement à chaque cycle d'agrégation réussi et
// remise à zéro sur échec, jamais patchée champ par champ.
type DashboardStats struct {
	Users         CountStat `json:"users"`
	Groupements   CountStat `json:"groupements"`
	Branches      CountStat `json:"branches"`
	Agencies      CountStat `json:"agencies"`
	Brands        CountStat `json:"brands"`
	Sites         CountStat `json:"sites"`
	UserSiteLinks CountStat `json:"userSiteLinks"`
}

// PeriodKpis sont les indicateurs de la période courante.
type PeriodKpis struct {
	PeriodLabel    string `json:"periodLabel"`
	ObjectiveCount int    `json:"objectiveCount"`
	SaleCount      int    `json:"saleCount"`
}

// EmptyStats retourne l'état neutre du tableau de bord.
func EmptyStats() DashboardStats {
	return DashboardStats{}
}

// EmptyKpis retourne la sentinelle "aucune période active".
func EmptyKpis() PeriodKpis {
	return PeriodKpis{PeriodLabel: NoActivePeriodLabel}
}
