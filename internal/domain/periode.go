package domain

// Periode est la forme canonique d'une période d'objectifs.
// L'ordre total (annee, mois, semaine, id), chacun décroissant, sert à élire la
// période "courante" ; l'id, unique, tranche en dernier.
type Periode struct {
	ID            int    `json:"id"`
	Name          string `json:"name,omitempty"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Week          int    `json:"week"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	TypePeriodeID int    `json:"typePeriodeId"`
}

// MonthBounds est la fenêtre calendaire (mois 1..12) dérivée d'une période.
type MonthBounds struct {
	YearFrom  int `json:"yearFrom"`
	YearTo    int `json:"yearTo"`
	MonthFrom int `json:"monthFrom"`
	MonthTo   int `json:"monthTo"`
}
