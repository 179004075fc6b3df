package domain

// Vente est la forme canonique d'un enregistrement de vente, indépendante des
// variations de nommage du backoffice (venteId/VenteId/id, idFiliale/IdFiliale...).
// Les clés étrangères valant 0 côté wire sont normalisées à nil : pour cette
// entité, 0 est la sentinelle "absent" du backend.
type Vente struct {
	ID               int      `json:"id"`
	TypeSaleID       int      `json:"typeSaleId"`
	TypeSaleName     string   `json:"typeSaleName,omitempty"`
	UserID           int      `json:"userId"`
	BranchID         *int     `json:"branchId"`
	AgencyID         *int     `json:"agencyId"`
	BrandID          *int     `json:"brandId"`
	ModelID          *int     `json:"modelId"`
	VersionID        *int     `json:"versionId"`
	UnitPrice        float64  `json:"unitPrice"`
	Revenue          float64  `json:"revenue"`
	Margin           *float64 `json:"margin"`
	MarginPercentage *float64 `json:"marginPercentage"`
	Volume           int      `json:"volume"`
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	PeriodLabel      string   `json:"periodLabel,omitempty"`
	Active           bool     `json:"active"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}

// VentePayload est l'enregistrement sortant pour la création d'une vente.
// Les clés étrangères optionnelles sont des pointeurs : nil est transmis comme
// null explicite (le backend distingue null de 0 à l'écriture).
type VentePayload struct {
	TypeVenteID     int      `json:"typeVenteId"`
	UserID          int      `json:"userId"`
	FilialeID       *int     `json:"idFiliale"`
	SuccursaleID    *int     `json:"idSuccursale"`
	MarqueID        *int     `json:"marqueId"`
	ModeleID        *int     `json:"modeleId"`
	VersionID       *int     `json:"versionId"`
	PrixUnitaire    float64  `json:"prixUnitaire"`
	ChiffreAffaires float64  `json:"chiffreAffaires"`
	Marge           *float64 `json:"marge"`
	Volume          int      `json:"volume"`
	Annee           int      `json:"annee"`
	Mois            int      `json:"mois"`
	Actif           bool     `json:"actif"`
}

// Granularités cible du formulaire de vente : elles conditionnent quelles clés
// étrangères profondes sont incluses dans le payload sortant.
const (
	GranulariteMarque  = "marque"
	GranulariteModele  = "modele"
	GranulariteVersion = "version"
)

// VenteForm est l'état du formulaire de création tel que soumis par la console :
// tous les champs numériques arrivent en texte.
type VenteForm struct {
	TypeVenteID  string `json:"typeVenteId"`
	UserID       string `json:"userId"`
	FilialeID    string `json:"idFiliale"`
	SuccursaleID string `json:"idSuccursale"`
	MarqueID     string `json:"marqueId"`
	ModeleID     string `json:"modeleId"`
	VersionID    string `json:"versionId"`
	PrixUnitaire string `json:"prixUnitaire"`
	CA           string `json:"chiffreAffaires"`
	Marge        string `json:"marge"`
	Volume       string `json:"volume"`
	Annee        string `json:"annee"`
	Mois         string `json:"mois"`
	Granularite  string `json:"granularite"`
	Actif        *bool  `json:"actif"`
}
