package normalizing

import (
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

// Normaliseurs des collections de référence. Mêmes règles que pour les
// ventes : sondes d'alias ordonnées, valeurs par défaut sur entrée inconnue.

// NormalizeUser canonise un utilisateur wire.
func NormalizeUser(raw any) domain.User {
	m := asMap(raw)
	if m == nil {
		return domain.User{Active: true}
	}

	return domain.User{
		ID:             intField(m, 0, "id", "Id", "userId", "UserId"),
		Name:           stringField(m, "nom", "name", "fullName", "userName"),
		Email:          stringField(m, "email", "Email", "mail"),
		SiteID:         intField(m, 0, "siteId", "idSite", "SiteId"),
		GroupementID:   intField(m, 0, "groupementId", "idGroupement", "GroupementId"),
		GroupementName: stringField(m, "groupementName", "nomGroupement", "groupement"),
		Active:         boolField(m, true, "actif", "Actif", "active", "Active", "isActive"),
	}
}

// NormalizeGroupement canonise un groupement wire.
func NormalizeGroupement(raw any) domain.Groupement {
	m := asMap(raw)
	if m == nil {
		return domain.Groupement{Active: true}
	}

	return domain.Groupement{
		ID:     intField(m, 0, "id", "Id", "groupementId", "GroupementId"),
		Name:   stringField(m, "nom", "name", "libelle", "groupementName"),
		Active: boolField(m, true, "actif", "Actif", "active", "Active"),
	}
}

// NormalizeSite canonise une filiale ou une succursale wire.
func NormalizeSite(raw any) domain.Site {
	m := asMap(raw)
	if m == nil {
		return domain.Site{Active: true}
	}

	return domain.Site{
		ID:             intField(m, 0, "id", "Id", "siteId", "idFiliale", "idSuccursale"),
		Name:           stringField(m, "nom", "name", "siteName", "libelle"),
		GroupementID:   intField(m, 0, "groupementId", "idGroupement", "GroupementId"),
		GroupementName: stringField(m, "groupementName", "nomGroupement", "groupement"),
		Active:         boolField(m, true, "actif", "Actif", "active", "Active"),
	}
}

// NormalizeMarque canonise une marque wire. L'association site est facultative
// et au plus un des deux identifiants est porté.
func NormalizeMarque(raw any) domain.Marque {
	m := asMap(raw)
	if m == nil {
		return domain.Marque{Active: true}
	}

	return domain.Marque{
		ID:           intField(m, 0, "id", "Id", "marqueId", "MarqueId"),
		Name:         stringField(m, "nom", "name", "libelle", "marqueName"),
		FilialeID:    foreignKey(m, "idFiliale", "IdFiliale", "filialeId", "branchId"),
		SuccursaleID: foreignKey(m, "idSuccursale", "IdSuccursale", "succursaleId", "agencyId"),
		Active:       boolField(m, true, "actif", "Actif", "active", "Active"),
	}
}

// NormalizeUserSite canonise un lien utilisateur-site wire.
func NormalizeUserSite(raw any) domain.UserSite {
	m := asMap(raw)
	if m == nil {
		return domain.UserSite{Active: true}
	}

	return domain.UserSite{
		ID:             intField(m, 0, "id", "Id", "userSiteId", "idUserSite"),
		UserID:         intField(m, 0, "userId", "UserId", "idUser"),
		SiteID:         intField(m, 0, "siteId", "idSite", "SiteId"),
		SiteName:       stringField(m, "siteName", "nomSite", "site"),
		GroupementID:   intField(m, 0, "groupementId", "idGroupement", "GroupementId"),
		GroupementName: stringField(m, "groupementName", "nomGroupement", "groupement"),
		Active:         boolField(m, true, "actif", "Actif", "active", "Active"),
	}
}

// NormalizePeriode canonise une période wire.
func NormalizePeriode(raw any) domain.Periode {
	m := asMap(raw)
	if m == nil {
		return domain.Periode{}
	}

	return domain.Periode{
		ID:            intField(m, 0, "id", "Id", "periodeId", "PeriodeId"),
		Name:          stringField(m, "nom", "name", "libelle", "periodeName"),
		Year:          intField(m, 0, "annee", "Annee", "year", "Year"),
		Month:         intField(m, 0, "mois", "Mois", "month", "Month"),
		Week:          intField(m, 0, "semaine", "Semaine", "week", "Week"),
		StartDate:     stringField(m, "dateDebut", "DateDebut", "startDate"),
		EndDate:       stringField(m, "dateFin", "DateFin", "endDate"),
		TypePeriodeID: intField(m, 0, "typePeriodeId", "idTypePeriode", "TypePeriodeId"),
	}
}

// Users canonise la collection d'utilisateurs d'une réponse enveloppée.
func Users(payload any) []domain.User {
	rows := ExtractArray(payload)

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, NormalizeUser(row))
	}

	return users
}

// Groupements canonise la collection de groupements.
func Groupements(payload any) []domain.Groupement {
	rows := ExtractArray(payload)

	groupements := make([]domain.Groupement, 0, len(rows))
	for _, row := range rows {
		groupements = append(groupements, NormalizeGroupement(row))
	}

	return groupements
}

// Sites canonise une collection de filiales ou de succursales.
func Sites(payload any) []domain.Site {
	rows := ExtractArray(payload)

	sites := make([]domain.Site, 0, len(rows))
	for _, row := range rows {
		sites = append(sites, NormalizeSite(row))
	}

	return sites
}

// Marques canonise la collection de marques.
func Marques(payload any) []domain.Marque {
	rows := ExtractArray(payload)

	marques := make([]domain.Marque, 0, len(rows))
	for _, row := range rows {
		marques = append(marques, NormalizeMarque(row))
	}

	return marques
}

// UserSites canonise la collection de liens utilisateur-site.
func UserSites(payload any) []domain.UserSite {
	rows := ExtractArray(payload)

	links := make([]domain.UserSite, 0, len(rows))
	for _, row := range rows {
		links = append(links, NormalizeUserSite(row))
	}

	return links
}

// Periodes canonise la collection de périodes.
func Periodes(payload any) []domain.Periode {
	rows := ExtractArray(payload)

	periodes := make([]domain.Periode, 0, len(rows))
	for _, row := range rows {
		periodes = append(periodes, NormalizePeriode(row))
	}

	return periodes
}
