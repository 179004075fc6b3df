package normalizing

import (
	"strconv"
	"strings"
	"time"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
)

// Construction des payloads sortants vers le backoffice. Le contrat d'écriture
// distingue null (effacement explicite) d'absent (champ inchangé) : la
// construction préserve cette distinction telle quelle, la fusionner serait un
// bug de correction.

// parseIntOr parse un champ texte entier, avec repli spécifique au champ.
func parseIntOr(raw string, def int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

// parseFloatOr parse un champ texte décimal, avec repli spécifique au champ.
func parseFloatOr(raw string, def float64) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return def
	}
	return parsed
}

// parseForeignKey parse une clé étrangère optionnelle du formulaire : chaîne
// vide ou valeur parsée <= 0 donnent null explicite.
func parseForeignKey(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed <= 0 {
		return nil
	}
	return &parsed
}

// parseOptionalFloat parse un décimal optionnel : chaîne vide ou non numérique
// donnent null explicite.
func parseOptionalFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// BuildCreatePayload transforme l'état du formulaire en payload de création.
// La granularité cible conditionne les clés étrangères profondes incluses :
// "version" porte modèle et version, "modele" porte le modèle seul, "marque"
// (et toute valeur inconnue) annule les deux.
func BuildCreatePayload(form domain.VenteForm) *domain.VentePayload {
	now := time.Now()

	payload := &domain.VentePayload{
		TypeVenteID:     parseIntOr(form.TypeVenteID, 0),
		UserID:          parseIntOr(form.UserID, 0),
		FilialeID:       parseForeignKey(form.FilialeID),
		SuccursaleID:    parseForeignKey(form.SuccursaleID),
		MarqueID:        parseForeignKey(form.MarqueID),
		PrixUnitaire:    parseFloatOr(form.PrixUnitaire, 0),
		ChiffreAffaires: parseFloatOr(form.CA, 0),
		Marge:           parseOptionalFloat(form.Marge),
		Volume:          parseIntOr(form.Volume, 0),
		Annee:           parseIntOr(form.Annee, now.Year()),
		Mois:            parseIntOr(form.Mois, int(now.Month())),
		Actif:           true,
	}

	if form.Actif != nil {
		payload.Actif = *form.Actif
	}

	switch strings.ToLower(strings.TrimSpace(form.Granularite)) {
	case domain.GranulariteVersion:
		payload.ModeleID = parseForeignKey(form.ModeleID)
		payload.VersionID = parseForeignKey(form.VersionID)
	case domain.GranulariteModele:
		payload.ModeleID = parseForeignKey(form.ModeleID)
		payload.VersionID = nil
	default:
		// granularité marque : les niveaux modèle et version sont annulés
		payload.ModeleID = nil
		payload.VersionID = nil
	}

	return payload
}

// Conversions par clé pour le patch de mise à jour. Les clés non répertoriées
// passent telles quelles.
var updateFieldKinds = map[string]string{
	"typeVenteId":     "int",
	"userId":          "int",
	"idFiliale":       "fk",
	"idSuccursale":    "fk",
	"marqueId":        "fk",
	"modeleId":        "fk",
	"versionId":       "fk",
	"prixUnitaire":    "float",
	"chiffreAffaires": "float",
	"marge":           "optionalFloat",
	"volume":          "int",
	"annee":           "int",
	"mois":            "int",
	"actif":           "bool",
}

// BuildUpdatePayload construit le patch partiel de mise à jour. Seules les
// clés présentes dans l'entrée figurent dans le résultat : une clé absente
// signifie "inchangé" côté backend, une valeur null signifie "effacer". Les
// valeurs textuelles sont converties selon le type attendu de la clé.
func BuildUpdatePayload(patch map[string]any) map[string]any {
	out := make(map[string]any, len(patch))

	for key, value := range patch {
		if value == nil {
			out[key] = nil
			continue
		}

		switch updateFieldKinds[key] {
		case "int":
			out[key] = convertInt(value)
		case "fk":
			out[key] = convertForeignKey(value)
		case "float":
			out[key] = convertFloat(value)
		case "optionalFloat":
			out[key] = convertOptionalFloat(value)
		case "bool":
			out[key] = convertBool(value)
		default:
			out[key] = value
		}
	}

	return out
}

func convertInt(value any) int {
	if text, ok := value.(string); ok {
		return parseIntOr(text, 0)
	}
	if parsed, ok := toNumber(value); ok {
		return int(parsed)
	}
	return 0
}

// convertForeignKey applique la convention sortante : <= 0 ou chaîne vide
// deviennent null explicite.
func convertForeignKey(value any) any {
	if text, ok := value.(string); ok {
		if fk := parseForeignKey(text); fk != nil {
			return *fk
		}
		return nil
	}
	if parsed, ok := toNumber(value); ok && parsed > 0 {
		return int(parsed)
	}
	return nil
}

func convertFloat(value any) float64 {
	if text, ok := value.(string); ok {
		return parseFloatOr(text, 0)
	}
	if parsed, ok := toNumber(value); ok {
		return parsed
	}
	return 0
}

// convertOptionalFloat : chaîne vide ou valeur non numérique donnent null.
func convertOptionalFloat(value any) any {
	if text, ok := value.(string); ok {
		if parsed := parseOptionalFloat(text); parsed != nil {
			return *parsed
		}
		return nil
	}
	if parsed, ok := toNumber(value); ok {
		return parsed
	}
	return nil
}

func convertBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(v))
		return trimmed == "true" || trimmed == "1"
	default:
		if parsed, ok := toNumber(value); ok {
			return parsed != 0
		}
		return false
	}
}
