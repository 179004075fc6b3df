package normalizing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Sondes de champ : chaque champ canonique est lu en essayant une liste
// ordonnée d'alias de nommage wire, le premier présent gagne. Toutes les
// fonctions sont totales : entrée nulle ou de type inattendu dégrade vers la
// valeur par défaut du champ, jamais de panique.

// asMap ramène un enregistrement wire quelconque à un objet exploitable.
func asMap(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return nil
}

// toNumber applique la sémantique Number(...) : nombres natifs, json.Number
// et chaînes numériques sont acceptés, tout résultat non fini est rejeté.
func toNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, false
		}
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// firstPresent retourne la valeur du premier alias présent dans l'objet.
func firstPresent(m map[string]any, aliases ...string) (any, bool) {
	for _, alias := range aliases {
		if value, ok := m[alias]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// numberField lit un champ numérique, avec repli spécifique au champ.
func numberField(m map[string]any, def float64, aliases ...string) float64 {
	for _, alias := range aliases {
		value, ok := m[alias]
		if !ok || value == nil {
			continue
		}
		if parsed, ok := toNumber(value); ok {
			return parsed
		}
	}
	return def
}

// intField lit un champ entier, avec repli spécifique au champ.
func intField(m map[string]any, def int, aliases ...string) int {
	parsed := numberField(m, float64(def), aliases...)
	return int(parsed)
}

// foreignKey lit une clé étrangère nullable : toute valeur <= 0 après parsing
// est la sentinelle "absent" du backend et devient nil.
func foreignKey(m map[string]any, aliases ...string) *int {
	for _, alias := range aliases {
		value, ok := m[alias]
		if !ok || value == nil {
			continue
		}
		parsed, ok := toNumber(value)
		if !ok {
			continue
		}
		if parsed <= 0 {
			return nil
		}
		id := int(parsed)
		return &id
	}
	return nil
}

// optionalNumber lit un champ numérique nullable (marge, pourcentage...).
func optionalNumber(m map[string]any, aliases ...string) *float64 {
	for _, alias := range aliases {
		value, ok := m[alias]
		if !ok || value == nil {
			continue
		}
		if parsed, ok := toNumber(value); ok {
			return &parsed
		}
	}
	return nil
}

// stringField retourne le premier alias dont la valeur épurée est non vide.
func stringField(m map[string]any, aliases ...string) string {
	for _, alias := range aliases {
		value, ok := m[alias]
		if !ok {
			continue
		}
		if text, ok := value.(string); ok {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// boolField lit un booléen, les encodages numériques 0/1 sont tolérés.
func boolField(m map[string]any, def bool, aliases ...string) bool {
	value, ok := firstPresent(m, aliases...)
	if !ok {
		return def
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "true" || trimmed == "1" {
			return true
		}
		if trimmed == "false" || trimmed == "0" {
			return false
		}
		return def
	default:
		if parsed, ok := toNumber(value); ok {
			return parsed != 0
		}
		return def
	}
}
