package utils

import (
	"strings"
	"time"
)

// Formats de date acceptés pour les bornes de période. Le backoffice renvoie
// selon les endpoints une date simple ou un horodatage complet.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate tente les formats connus dans l'ordre et retourne la première
// date valide.
func ParseDate(dateStr string) (*time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)

	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return &parsed, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
