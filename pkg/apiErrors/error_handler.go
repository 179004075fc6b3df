package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Codes d'erreur exposés à la console
const (
	// Erreurs d'authentification (AUTH_xxx)
	ErrInvalidCredentials    = "AUTH_001" // Identifiants invalides
	ErrUserDisabled          = "AUTH_002" // Compte désactivé
	ErrInvalidToken          = "AUTH_003" // Jeton invalide
	ErrExpiredToken          = "AUTH_004" // Jeton expiré
	ErrInsufficientPrivilege = "AUTH_005" // Privilèges insuffisants

	// Erreurs de validation (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requête invalide
	ErrMissingRequiredData = "VAL_002" // Données obligatoires absentes

	// Erreurs métier (DSH_xxx)
	ErrNoActiveAssignment = "DSH_001" // Aucune affectation active pour l'utilisateur

	// Erreurs serveur (SRV_xxx)
	ErrInternalServer  = "SRV_001" // Erreur interne
	ErrExternalService = "SRV_002" // Erreur du backoffice
	ErrCommunication   = "SRV_003" // Erreur de communication
)

// Correspondance code d'erreur -> statut HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrNoActiveAssignment:    http.StatusUnprocessableEntity,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError est l'erreur standardisée renvoyée par l'API
type APIError struct {
	Code    string `json:"code"`              // Code d'erreur pour le client
	Message string `json:"message,omitempty"` // Message descriptif (optionnel)
	Details any    `json:"details,omitempty"` // Détails additionnels (optionnel)
}

// WriteError écrit l'erreur standardisée dans la réponse HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError construit une APIError à partir d'une erreur Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erreur inconnue",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
