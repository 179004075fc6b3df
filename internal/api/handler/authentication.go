package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/authenticating"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/apiErrors"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format de requête invalide", nil)
			return
		}

		token, identity, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"user":  identity,
		}); err != nil {
			logrus.WithError(err).Error("Échec de l'envoi de la réponse de login")
		}
	}
}

// GetMe retourne l'identité portée par le jeton validé
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Utilisateur non authentifié", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(claims.Identity); err != nil {
			logrus.WithError(err).Error("Échec de l'envoi de la réponse")
		}
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Identifiants invalides", nil)

	case errors.Is(err, authenticating.ErrDisabledAccount):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Compte désactivé", nil)

	default:
		logrus.WithError(err).Error("Erreur interne lors du login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur interne lors du login", nil)
	}
}
