package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/dashboarding"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/apiErrors"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/middleware"
)

// GetGlobalDashboard exécute un cycle d'agrégation sur tout le réseau.
// Réservé aux administrateurs.
func GetGlobalDashboard(engine dashboarding.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := engine.LoadGlobal(r.Context())
		if err != nil {
			logrus.WithError(err).Warn("Cycle global du tableau de bord en échec")
		}

		// Les échecs de transport sont portés par le snapshot lui-même :
		// compteurs neutres plus message, statut 200
		writeSnapshot(w, snapshot)
	}
}

// GetSiteDashboard exécute un cycle restreint au périmètre de l'identité du
// jeton.
func GetSiteDashboard(engine dashboarding.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Utilisateur non authentifié", nil)
			return
		}

		snapshot, err := engine.LoadSite(r.Context(), claims.Identity)
		if errors.Is(err, dashboarding.ErrNoActiveAssignment) {
			apiErrors.WriteError(w, apiErrors.ErrNoActiveAssignment, snapshot.Error, nil)
			return
		}
		if err != nil {
			logrus.WithError(err).WithField("userId", claims.UserID).
				Warn("Cycle restreint du tableau de bord en échec")
		}

		writeSnapshot(w, snapshot)
	}
}

// RefreshDashboard force un nouveau cycle global hors planification.
func RefreshDashboard(engine dashboarding.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := engine.LoadGlobal(r.Context())
		if err != nil {
			logrus.WithError(err).Warn("Rafraîchissement manuel du tableau de bord en échec")
		}

		writeSnapshot(w, snapshot)
	}
}

// ClearDashboardError efface le message d'erreur du périmètre de l'identité.
func ClearDashboardError(engine dashboarding.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Utilisateur non authentifié", nil)
			return
		}

		identity := claims.Identity
		engine.ClearError(&identity)

		writeSnapshot(w, engine.Current(&identity))
	}
}

func writeSnapshot(w http.ResponseWriter, snapshot dashboarding.Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logrus.WithError(err).Error("Échec de l'envoi du snapshot du tableau de bord")
	}
}
