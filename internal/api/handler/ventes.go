package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/selling"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/apiErrors"
)

// CreateVente décode le formulaire de la console et délègue au service des
// ventes.
func CreateVente(service selling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form domain.VenteForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format de requête invalide", nil)
			return
		}

		vente, err := service.Create(form)
		if err != nil {
			handleVenteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(vente); err != nil {
			logrus.WithError(err).Error("Échec de l'envoi de la vente créée")
		}
	}
}

// UpdateVente décode le patch partiel et délègue au service des ventes. Les
// clés absentes du corps restent inchangées côté backend.
func UpdateVente(service selling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idParam)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identifiant de vente invalide", nil)
			return
		}

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format de requête invalide", nil)
			return
		}

		vente, err := service.Update(id, patch)
		if err != nil {
			handleVenteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vente); err != nil {
			logrus.WithError(err).Error("Échec de l'envoi de la vente mise à jour")
		}
	}
}

func handleVenteError(w http.ResponseWriter, err error) {
	if errors.Is(err, selling.ErrInvalidForm) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Données obligatoires absentes ou invalides", nil)
		return
	}

	logrus.WithError(err).Error("Échec de l'écriture de la vente")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erreur du backoffice lors de l'écriture de la vente", nil)
}
