package selling

import (
	"github.com/pkg/errors"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/normalizing"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

// ErrInvalidForm signale un formulaire sans les champs obligatoires.
var ErrInvalidForm = errors.New("formulaire de vente invalide")

// Service porte l'écriture des ventes : construction du payload sortant puis
// délégation au backoffice.
type Service interface {
	// Create transforme le formulaire en payload de création et le transmet
	Create(form domain.VenteForm) (domain.Vente, error)
	// Update transmet le patch partiel, clés absentes inchangées côté backend
	Update(id int, patch map[string]any) (domain.Vente, error)
}

// NewService construit le service des ventes.
func NewService(ventes backoffice.VenteRepository) Service {
	return &service{ventes: ventes}
}

type service struct {
	ventes backoffice.VenteRepository
}

func (s *service) Create(form domain.VenteForm) (domain.Vente, error) {
	payload := normalizing.BuildCreatePayload(form)
	if payload.TypeVenteID <= 0 || payload.UserID <= 0 {
		return domain.Vente{}, ErrInvalidForm
	}

	response, err := s.ventes.CreateVente(payload)
	if err != nil {
		log.L.WithError(err).Error("échec de la création de la vente")
		return domain.Vente{}, errors.Wrap(err, "création de la vente")
	}

	return venteFromResponse(response), nil
}

func (s *service) Update(id int, patch map[string]any) (domain.Vente, error) {
	if id <= 0 {
		return domain.Vente{}, ErrInvalidForm
	}

	outbound := normalizing.BuildUpdatePayload(patch)
	if len(outbound) == 0 {
		return domain.Vente{}, ErrInvalidForm
	}

	response, err := s.ventes.UpdateVente(id, outbound)
	if err != nil {
		log.L.WithError(err).WithField("venteId", id).Error("échec de la mise à jour de la vente")
		return domain.Vente{}, errors.Wrap(err, "mise à jour de la vente")
	}

	return venteFromResponse(response), nil
}

// venteFromResponse canonise l'enregistrement renvoyé, enveloppé ou non.
func venteFromResponse(payload any) domain.Vente {
	if rows := normalizing.ExtractArray(payload); len(rows) > 0 {
		return normalizing.NormalizeVente(rows[0])
	}
	return normalizing.NormalizeVente(payload)
}
