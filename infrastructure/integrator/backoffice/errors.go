package backoffice

import (
	"fmt"

	"github.com/pkg/errors"
)

// GenericErrorMessage est le repli quand aucune information exploitable
// n'accompagne l'échec.
const GenericErrorMessage = "Une erreur est survenue lors du chargement des données"

// ErrorPayload est le corps d'erreur optionnel renvoyé par le backoffice.
type ErrorPayload struct {
	Error string `json:"error"`
}

// TransportError est l'échec d'un appel au backoffice. Il porte le statut
// HTTP, l'identifiant de la requête sortante et le payload {error} s'il était
// présent.
type TransportError struct {
	Status    int
	RequestID string
	Payload   ErrorPayload
}

func (e *TransportError) Error() string {
	if e.Payload.Error != "" {
		return e.Payload.Error
	}
	return fmt.Sprintf("backoffice: statut %d (requête %s)", e.Status, e.RequestID)
}

// MessageFromError dérive le message utilisateur d'un échec de cycle :
// payload {error} du backoffice, sinon message de l'erreur, sinon repli
// générique.
func MessageFromError(err error) string {
	if err == nil {
		return GenericErrorMessage
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) && transportErr.Payload.Error != "" {
		return transportErr.Payload.Error
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return GenericErrorMessage
}
