package middleware

import (
	"net/http"

	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware restreint l'accès aux rôles listés
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentative d'accès sans authentification")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Utilisateur non authentifié", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.RoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Accès refusé pour l'utilisateur ID=%d, Role=%d", userClaims.UserID, userClaims.RoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vous n'avez pas la permission d'accéder à cette ressource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly n'autorise que les administrateurs
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

// AllRoles autorise tout utilisateur authentifié
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleSite})
}
