package authenticating

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/normalizing"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

var (
	// ErrInvalidCredentials couvre tout échec de vérification des identifiants
	ErrInvalidCredentials = errors.New("identifiants invalides")
	// ErrDisabledAccount signale un compte désactivé côté backoffice
	ErrDisabledAccount = errors.New("compte désactivé")
	// ErrInvalidToken couvre tout jeton illisible, falsifié ou expiré
	ErrInvalidToken = errors.New("jeton invalide")
)

// Authenticator vérifie les identifiants et gère le cycle de vie des jetons.
type Authenticator interface {
	// Login vérifie les identifiants et retourne le jeton signé et l'identité
	Login(email, password string) (string, domain.Identity, error)
	// ValidateToken vérifie la signature et l'expiration du jeton
	ValidateToken(token string) (*domain.Claims, error)
}

// NewService construit le service d'authentification. La vérification des
// identifiants est déléguée au backoffice, sauf pour le compte administrateur
// d'amorçage vérifié localement par bcrypt.
func NewService(login backoffice.LoginRepository, cfg config.Auth) Authenticator {
	return &service{login: login, cfg: cfg}
}

type service struct {
	login backoffice.LoginRepository
	cfg   config.Auth
}

func (s *service) Login(email, password string) (string, domain.Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domain.Identity{}, ErrInvalidCredentials
	}

	identity, err := s.verify(email, password)
	if err != nil {
		return "", domain.Identity{}, err
	}

	token, err := s.mint(identity)
	if err != nil {
		return "", domain.Identity{}, errors.Wrap(err, "signature du jeton")
	}

	return token, identity, nil
}

// verify contrôle les identifiants : compte d'amorçage local d'abord,
// délégation au backoffice sinon.
func (s *service) verify(email, password string) (domain.Identity, error) {
	if s.cfg.AdminEmail != "" && email == strings.ToLower(s.cfg.AdminEmail) {
		err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password))
		if err != nil {
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{
			Email:  email,
			RoleID: domain.RoleAdmin,
		}, nil
	}

	payload, err := s.login.Login(email, password)
	if err != nil {
		log.L.WithError(err).WithField("email", email).Warn("échec de l'authentification backoffice")
		return domain.Identity{}, ErrInvalidCredentials
	}

	profile := profileFromPayload(payload)
	if !profile.Active {
		return domain.Identity{}, ErrDisabledAccount
	}

	return domain.Identity{
		UserID:         profile.ID,
		Email:          email,
		RoleID:         domain.RoleSite,
		SiteID:         profile.SiteID,
		GroupementID:   profile.GroupementID,
		GroupementName: profile.GroupementName,
	}, nil
}

// profileFromPayload canonise la réponse de login, enveloppée ou non.
func profileFromPayload(payload any) domain.User {
	if rows := normalizing.ExtractArray(payload); len(rows) > 0 {
		return normalizing.NormalizeUser(rows[0])
	}
	return normalizing.NormalizeUser(payload)
}

func (s *service) mint(identity domain.Identity) (string, error) {
	now := time.Now()

	claims := domain.Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
