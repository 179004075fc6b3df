package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice/mocks"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

func testAuthConfig(t *testing.T) config.Auth {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	return config.Auth{
		Secret:            "secret-de-test",
		TokenTTL:          time.Hour,
		AdminEmail:        "admin@autohall.ma",
		AdminPasswordHash: string(hash),
	}
}

func TestService_BootstrapAdminLogin(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Aucun EXPECT : le compte d'amorçage est vérifié localement
	mockLogin := mocks.NewMockLoginRepository(ctrl)
	service := NewService(mockLogin, testAuthConfig(t))

	token, identity, err := service.Login("Admin@autohall.ma", "admin-secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleAdmin, identity.RoleID)

	_, _, err = service.Login("admin@autohall.ma", "mauvais-mot-de-passe")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_BackofficeLoginDelegation(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogin := mocks.NewMockLoginRepository(ctrl)
	mockLogin.EXPECT().
		Login("vendeur@autohall.ma", "motdepasse").
		Return(map[string]any{
			"data": map[string]any{
				"id":             float64(14),
				"email":          "vendeur@autohall.ma",
				"siteId":         float64(7),
				"groupementId":   float64(2),
				"groupementName": "Succursale",
				"actif":          true,
			},
		}, nil)

	service := NewService(mockLogin, testAuthConfig(t))

	token, identity, err := service.Login("Vendeur@autohall.ma", "motdepasse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 14, identity.UserID)
	assert.Equal(t, domain.RoleSite, identity.RoleID)
	assert.Equal(t, 7, identity.SiteID)
	assert.Equal(t, "Succursale", identity.GroupementName)
}

func TestService_DisabledAccountIsRejected(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogin := mocks.NewMockLoginRepository(ctrl)
	mockLogin.EXPECT().
		Login("parti@autohall.ma", "motdepasse").
		Return(map[string]any{
			"data": map[string]any{"id": float64(20), "actif": false},
		}, nil)

	service := NewService(mockLogin, testAuthConfig(t))

	_, _, err := service.Login("parti@autohall.ma", "motdepasse")

	assert.ErrorIs(t, err, ErrDisabledAccount)
}

func TestService_TokenRoundTrip(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogin := mocks.NewMockLoginRepository(ctrl)
	service := NewService(mockLogin, testAuthConfig(t))

	token, _, err := service.Login("admin@autohall.ma", "admin-secret")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "admin@autohall.ma", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.RoleID)
}

func TestService_InvalidTokenIsRejected(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogin := mocks.NewMockLoginRepository(ctrl)
	service := NewService(mockLogin, testAuthConfig(t))

	_, err := service.ValidateToken("pas.un.jeton")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Un jeton signé avec un autre secret est refusé
	other := NewService(mockLogin, config.Auth{
		Secret:            "autre-secret",
		TokenTTL:          time.Hour,
		AdminEmail:        "admin@autohall.ma",
		AdminPasswordHash: testAuthConfig(t).AdminPasswordHash,
	})
	token, _, err := other.Login("admin@autohall.ma", "admin-secret")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
