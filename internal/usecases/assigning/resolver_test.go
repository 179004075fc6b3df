package assigning

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice/mocks"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

func TestResolver_LocalFallbackWithoutNetwork(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Aucun EXPECT : le candidat local complet ne déclenche aucun appel réseau
	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	resolver := NewResolver(mockUserSites)

	affectation := resolver.Resolve(domain.Identity{
		UserID:         14,
		Email:          "vendeur@autohall.ma",
		SiteID:         7,
		SiteName:       "Succursale Casablanca Ain Sebaa",
		GroupementID:   2,
		GroupementName: "Succursale",
	})

	require.NotNil(t, affectation)
	assert.Equal(t, 7, affectation.SiteID)
	assert.Equal(t, 0, affectation.AssignmentID)
	assert.Equal(t, domain.SiteTypeSuccursale, affectation.SiteType)
}

func TestResolver_IncompleteCandidateWithoutAssignmentStaysLocal(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Aucun EXPECT : sans identifiant d'affectation, aucune étape distante ne
	// tourne, même quand il manque des champs au candidat
	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	resolver := NewResolver(mockUserSites)

	affectation := resolver.Resolve(domain.Identity{
		UserID:         21,
		Email:          "agent@autohall.ma",
		SiteID:         7,
		GroupementName: "Succursale",
	})

	require.NotNil(t, affectation)
	assert.Equal(t, 7, affectation.SiteID)
	assert.Equal(t, 0, affectation.AssignmentID)
	assert.Empty(t, affectation.SiteName)
	assert.Equal(t, domain.SiteTypeSuccursale, affectation.SiteType)
}

func TestResolver_MissingSiteIsTerminalAbsent(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	resolver := NewResolver(mockUserSites)

	// Sans site positif, résolution absente immédiate, aucun appel réseau
	affectation := resolver.Resolve(domain.Identity{
		UserID:         14,
		Email:          "vendeur@autohall.ma",
		GroupementName: "Filiale",
	})

	assert.Nil(t, affectation)
}

func TestResolver_HydrationMergesOnlyEmptyFields(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	mockUserSites.EXPECT().
		GetUserSiteByID(31).
		Return(map[string]any{
			"id":             float64(31),
			"siteId":         float64(99), // ne doit pas écraser le site connu
			"siteName":       "Filiale Rabat",
			"groupementId":   float64(1),
			"groupementName": "Filiale",
		}, nil)

	resolver := NewResolver(mockUserSites)

	affectation := resolver.Resolve(domain.Identity{
		UserID:         9,
		Email:          "chef@autohall.ma",
		SiteID:         5,
		GroupementName: "Filiale",
		AssignmentID:   31,
	})

	require.NotNil(t, affectation)
	// Le champ déjà renseigné est conservé, les champs vides sont complétés
	assert.Equal(t, 5, affectation.SiteID)
	assert.Equal(t, "Filiale Rabat", affectation.SiteName)
	assert.Equal(t, 1, affectation.GroupementID)
	assert.Equal(t, domain.SiteTypeFiliale, affectation.SiteType)
}

func TestResolver_SearchFallbackPrefersAssignmentID(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	// L'hydratation ne rapporte rien d'exploitable, la recherche prend le relais
	mockUserSites.EXPECT().
		GetUserSiteByID(42).
		Return(nil, nil)
	mockUserSites.EXPECT().
		SearchUserSites(backoffice.UserSiteFilters{SiteID: 7, ActiveOnly: true}).
		Return(map[string]any{
			"data": []any{
				map[string]any{
					"id":             float64(40),
					"siteId":         float64(7),
					"siteName":       "Succursale Tanger",
					"groupementId":   float64(2),
					"groupementName": "Succursale",
				},
				map[string]any{
					"id":             float64(42),
					"siteId":         float64(7),
					"siteName":       "Succursale Tanger Ville",
					"groupementId":   float64(2),
					"groupementName": "Succursale",
				},
			},
		}, nil)

	resolver := NewResolver(mockUserSites)

	affectation := resolver.Resolve(domain.Identity{
		UserID:         3,
		Email:          "agent@autohall.ma",
		SiteID:         7,
		GroupementName: "Succursale",
		AssignmentID:   42,
	})

	require.NotNil(t, affectation)
	assert.Equal(t, "Succursale Tanger Ville", affectation.SiteName)
	assert.Equal(t, 2, affectation.GroupementID)
}

func TestResolver_IOFailureDegradesGracefully(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	mockUserSites.EXPECT().
		GetUserSiteByID(31).
		Return(nil, errors.New("backoffice indisponible"))
	mockUserSites.EXPECT().
		SearchUserSites(gomock.Any()).
		Return(nil, errors.New("backoffice indisponible"))

	resolver := NewResolver(mockUserSites)

	// Les échecs sont avalés : la résolution aboutit avec les champs connus
	affectation := resolver.Resolve(domain.Identity{
		UserID:         9,
		Email:          "chef@autohall.ma",
		SiteID:         5,
		GroupementName: "Filiale",
		AssignmentID:   31,
	})

	require.NotNil(t, affectation)
	assert.Equal(t, 5, affectation.SiteID)
	assert.Empty(t, affectation.SiteName)
}

func TestResolver_IdempotentUntilInvalidated(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSites := mocks.NewMockUserSiteRepository(ctrl)
	// L'hydratation ne tourne qu'une fois par identité, puis une fois après
	// invalidation
	mockUserSites.EXPECT().
		GetUserSiteByID(31).
		Return(map[string]any{
			"id":             float64(31),
			"siteName":       "Filiale Rabat",
			"groupementId":   float64(1),
			"groupementName": "Filiale",
		}, nil).
		Times(2)

	resolver := NewResolver(mockUserSites)
	identity := domain.Identity{
		UserID:         9,
		Email:          "chef@autohall.ma",
		SiteID:         5,
		GroupementName: "Filiale",
		AssignmentID:   31,
	}

	first := resolver.Resolve(identity)
	second := resolver.Resolve(identity)
	assert.Same(t, first, second)

	resolver.Invalidate(identity)
	third := resolver.Resolve(identity)
	require.NotNil(t, third)
	assert.Equal(t, first.SiteName, third.SiteName)
}
