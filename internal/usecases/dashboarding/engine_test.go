package dashboarding

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice/mocks"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/assigning"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

var testBackofficeConfig = config.Backoffice{
	PageSize:       100,
	MarquePageSize: 200,
}

func enveloped(rows ...any) map[string]any {
	return map[string]any{"data": rows}
}

// expectBaseFetches pose les huit lectures de base d'un cycle réussi.
func expectBaseFetches(m *mocks.MockRepositories) {
	m.EXPECT().ListUsers(false).Return(enveloped(
		map[string]any{"id": float64(1), "groupementId": float64(1), "actif": true},
		map[string]any{"id": float64(2), "groupementId": float64(2), "actif": true},
		map[string]any{"id": float64(3), "groupementId": float64(1), "actif": false},
	), nil).AnyTimes()
	m.EXPECT().ListUsers(true).Return(enveloped(
		map[string]any{"id": float64(1), "groupementId": float64(1), "actif": true},
		map[string]any{"id": float64(2), "groupementId": float64(2), "actif": true},
	), nil).AnyTimes()
	m.EXPECT().ListGroupements().Return(enveloped(
		map[string]any{"id": float64(1), "nom": "Filiale"},
		map[string]any{"id": float64(2), "nom": "Succursale"},
	), nil).AnyTimes()
	m.EXPECT().ListFiliales(1, 100).Return(enveloped(
		map[string]any{"id": float64(4), "nom": "Filiale Rabat", "groupementId": float64(1)},
		map[string]any{"id": float64(5), "nom": "Filiale Fès", "groupementId": float64(1), "actif": false},
	), nil).AnyTimes()
	m.EXPECT().ListSuccursales(1, 100).Return(enveloped(
		map[string]any{"id": float64(7), "nom": "Succursale Tanger", "groupementId": float64(2)},
	), nil).AnyTimes()
	m.EXPECT().ListMarques(false, 1, 200).Return(enveloped(
		map[string]any{"id": float64(1), "nom": "Dacia", "idFiliale": float64(4)},
		map[string]any{"id": float64(2), "nom": "Ford", "idSuccursale": float64(7)},
	), nil).AnyTimes()
	m.EXPECT().ListUserSites().Return(enveloped(
		map[string]any{"id": float64(31), "userId": float64(1), "siteId": float64(4), "groupementId": float64(1)},
		map[string]any{"id": float64(32), "userId": float64(2), "siteId": float64(7), "groupementId": float64(2)},
	), nil).AnyTimes()
	m.EXPECT().ListActivePeriodes(1, 100).Return(enveloped(
		map[string]any{
			"id": float64(11), "annee": float64(2026), "mois": float64(4),
			"dateDebut": "2026-04-01", "dateFin": "2026-04-30",
		},
	), nil).AnyTimes()
}

func TestEngine_GlobalCycle(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)
	expectBaseFetches(mockRepos)
	mockRepos.EXPECT().ListObjectifsView(11, gomock.Nil()).Return(enveloped(
		map[string]any{"id": float64(1)},
		map[string]any{"id": float64(2)},
		map[string]any{"id": float64(3)},
	), nil).AnyTimes()
	mockRepos.EXPECT().ListVentes(backoffice.VenteQuery{
		Page: 1, PageSize: 1,
		YearFrom: 2026, YearTo: 2026,
		MonthFrom: 4, MonthTo: 4,
	}).Return(map[string]any{
		"data": []any{map[string]any{"id": float64(1)}},
		"pagination": map[string]any{
			"page": float64(1), "pageSize": float64(1),
			"totalRecords": float64(17), "totalPages": float64(17),
		},
	}, nil).AnyTimes()

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	snapshot, err := engine.LoadGlobal(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snapshot.Error)
	assert.Equal(t, domain.CountStat{Total: 3, Active: 2}, snapshot.Stats.Users)
	assert.Equal(t, domain.CountStat{Total: 2, Active: 2}, snapshot.Stats.Groupements)
	assert.Equal(t, domain.CountStat{Total: 2, Active: 1}, snapshot.Stats.Branches)
	assert.Equal(t, domain.CountStat{Total: 1, Active: 1}, snapshot.Stats.Agencies)
	assert.Equal(t, domain.CountStat{Total: 3, Active: 2}, snapshot.Stats.Sites)
	assert.Equal(t, domain.CountStat{Total: 2, Active: 2}, snapshot.Stats.Brands)
	assert.Equal(t, domain.CountStat{Total: 2, Active: 2}, snapshot.Stats.UserSiteLinks)

	// La période sans nom explicite est étiquetée mois/année
	assert.Equal(t, "4/2026", snapshot.PeriodKpis.PeriodLabel)
	assert.Equal(t, 3, snapshot.PeriodKpis.ObjectiveCount)
	assert.Equal(t, 17, snapshot.PeriodKpis.SaleCount)
}

func TestEngine_CycleIdempotence(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)
	expectBaseFetches(mockRepos)
	mockRepos.EXPECT().ListObjectifsView(11, gomock.Nil()).Return(enveloped(
		map[string]any{"id": float64(1)},
	), nil).AnyTimes()
	mockRepos.EXPECT().ListVentes(gomock.Any()).Return(map[string]any{
		"data":       []any{},
		"pagination": map[string]any{"totalRecords": float64(5), "totalPages": float64(5), "pageSize": float64(1)},
	}, nil).AnyTimes()

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	first, err := engine.LoadGlobal(context.Background())
	require.NoError(t, err)
	second, err := engine.LoadGlobal(context.Background())
	require.NoError(t, err)

	// Deux cycles sur des données inchangées produisent le même état
	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.PeriodKpis, second.PeriodKpis)
}

func TestEngine_StaleCycleIsDiscarded(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)
	mockRepos.EXPECT().ListUsers(true).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListGroupements().Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListFiliales(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListSuccursales(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListMarques(gomock.Any(), gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListUserSites().Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListActivePeriodes(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()

	slowStarted := make(chan struct{})
	release := make(chan struct{})

	// Le premier cycle bloque sur sa lecture des utilisateurs jusqu'au commit
	// du second ; déclaré en premier, il consomme le premier appel
	mockRepos.EXPECT().ListUsers(false).DoAndReturn(func(bool) (any, error) {
		close(slowStarted)
		<-release
		return enveloped(
			map[string]any{"id": float64(1)},
			map[string]any{"id": float64(2)},
			map[string]any{"id": float64(3)},
		), nil
	})
	mockRepos.EXPECT().ListUsers(false).Return(enveloped(
		map[string]any{"id": float64(1)},
	), nil)

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	slowDone := make(chan Snapshot, 1)
	go func() {
		snapshot, _ := engine.LoadGlobal(context.Background())
		slowDone <- snapshot
	}()

	<-slowStarted

	fast, err := engine.LoadGlobal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fast.Stats.Users.Total)

	close(release)
	slow := <-slowDone

	// Le cycle lent dépassé est écarté : il rend l'état commité par le cycle
	// rapide, jamais ses trois utilisateurs
	assert.Equal(t, 1, slow.Stats.Users.Total)
	assert.Equal(t, 1, engine.Current(nil).Stats.Users.Total)
}

func TestEngine_PartialFailureResetsToZero(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)
	mockRepos.EXPECT().ListUsers(gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListGroupements().Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListSuccursales(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListMarques(gomock.Any(), gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListUserSites().Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListActivePeriodes(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()

	// L'échec des filiales fait échouer la jointure entière
	mockRepos.EXPECT().ListFiliales(gomock.Any(), gomock.Any()).
		Return(nil, &backoffice.TransportError{
			Status:  502,
			Payload: backoffice.ErrorPayload{Error: "backoffice momentanément indisponible"},
		}).AnyTimes()

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	snapshot, err := engine.LoadGlobal(context.Background())

	require.Error(t, err)
	// Jamais de mélange partiel : tout est remis à zéro
	assert.Equal(t, domain.EmptyStats(), snapshot.Stats)
	assert.Equal(t, domain.EmptyKpis(), snapshot.PeriodKpis)
	// Le message vient du payload {error} du backoffice
	assert.Equal(t, "backoffice momentanément indisponible", snapshot.Error)
}

func TestEngine_NoActivePeriodSentinel(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)
	mockRepos.EXPECT().ListUsers(gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListGroupements().Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListFiliales(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListSuccursales(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListMarques(gomock.Any(), gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListUserSites().Return(enveloped(), nil).AnyTimes()
	mockRepos.EXPECT().ListActivePeriodes(gomock.Any(), gomock.Any()).Return(enveloped(), nil).AnyTimes()
	// Sans période élue, ni objectifs ni ventes ne sont consultés

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	snapshot, err := engine.LoadGlobal(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.NoActivePeriodLabel, snapshot.PeriodKpis.PeriodLabel)
	assert.Zero(t, snapshot.PeriodKpis.ObjectiveCount)
	assert.Zero(t, snapshot.PeriodKpis.SaleCount)
}

func TestEngine_ScopedCycleFiltersCollections(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)
	expectBaseFetches(mockRepos)

	agencyID := 7
	mockRepos.EXPECT().ListObjectifsView(11, &agencyID).Return(enveloped(
		map[string]any{"id": float64(9)},
	), nil).AnyTimes()
	mockRepos.EXPECT().ListVentes(backoffice.VenteQuery{
		Page: 1, PageSize: 1,
		YearFrom: 2026, YearTo: 2026,
		MonthFrom: 4, MonthTo: 4,
		SuccursaleID: &agencyID,
	}).Return(map[string]any{
		"data":       []any{},
		"pagination": map[string]any{"totalRecords": float64(4), "pageSize": float64(1)},
	}, nil).AnyTimes()

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	snapshot, err := engine.LoadSite(context.Background(), domain.Identity{
		UserID:         2,
		Email:          "agent@autohall.ma",
		SiteID:         7,
		SiteName:       "Succursale Tanger",
		GroupementID:   2,
		GroupementName: "Succursale",
	})

	require.NoError(t, err)
	// Le périmètre succursale garde son site et vide la famille filiale
	assert.Equal(t, domain.CountStat{Total: 0, Active: 0}, snapshot.Stats.Branches)
	assert.Equal(t, domain.CountStat{Total: 1, Active: 1}, snapshot.Stats.Agencies)
	assert.Equal(t, domain.CountStat{Total: 1, Active: 1}, snapshot.Stats.Brands)
	assert.Equal(t, domain.CountStat{Total: 1, Active: 1}, snapshot.Stats.Groupements)
	assert.Equal(t, domain.CountStat{Total: 1, Active: 1}, snapshot.Stats.UserSiteLinks)
	assert.Equal(t, 1, snapshot.PeriodKpis.ObjectiveCount)
	assert.Equal(t, 4, snapshot.PeriodKpis.SaleCount)
}

func TestEngine_MissingAssignmentIssuesNoCalls(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Aucun EXPECT : l'absence d'affectation court-circuite tout appel
	mockRepos := mocks.NewMockRepositories(ctrl)

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	identity := domain.Identity{UserID: 8, Email: "sans-site@autohall.ma"}
	snapshot, err := engine.LoadSite(context.Background(), identity)

	require.ErrorIs(t, err, ErrNoActiveAssignment)
	assert.Equal(t, domain.EmptyStats(), snapshot.Stats)
	assert.Equal(t, domain.EmptyKpis(), snapshot.PeriodKpis)
	assert.Equal(t, MissingAssignmentMessage, snapshot.Error)

	// L'état terminal reste lisible sans nouveau cycle
	assert.Equal(t, MissingAssignmentMessage, engine.Current(&identity).Error)
}

func TestEngine_ClearError(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepos := mocks.NewMockRepositories(ctrl)

	engine := NewEngine(mockRepos, assigning.NewResolver(mockRepos), testBackofficeConfig)

	identity := domain.Identity{UserID: 8, Email: "sans-site@autohall.ma"}
	_, err := engine.LoadSite(context.Background(), identity)
	require.Error(t, err)

	engine.ClearError(&identity)
	assert.Empty(t, engine.Current(&identity).Error)
}

func TestEngine_ErrorMessagePriority(t *testing.T) {
	// Le message utilisateur suit la priorité payload {error} -> message
	// d'erreur -> repli générique
	withPayload := &backoffice.TransportError{Status: 500, Payload: backoffice.ErrorPayload{Error: "maintenance en cours"}}
	assert.Equal(t, "maintenance en cours", backoffice.MessageFromError(withPayload))

	plain := errors.New("connexion refusée")
	assert.Equal(t, "connexion refusée", backoffice.MessageFromError(plain))

	assert.Equal(t, backoffice.GenericErrorMessage, backoffice.MessageFromError(nil))
}
