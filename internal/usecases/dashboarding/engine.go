package dashboarding

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/assigning"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/normalizing"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/scoping"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

// MissingAssignmentMessage est le message spécifique de l'état terminal
// "aucune affectation", distinct des échecs de transport.
const MissingAssignmentMessage = "Aucune affectation active n'est associée à votre profil"

// ErrNoActiveAssignment est retourné en mode restreint quand la résolution
// d'affectation aboutit à "absent".
var ErrNoActiveAssignment = errors.New("aucune affectation active pour l'utilisateur")

// Snapshot est l'état exposé du tableau de bord. Il est remplacé
// intégralement à chaque cycle : jamais de mélange entre chiffres frais et
// chiffres périmés.
type Snapshot struct {
	Stats       domain.DashboardStats `json:"stats"`
	PeriodKpis  domain.PeriodKpis     `json:"periodKpis"`
	Loading     bool                  `json:"loading"`
	Error       string                `json:"error,omitempty"`
	RefreshedAt string                `json:"refreshedAt,omitempty"`
}

// Engine orchestre les cycles d'agrégation du tableau de bord, en mode global
// ou restreint au périmètre d'une affectation.
type Engine interface {
	// LoadGlobal exécute un cycle d'agrégation sur tout le réseau
	LoadGlobal(ctx context.Context) (Snapshot, error)
	// LoadSite exécute un cycle restreint au périmètre de l'identité
	LoadSite(ctx context.Context, identity domain.Identity) (Snapshot, error)
	// Current retourne le dernier état commité du périmètre, sans cycle
	Current(identity *domain.Identity) Snapshot
	// ClearError efface le message d'erreur du périmètre
	ClearError(identity *domain.Identity)
}

// NewEngine construit le moteur d'agrégation.
func NewEngine(repos backoffice.Repositories, resolver assigning.Resolver, cfg config.Backoffice) Engine {
	return &engine{
		repos:    repos,
		resolver: resolver,
		cfg:      cfg,
		states:   make(map[string]*scopeState),
	}
}

const globalScopeKey = "global"

// scopeState est l'état d'un périmètre d'agrégation. Le jeton de génération
// croît à chaque invocation : un cycle terminé ne commite son résultat que
// s'il est encore le plus récent, les cycles lents dépassés sont écartés.
type scopeState struct {
	generation uint64
	snapshot   Snapshot
}

type engine struct {
	repos    backoffice.Repositories
	resolver assigning.Resolver
	cfg      config.Backoffice

	mu     sync.Mutex
	states map[string]*scopeState
}

func (e *engine) LoadGlobal(ctx context.Context) (Snapshot, error) {
	return e.run(ctx, globalScopeKey, nil)
}

func (e *engine) LoadSite(ctx context.Context, identity domain.Identity) (Snapshot, error) {
	affectation := e.resolver.Resolve(identity)
	if !affectation.Usable() {
		// État terminal tant que l'identité ne change pas : aucun appel au
		// backoffice n'est émis.
		snapshot := Snapshot{
			Stats:      domain.EmptyStats(),
			PeriodKpis: domain.EmptyKpis(),
			Error:      MissingAssignmentMessage,
		}
		e.commitUnconditional(identity.Key(), snapshot)
		return snapshot, ErrNoActiveAssignment
	}

	return e.run(ctx, identity.Key(), affectation)
}

func (e *engine) Current(identity *domain.Identity) Snapshot {
	key := globalScopeKey
	if identity != nil {
		key = identity.Key()
	}
	return e.current(key)
}

func (e *engine) current(key string) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if state, ok := e.states[key]; ok {
		return state.snapshot
	}
	return Snapshot{Stats: domain.EmptyStats(), PeriodKpis: domain.EmptyKpis()}
}

func (e *engine) ClearError(identity *domain.Identity) {
	key := globalScopeKey
	if identity != nil {
		key = identity.Key()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if state, ok := e.states[key]; ok {
		state.snapshot.Error = ""
	}
}

// run exécute un cycle complet pour le périmètre donné. affectation nil
// signifie mode global.
func (e *engine) run(ctx context.Context, key string, affectation *domain.Affectation) (Snapshot, error) {
	token := e.begin(key)
	started := time.Now()

	snapshot, err := e.aggregate(ctx, affectation)
	if err != nil {
		// Tout échec écarte les résultats partiels : retour aux valeurs
		// neutres avec le message dérivé de l'erreur.
		snapshot = Snapshot{
			Stats:      domain.EmptyStats(),
			PeriodKpis: domain.EmptyKpis(),
			Error:      backoffice.MessageFromError(err),
		}
		log.L.WithError(err).WithField("scope", key).Error("échec du cycle d'agrégation")
	}
	snapshot.RefreshedAt = time.Now().UTC().Format(time.RFC3339)

	if !e.commit(key, token, snapshot) {
		log.L.WithFields(log.Fields{
			"scope":      key,
			"generation": token,
		}).Info("cycle d'agrégation dépassé, résultat écarté")
		return e.current(key), err
	}

	log.L.WithFields(log.Fields{
		"scope":    key,
		"duration": time.Since(started).String(),
	}).Debug("cycle d'agrégation commité")

	return snapshot, err
}

func (e *engine) begin(key string) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[key]
	if !ok {
		state = &scopeState{snapshot: Snapshot{
			Stats:      domain.EmptyStats(),
			PeriodKpis: domain.EmptyKpis(),
		}}
		e.states[key] = state
	}

	state.generation++
	state.snapshot.Loading = true

	return state.generation
}

// commit pose le nouvel état si le cycle est encore le plus récent du
// périmètre.
func (e *engine) commit(key string, token uint64, snapshot Snapshot) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[key]
	if !ok || state.generation != token {
		return false
	}

	snapshot.Loading = false
	state.snapshot = snapshot
	return true
}

// commitUnconditional pose l'état terminal "aucune affectation" en invalidant
// les cycles en vol du périmètre.
func (e *engine) commitUnconditional(key string, snapshot Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[key]
	if !ok {
		state = &scopeState{}
		e.states[key] = state
	}

	state.generation++
	snapshot.Loading = false
	state.snapshot = snapshot
}

// aggregate exécute les étapes de collecte et de calcul, sans toucher à
// l'état commité.
func (e *engine) aggregate(ctx context.Context, affectation *domain.Affectation) (Snapshot, error) {
	collections, err := e.fetchCollections(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	if affectation != nil {
		collections = scopeCollections(collections, affectation)
	}

	stats := computeStats(collections)

	kpis, err := e.computeKpis(ctx, collections.periodes, affectation)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Stats: stats, PeriodKpis: kpis}, nil
}

// collections regroupe les collections canoniques d'un cycle.
type collections struct {
	usersAll    []domain.User
	usersActive []domain.User
	groupements []domain.Groupement
	filiales    []domain.Site
	succursales []domain.Site
	marques     []domain.Marque
	userSites   []domain.UserSite
	periodes    []domain.Periode
}

// fetchCollections émet les huit lectures de base en une seule jointure
// tout-ou-rien : le premier rejet fait échouer l'étape entière.
func (e *engine) fetchCollections(ctx context.Context) (collections, error) {
	var (
		rawUsersAll, rawUsersActive any
		rawGroupements, rawFiliales any
		rawSuccursales, rawMarques  any
		rawUserSites, rawPeriodes   any
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		rawUsersAll, err = e.repos.ListUsers(false)
		return errors.Wrap(err, "liste des utilisateurs")
	})
	g.Go(func() (err error) {
		rawUsersActive, err = e.repos.ListUsers(true)
		return errors.Wrap(err, "liste des utilisateurs actifs")
	})
	g.Go(func() (err error) {
		rawGroupements, err = e.repos.ListGroupements()
		return errors.Wrap(err, "liste des groupements")
	})
	g.Go(func() (err error) {
		rawFiliales, err = e.repos.ListFiliales(1, e.cfg.PageSize)
		return errors.Wrap(err, "liste des filiales")
	})
	g.Go(func() (err error) {
		rawSuccursales, err = e.repos.ListSuccursales(1, e.cfg.PageSize)
		return errors.Wrap(err, "liste des succursales")
	})
	g.Go(func() (err error) {
		rawMarques, err = e.repos.ListMarques(false, 1, e.cfg.MarquePageSize)
		return errors.Wrap(err, "liste des marques")
	})
	g.Go(func() (err error) {
		rawUserSites, err = e.repos.ListUserSites()
		return errors.Wrap(err, "liste des liens utilisateur-site")
	})
	g.Go(func() (err error) {
		rawPeriodes, err = e.repos.ListActivePeriodes(1, e.cfg.PageSize)
		return errors.Wrap(err, "liste des périodes actives")
	})

	if err := g.Wait(); err != nil {
		return collections{}, err
	}

	return collections{
		usersAll:    normalizing.Users(rawUsersAll),
		usersActive: normalizing.Users(rawUsersActive),
		groupements: normalizing.Groupements(rawGroupements),
		filiales:    normalizing.Sites(rawFiliales),
		succursales: normalizing.Sites(rawSuccursales),
		marques:     normalizing.Marques(rawMarques),
		userSites:   normalizing.UserSites(rawUserSites),
		periodes:    normalizing.Periodes(rawPeriodes),
	}, nil
}

// scopeCollections restreint chaque collection au périmètre de l'affectation.
// Les périodes ne sont jamais restreintes.
func scopeCollections(c collections, a *domain.Affectation) collections {
	scoped := collections{periodes: c.periodes}

	scoped.usersAll = scoping.ByGroupement(c.usersAll, a.GroupementID, a.GroupementName,
		func(u domain.User) int { return u.GroupementID },
		func(u domain.User) string { return u.GroupementName })
	scoped.usersActive = scoping.ByGroupement(c.usersActive, a.GroupementID, a.GroupementName,
		func(u domain.User) int { return u.GroupementID },
		func(u domain.User) string { return u.GroupementName })
	scoped.groupements = scoping.ByGroupement(c.groupements, a.GroupementID, a.GroupementName,
		func(g domain.Groupement) int { return g.ID },
		func(g domain.Groupement) string { return g.Name })
	scoped.userSites = scoping.ByGroupement(c.userSites, a.GroupementID, a.GroupementName,
		func(l domain.UserSite) int { return l.GroupementID },
		func(l domain.UserSite) string { return l.GroupementName })

	// Seule la famille de sites de l'affectation garde son site, l'autre est
	// vidée.
	siteID := func(s domain.Site) int { return s.ID }
	switch a.SiteType {
	case domain.SiteTypeSuccursale:
		scoped.succursales = scoping.ByPositiveID(c.succursales, a.SiteID, siteID)
		scoped.filiales = []domain.Site{}
	default:
		scoped.filiales = scoping.ByPositiveID(c.filiales, a.SiteID, siteID)
		scoped.succursales = []domain.Site{}
	}

	scoped.marques = scoping.MarquesBySiteType(c.marques, a.SiteType, a.SiteID)

	return scoped
}

// computeStats dérive les compteurs par catégorie : total = taille, actif =
// nombre d'éléments actifs. Sites agrège filiales et succursales.
func computeStats(c collections) domain.DashboardStats {
	stats := domain.DashboardStats{
		Users: domain.CountStat{
			Total:  len(c.usersAll),
			Active: len(c.usersActive),
		},
		Groupements:   countStat(c.groupements, func(g domain.Groupement) bool { return g.Active }),
		Branches:      countStat(c.filiales, func(s domain.Site) bool { return s.Active }),
		Agencies:      countStat(c.succursales, func(s domain.Site) bool { return s.Active }),
		Brands:        countStat(c.marques, func(m domain.Marque) bool { return m.Active }),
		UserSiteLinks: countStat(c.userSites, func(l domain.UserSite) bool { return l.Active }),
	}

	stats.Sites = domain.CountStat{
		Total:  stats.Branches.Total + stats.Agencies.Total,
		Active: stats.Branches.Active + stats.Agencies.Active,
	}

	return stats
}

func countStat[T any](collection []T, isActive func(T) bool) domain.CountStat {
	stat := domain.CountStat{Total: len(collection)}
	for _, item := range collection {
		if isActive(item) {
			stat.Active++
		}
	}
	return stat
}

// computeKpis élit la période la plus récente puis joint objectifs et ventes.
// Sans période active, la sentinelle vide est posée sans aucun appel.
func (e *engine) computeKpis(ctx context.Context, periodes []domain.Periode, affectation *domain.Affectation) (domain.PeriodKpis, error) {
	latest := scoping.PickLatest(periodes)
	if latest == nil {
		return domain.EmptyKpis(), nil
	}

	bounds := scoping.ComputeMonthBounds(*latest)

	var siteID *int
	venteQuery := backoffice.VenteQuery{
		Page:      1,
		PageSize:  1,
		YearFrom:  bounds.YearFrom,
		YearTo:    bounds.YearTo,
		MonthFrom: bounds.MonthFrom,
		MonthTo:   bounds.MonthTo,
	}
	if affectation != nil {
		id := affectation.SiteID
		siteID = &id
		if affectation.SiteType == domain.SiteTypeSuccursale {
			venteQuery.SuccursaleID = &id
		} else {
			venteQuery.FilialeID = &id
		}
	}

	var rawObjectifs, rawVentes any

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rawObjectifs, err = e.repos.ListObjectifsView(latest.ID, siteID)
		return errors.Wrap(err, "vue des objectifs")
	})
	g.Go(func() (err error) {
		// requête minimale : seules les métadonnées de pagination sont lues
		rawVentes, err = e.repos.ListVentes(venteQuery)
		return errors.Wrap(err, "comptage des ventes")
	})
	if err := g.Wait(); err != nil {
		return domain.PeriodKpis{}, err
	}

	objectifs := normalizing.ExtractArray(rawObjectifs)
	ventesRows := normalizing.ExtractArray(rawVentes)
	pagination := normalizing.ExtractPagination(rawVentes, len(ventesRows))

	label := strings.TrimSpace(latest.Name)
	if label == "" {
		label = fmt.Sprintf("%d/%d", latest.Month, latest.Year)
	}

	return domain.PeriodKpis{
		PeriodLabel:    label,
		ObjectiveCount: len(objectifs),
		SaleCount:      pagination.TotalRecords,
	}, nil
}
