package assigning

import (
	"sync"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/internal/domain"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/normalizing"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/log"
)

// Resolver résout l'affectation active d'une identité. La résolution est
// idempotente : elle ne tourne qu'une fois par identité tant qu'elle n'est pas
// invalidée, et son résultat est immuable pour la suite de la session.
type Resolver interface {
	// Resolve retourne l'affectation résolue, nil quand l'identité n'en a pas
	Resolve(identity domain.Identity) *domain.Affectation
	// Invalidate oublie la résolution mémorisée de l'identité
	Invalidate(identity domain.Identity)
}

// NewResolver construit le résolveur d'affectations.
func NewResolver(userSites backoffice.UserSiteRepository) Resolver {
	return &resolver{
		userSites: userSites,
		resolved:  make(map[string]*domain.Affectation),
	}
}

type resolver struct {
	userSites backoffice.UserSiteRepository

	mu       sync.Mutex
	resolved map[string]*domain.Affectation
}

func (r *resolver) Resolve(identity domain.Identity) *domain.Affectation {
	key := identity.Key()

	r.mu.Lock()
	if affectation, ok := r.resolved[key]; ok {
		r.mu.Unlock()
		return affectation
	}
	r.mu.Unlock()

	affectation := r.resolve(identity)

	r.mu.Lock()
	// une résolution concurrente de la même identité a pu aboutir entre-temps
	if existing, ok := r.resolved[key]; ok {
		r.mu.Unlock()
		return existing
	}
	r.resolved[key] = affectation
	r.mu.Unlock()

	return affectation
}

func (r *resolver) Invalidate(identity domain.Identity) {
	r.mu.Lock()
	delete(r.resolved, identity.Key())
	r.mu.Unlock()
}

// resolve déroule la chaîne repli local -> hydratation -> recherche. Les
// échecs d'entrée-sortie des étapes distantes sont journalisés et avalés : la
// résolution dégrade vers moins de champs peuplés, jamais vers un échec dur.
func (r *resolver) resolve(identity domain.Identity) *domain.Affectation {
	// Étape 1 : candidat local construit sans entrée-sortie. Sans site positif
	// et nom de groupement, l'identité résout à "absent", état terminal.
	candidate := &domain.Affectation{
		AssignmentID:   identity.AssignmentID,
		GroupementID:   identity.GroupementID,
		GroupementName: identity.GroupementName,
		SiteID:         identity.SiteID,
		SiteName:       identity.SiteName,
		Active:         true,
	}
	if !candidate.Usable() {
		log.L.WithFields(log.Fields{
			"userId": identity.UserID,
			"siteId": identity.SiteID,
		}).Info("aucune affectation exploitable pour l'identité")
		return nil
	}

	// Étape 2 : hydratation par identifiant d'affectation quand le candidat
	// est incomplet
	if r.incomplete(candidate) && candidate.AssignmentID > 0 {
		payload, err := r.userSites.GetUserSiteByID(candidate.AssignmentID)
		if err != nil {
			log.L.WithError(err).WithField("assignmentId", candidate.AssignmentID).
				Warn("échec de l'hydratation de l'affectation")
		} else {
			merge(candidate, normalizeOne(payload))
		}
	}

	// Étape 3 : recherche des liens actifs du site quand l'hydratation a été
	// tentée et laisse encore des champs manquants. Sans identifiant
	// d'affectation, le candidat reste purement local.
	if r.incomplete(candidate) && candidate.AssignmentID > 0 && candidate.SiteID > 0 {
		payload, err := r.userSites.SearchUserSites(backoffice.UserSiteFilters{
			SiteID:     candidate.SiteID,
			ActiveOnly: true,
		})
		if err != nil {
			log.L.WithError(err).WithField("siteId", candidate.SiteID).
				Warn("échec de la recherche d'affectations du site")
		} else if best := pickBestMatch(normalizing.UserSites(payload), candidate); best != nil {
			merge(candidate, *best)
		}
	}

	candidate.SiteType = domain.SiteTypeFromGroupement(candidate.GroupementName)

	return candidate
}

// incomplete indique qu'il manque au candidat un champ attendu d'une
// affectation pleinement résolue.
func (r *resolver) incomplete(a *domain.Affectation) bool {
	return a.SiteName == "" || a.GroupementName == "" || a.GroupementID <= 0
}

// normalizeOne canonise une réponse portant un lien unique, enveloppé ou non.
func normalizeOne(payload any) domain.UserSite {
	if rows := normalizing.ExtractArray(payload); len(rows) > 0 {
		return normalizing.NormalizeUserSite(rows[0])
	}
	return normalizing.NormalizeUserSite(payload)
}

// pickBestMatch choisit le lien le plus pertinent : identifiant d'affectation
// égal d'abord, groupement égal ensuite, premier résultat sinon.
func pickBestMatch(links []domain.UserSite, candidate *domain.Affectation) *domain.UserSite {
	if len(links) == 0 {
		return nil
	}

	for i := range links {
		if candidate.AssignmentID > 0 && links[i].ID == candidate.AssignmentID {
			return &links[i]
		}
	}
	for i := range links {
		if candidate.GroupementID > 0 && links[i].GroupementID == candidate.GroupementID {
			return &links[i]
		}
	}

	return &links[0]
}

// merge complète le candidat avec les champs récupérés, sans jamais écraser
// un champ déjà renseigné.
func merge(candidate *domain.Affectation, fetched domain.UserSite) {
	if candidate.AssignmentID <= 0 && fetched.ID > 0 {
		candidate.AssignmentID = fetched.ID
	}
	if candidate.SiteName == "" {
		candidate.SiteName = fetched.SiteName
	}
	if candidate.GroupementID <= 0 && fetched.GroupementID > 0 {
		candidate.GroupementID = fetched.GroupementID
	}
	if candidate.GroupementName == "" {
		candidate.GroupementName = fetched.GroupementName
	}
	if candidate.SiteID <= 0 && fetched.SiteID > 0 {
		candidate.SiteID = fetched.SiteID
	}
}
