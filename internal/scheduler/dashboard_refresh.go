package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/dashboarding"
)

// DashboardRefreshService planifie le rafraîchissement périodique du tableau
// de bord global, pour que l'état courant serve les lectures sans attendre un
// cycle complet.
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    config.DashboardRefresh
	engine    dashboarding.Engine

	refreshRunning        bool
	refreshMutex          sync.Mutex
	lastRefreshStartedAt  time.Time
	lastRefreshFinishedAt time.Time
}

// NewDashboardRefreshService crée le service de rafraîchissement planifié.
func NewDashboardRefreshService(engine dashboarding.Engine, appConfig *config.Config) *DashboardRefreshService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   appConfig.DashboardRefresh.CronSchedule,
		"refresh_enabled": appConfig.DashboardRefresh.Enabled,
	}).Info("Configuration du rafraîchissement du tableau de bord chargée")

	return &DashboardRefreshService{
		scheduler: scheduler,
		config:    appConfig.DashboardRefresh,
		engine:    engine,
	}
}

// Start démarre le planificateur. Le contexte annulé arrête le planificateur.
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Rafraîchissement planifié du tableau de bord désactivé par configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Démarrage du rafraîchissement planifié du tableau de bord")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshGlobalDashboard(ctx)
	})
	if err != nil {
		return fmt.Errorf("erreur de planification du rafraîchissement du tableau de bord: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Arrêt du rafraîchissement planifié du tableau de bord")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshGlobalDashboard exécute un cycle global, au plus un à la fois.
func (s *DashboardRefreshService) refreshGlobalDashboard(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Rafraîchissement du tableau de bord déjà en cours, ignoré")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	s.lastRefreshStartedAt = time.Now()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshFinishedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	snapshot, err := s.engine.LoadGlobal(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Cycle planifié du tableau de bord en échec")
		return
	}

	logrus.WithFields(logrus.Fields{
		"users_total": snapshot.Stats.Users.Total,
		"period":      snapshot.PeriodKpis.PeriodLabel,
		"duration":    time.Since(s.lastRefreshStartedAt).String(),
	}).Info("Cycle planifié du tableau de bord terminé")
}
