package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mouadrarhib/front-autohall-sub001/infrastructure/integrator/backoffice"
	"github.com/mouadrarhib/front-autohall-sub001/internal/api"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/scheduler"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/assigning"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/authenticating"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/dashboarding"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/selling"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/utils"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Niveau de log issu de la configuration
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Niveau de log invalide: %s, utilisation de 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Niveau de log configuré à: %s", logLevel)
	logrus.Debugf("Configuration backoffice: %s", utils.PrettyJson(cfg.Backoffice))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backofficeClient := backoffice.NewClient(cfg)

	authenticator := authenticating.NewService(backofficeClient, cfg.Auth)
	resolver := assigning.NewResolver(backofficeClient)
	engine := dashboarding.NewEngine(backofficeClient, resolver, cfg.Backoffice)
	venteService := selling.NewService(backofficeClient)

	dashboardRefreshService := scheduler.NewDashboardRefreshService(engine, cfg)

	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erreur au démarrage du rafraîchissement planifié du tableau de bord")
	} else {
		logrus.Info("Rafraîchissement planifié du tableau de bord démarré avec succès")
	}

	server, err := api.New(
		cfg,
		engine,
		venteService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configure le format et le comportement des logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
