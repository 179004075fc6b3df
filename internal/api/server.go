package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/mouadrarhib/front-autohall-sub001/internal/api/handler"
	"github.com/mouadrarhib/front-autohall-sub001/internal/api/handler/router"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/authenticating"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/dashboarding"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/selling"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	engine dashboarding.Engine,
	venteService selling.Service,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Dashboard(engine)...),
		router.WithRoutes(handler.Ventes(venteService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Serveur en cours de démarrage")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erreur pendant l'exécution du serveur")
		}
	}()

	// Canal d'attente des signaux d'arrêt
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Signal d'interruption reçu")
	case <-ctx.Done():
		logrus.Info("Contexte de l'application annulé")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Démarrage de l'arrêt gracieux du serveur")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erreur pendant l'arrêt du serveur")
		return err
	}

	logrus.Info("Serveur arrêté avec succès")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Serveur HTTP arrêté avec succès")
	return nil
}
