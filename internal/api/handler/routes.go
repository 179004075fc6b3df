package handler

import (
	"net/http"

	"github.com/mouadrarhib/front-autohall-sub001/internal/api/handler/router"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/authenticating"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/dashboarding"
	"github.com/mouadrarhib/front-autohall-sub001/internal/usecases/selling"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(engine dashboarding.Engine) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetGlobalDashboard(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/dashboard/site",
			Method:      http.MethodGet,
			Handler:     GetSiteDashboard(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/dashboard/errors/clear",
			Method:      http.MethodPost,
			Handler:     ClearDashboardError(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ventes(service selling.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ventes",
			Method:      http.MethodPost,
			Handler:     CreateVente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ventes/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVente(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
