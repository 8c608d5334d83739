package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/rahulxs/folio_backend/config"
	"github.com/rahulxs/folio_backend/internal/api/http/handler"
	"github.com/rahulxs/folio_backend/internal/service/contact"
	"github.com/rahulxs/folio_backend/internal/service/resume"
	"github.com/rahulxs/folio_backend/internal/service/status"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	ContactSvc contact.Service
	StatusSvc  status.Service
	ResumeSvc  resume.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	systemH := handler.NewSystemHandler(r.p.StatusSvc, r.p.Cfg)
	resumeH := handler.NewResumeHandler(r.p.ResumeSvc)
	spaH := handler.NewSPAHandler(r.p.Cfg.Server.Static)

	api := app.Group("/api")

	r.registerSystemRoutes(app, api, systemH)
	r.registerContactRoutes(api, contactH)
	r.registerResumeRoutes(api, resumeH)

	// SPA catch-all goes last so every API route wins first.
	r.registerSPARoutes(app, spaH)
}

func (r *Router) registerSystemRoutes(app *fiber.App, api fiber.Router, h *handler.SystemHandler) {
	api.Get("/health", h.Health)
	api.Get("/test", h.Test)
	api.Get("/config", h.FrontendConfig)

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
