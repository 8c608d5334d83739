package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"

	"github.com/rahulxs/folio_backend/internal/api/http/handler"
)

func (r *Router) registerSPARoutes(app *fiber.App, h *handler.SPAHandler) {
	cfg := r.p.Cfg.Server.Static

	app.Get("/*", static.New(cfg.Dir, static.Config{
		IndexNames:      []string{cfg.Index},
		NotFoundHandler: h.Fallback,
	}))
}
