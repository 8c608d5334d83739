package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/rahulxs/folio_backend/config"
)

// SPAHandler serves the built single-page frontend. Static assets resolve
// normally; every other non-API path gets the entry document so client-side
// routing can take over.
type SPAHandler struct {
	indexPath string
}

func NewSPAHandler(cfg config.StaticConfig) *SPAHandler {
	return &SPAHandler{
		indexPath: filepath.Join(cfg.Dir, cfg.Index),
	}
}

// Fallback runs when no static file matched the request path.
func (h *SPAHandler) Fallback(c fiber.Ctx) error {
	// Unknown API paths stay JSON; only the site itself falls back to
	// the entry document.
	if strings.HasPrefix(c.Path(), "/api") {
		return notFound(c, "Not found")
	}
	return c.SendFile(h.indexPath)
}
