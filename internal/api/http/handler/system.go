package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rahulxs/folio_backend/config"
	"github.com/rahulxs/folio_backend/internal/service/status"
)

type SystemHandler struct {
	svc status.Service
	cfg *config.Config
}

func NewSystemHandler(svc status.Service, cfg *config.Config) *SystemHandler {
	return &SystemHandler{svc: svc, cfg: cfg}
}

// GET /api/health
func (h *SystemHandler) Health(c fiber.Ctx) error {
	return ok(c, h.svc.Report(c.Context()))
}

// GET /api/test
func (h *SystemHandler) Test(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"message":   "API is working",
		"timestamp": time.Now().UTC(),
		"method":    c.Method(),
		"url":       c.OriginalURL(),
	})
}

// GET /api/config
//
// Exposes the public client configuration the frontend needs to boot its
// auth provider. Nothing here is a secret, and nothing here grants API
// access.
func (h *SystemHandler) FrontendConfig(c fiber.Ctx) error {
	fb := h.cfg.Firebase
	return ok(c, fiber.Map{
		"firebase": fiber.Map{
			"apiKey":            fb.APIKey,
			"authDomain":        fb.AuthDomain,
			"projectId":         fb.ProjectID,
			"storageBucket":     fb.StorageBucket,
			"messagingSenderId": fb.MessagingSenderID,
			"appId":             fb.AppID,
		},
		"environment": h.cfg.Server.Environment,
	})
}
