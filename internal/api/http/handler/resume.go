package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/rahulxs/folio_backend/internal/service/resume"
)

type ResumeHandler struct {
	svc resume.Service
}

func NewResumeHandler(svc resume.Service) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// GET /api/resume
func (h *ResumeHandler) Download(c fiber.Ctx) error {
	d, err := h.svc.DownloadURL(c.Context())
	if err != nil {
		if errors.Is(err, resume.ErrNotConfigured) {
			return notFound(c, "Resume download is not available")
		}
		return internalError(c)
	}
	return success(c, d, "Resume download link generated")
}
