package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/rahulxs/folio_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	Message string `json:"message"`
}

// POST /api/contact
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	sub, err := h.svc.Submit(c.Context(), contact.SubmitRequest{
		Name:    req.Name,
		Email:   req.Email,
		Purpose: req.Purpose,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, contact.ErrMissingFields) {
			return badRequest(c, "Missing required fields")
		}
		return internalError(c)
	}

	return success(c, sub, "Message sent successfully!")
}
