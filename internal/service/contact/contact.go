package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rahulxs/folio_backend/internal/models"
	"github.com/rahulxs/folio_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Name    string
	Email   string
	Purpose string
	Message string
}

// Submission echoes the validated fields back to the caller.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Capabilities
// ---------------------------------------------------------------------------

// Mailer is the notification capability injected into the service so tests
// can substitute a fake. *email.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
	Owner() string
}

// Store persists submissions. A nil Store disables persistence.
type Store interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Submission, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// notifyPurposes are the declared purposes that trigger an owner
// notification. Any other purpose is accepted and recorded without email.
var notifyPurposes = map[string]bool{
	"collaborate": true,
	"resume":      true,
}

type contactService struct {
	mailer Mailer
	store  Store
}

func New(mailer Mailer, store Store) Service {
	return &contactService{mailer: mailer, store: store}
}

// Submit validates a contact form submission, records it, and notifies the
// site owner when the purpose calls for it. Notification and persistence
// failures are deliberately soft: they are logged and swallowed so a broken
// mail or storage leg never blocks the visitor's contact attempt.
func (s *contactService) Submit(ctx context.Context, req SubmitRequest) (*Submission, error) {
	if req.Name == "" || req.Email == "" || req.Purpose == "" || req.Message == "" {
		return nil, ErrMissingFields
	}

	if s.store != nil {
		msg := &models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Purpose: req.Purpose,
			Message: req.Message,
		}
		if err := s.store.Create(ctx, msg); err != nil {
			slog.Error("contact: persist failed", "err", err)
		}
	}

	if notifyPurposes[req.Purpose] {
		s.notify(ctx, req)
	}

	return &Submission{
		Name:    req.Name,
		Email:   req.Email,
		Purpose: req.Purpose,
		Message: req.Message,
	}, nil
}

func (s *contactService) notify(ctx context.Context, req SubmitRequest) {
	m := email.BuildContactNotification(email.ContactNotificationData{
		Name:    req.Name,
		Email:   req.Email,
		Purpose: req.Purpose,
		Message: req.Message,
		Owner:   s.mailer.Owner(),
	})

	if err := s.mailer.Send(ctx, m); err != nil {
		var disabled email.ErrDisabled
		if errors.As(err, &disabled) {
			slog.Warn("contact: email not configured, notification skipped",
				"purpose", req.Purpose)
			return
		}
		slog.Error("contact: notification send failed",
			"purpose", req.Purpose, "err", err)
	}
}
