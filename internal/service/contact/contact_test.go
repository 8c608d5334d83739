package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/rahulxs/folio_backend/internal/models"
	"github.com/rahulxs/folio_backend/pkg/email"
)

type fakeMailer struct {
	sent    []email.Message
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, m email.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeMailer) Owner() string { return "owner@example.com" }

type fakeStore struct {
	created   []*models.ContactMessage
	createErr error
}

func (f *fakeStore) Create(ctx context.Context, msg *models.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, msg)
	return nil
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:    "Alice",
		Email:   "a@x.com",
		Purpose: "collaborate",
		Message: "Hi",
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"empty name", func(r *SubmitRequest) { r.Name = "" }},
		{"empty email", func(r *SubmitRequest) { r.Email = "" }},
		{"empty purpose", func(r *SubmitRequest) { r.Purpose = "" }},
		{"empty message", func(r *SubmitRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			store := &fakeStore{}
			svc := New(mailer, store)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("Submit() error = %v, want ErrMissingFields", err)
			}
			if len(mailer.sent) != 0 {
				t.Errorf("expected no email attempts, got %d", len(mailer.sent))
			}
			if len(store.created) != 0 {
				t.Errorf("expected no persisted rows, got %d", len(store.created))
			}
		})
	}
}

func TestSubmit_InvalidPayloadHasNoAccumulatedSideEffects(t *testing.T) {
	mailer := &fakeMailer{}
	store := &fakeStore{}
	svc := New(mailer, store)

	req := validRequest()
	req.Name = ""

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), req); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("call %d: error = %v, want ErrMissingFields", i, err)
		}
	}

	if len(mailer.sent) != 0 || len(store.created) != 0 {
		t.Errorf("side effects accumulated: %d emails, %d rows", len(mailer.sent), len(store.created))
	}
}

func TestSubmit_PurposeRouting(t *testing.T) {
	tests := []struct {
		purpose   string
		wantSends int
	}{
		{"collaborate", 1},
		{"resume", 1},
		{"mentorship", 0},
		{"brainstorm", 0},
		{"anything else", 0},
	}

	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			mailer := &fakeMailer{}
			svc := New(mailer, nil)

			req := validRequest()
			req.Purpose = tt.purpose

			sub, err := svc.Submit(context.Background(), req)
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if sub == nil || sub.Purpose != tt.purpose {
				t.Fatalf("Submit() echoed %+v, want purpose %q", sub, tt.purpose)
			}
			if len(mailer.sent) != tt.wantSends {
				t.Errorf("email attempts = %d, want %d", len(mailer.sent), tt.wantSends)
			}
		})
	}
}

func TestSubmit_NotificationSubject(t *testing.T) {
	mailer := &fakeMailer{}
	svc := New(mailer, nil)

	_, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("email attempts = %d, want 1", len(mailer.sent))
	}
	if got, want := mailer.sent[0].Subject, "Collaborate Request from Alice"; got != want {
		t.Errorf("subject = %q, want %q", got, want)
	}
	if got, want := mailer.sent[0].To[0], "owner@example.com"; got != want {
		t.Errorf("recipient = %q, want %q", got, want)
	}
}

func TestSubmit_SoftFailsOnMailError(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{"email disabled", email.ErrDisabled{}},
		{"smtp failure", email.ErrSend{Provider: "gomail/smtp", Err: errors.New("dial tcp: refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{sendErr: tt.sendErr}
			svc := New(mailer, nil)

			sub, err := svc.Submit(context.Background(), validRequest())
			if err != nil {
				t.Fatalf("Submit() error = %v, want success despite mail failure", err)
			}
			if sub == nil {
				t.Fatal("Submit() returned nil submission")
			}
		})
	}
}

func TestSubmit_SoftFailsOnStoreError(t *testing.T) {
	mailer := &fakeMailer{}
	store := &fakeStore{createErr: errors.New("disk full")}
	svc := New(mailer, store)

	sub, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v, want success despite store failure", err)
	}
	if sub == nil {
		t.Fatal("Submit() returned nil submission")
	}
	// the notification still goes out
	if len(mailer.sent) != 1 {
		t.Errorf("email attempts = %d, want 1", len(mailer.sent))
	}
}

func TestSubmit_PersistsWhenStoreConfigured(t *testing.T) {
	store := &fakeStore{}
	svc := New(&fakeMailer{}, store)

	req := validRequest()
	req.Purpose = "brainstorm"

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(store.created) != 1 {
		t.Fatalf("persisted rows = %d, want 1", len(store.created))
	}
	row := store.created[0]
	if row.Name != "Alice" || row.Email != "a@x.com" || row.Purpose != "brainstorm" || row.Message != "Hi" {
		t.Errorf("persisted row = %+v", row)
	}
}
