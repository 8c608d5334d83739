package status

import (
	"context"
	"errors"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

type fakeMail struct{ configured bool }

func (f fakeMail) IsConfigured() bool { return f.configured }

func TestReport(t *testing.T) {
	tests := []struct {
		name         string
		db           DatabasePinger
		mail         MailChecker
		wantDatabase string
		wantEmail    string
	}{
		{
			name:         "everything wired",
			db:           fakePinger{},
			mail:         fakeMail{configured: true},
			wantDatabase: "connected",
			wantEmail:    "configured",
		},
		{
			name:         "database down",
			db:           fakePinger{err: errors.New("connection refused")},
			mail:         fakeMail{configured: true},
			wantDatabase: "unreachable",
			wantEmail:    "configured",
		},
		{
			name:         "nothing wired",
			db:           nil,
			mail:         nil,
			wantDatabase: "not configured",
			wantEmail:    "not configured",
		},
		{
			name:         "mail client present but no credential",
			db:           fakePinger{},
			mail:         fakeMail{configured: false},
			wantDatabase: "connected",
			wantEmail:    "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.db, tt.mail, "test")
			r := svc.Report(context.Background())

			if r.Status != "OK" {
				t.Errorf("status = %q, want OK", r.Status)
			}
			if r.Database != tt.wantDatabase {
				t.Errorf("database = %q, want %q", r.Database, tt.wantDatabase)
			}
			if r.Email != tt.wantEmail {
				t.Errorf("email = %q, want %q", r.Email, tt.wantEmail)
			}
			if r.Environment != "test" {
				t.Errorf("environment = %q, want test", r.Environment)
			}
			if r.UptimeSeconds < 0 {
				t.Errorf("uptime = %d, want >= 0", r.UptimeSeconds)
			}
		})
	}
}

func TestReport_TimestampAdvances(t *testing.T) {
	svc := New(nil, nil, "test")

	first := svc.Report(context.Background())
	second := svc.Report(context.Background())

	if second.Timestamp.Before(first.Timestamp) {
		t.Errorf("timestamp went backwards: %v then %v", first.Timestamp, second.Timestamp)
	}
}
