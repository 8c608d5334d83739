package status

import (
	"context"
	"time"
)

// Report is the payload of GET /api/health.
type Report struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Database      string    `json:"database"`
	Email         string    `json:"email"`
	Environment   string    `json:"environment"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}

// DatabasePinger reports database liveness. *bun.DB satisfies it.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// MailChecker reports whether outbound mail is usable. *email.Client
// satisfies it.
type MailChecker interface {
	IsConfigured() bool
}

type Service interface {
	Report(ctx context.Context) Report
}

type statusService struct {
	db          DatabasePinger
	mail        MailChecker
	environment string
	started     time.Time
}

func New(db DatabasePinger, mail MailChecker, environment string) Service {
	return &statusService{
		db:          db,
		mail:        mail,
		environment: environment,
		started:     time.Now(),
	}
}

// Report always answers with status OK; degraded legs show up in the
// database and email fields rather than failing the endpoint.
func (s *statusService) Report(ctx context.Context) Report {
	database := "not configured"
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			database = "unreachable"
		} else {
			database = "connected"
		}
	}

	mail := "not configured"
	if s.mail != nil && s.mail.IsConfigured() {
		mail = "configured"
	}

	return Report{
		Status:        "OK",
		Timestamp:     time.Now().UTC(),
		Database:      database,
		Email:         mail,
		Environment:   s.environment,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	}
}
