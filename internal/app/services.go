package app

import (
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"github.com/rahulxs/folio_backend/config"
	"github.com/rahulxs/folio_backend/internal/models"
	"github.com/rahulxs/folio_backend/internal/service/contact"
	"github.com/rahulxs/folio_backend/internal/service/resume"
	"github.com/rahulxs/folio_backend/internal/service/status"
	"github.com/rahulxs/folio_backend/pkg/email"
	s3pkg "github.com/rahulxs/folio_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideContactService,
		ProvideStatusService,
		ProvideResumeService,
	),
)

func ProvideContactService(db *bun.DB, emailClient *email.Client, cfg *config.Config) contact.Service {
	var store contact.Store
	if cfg.Contact.Persist {
		store = models.NewContactStore(db)
	}
	return contact.New(emailClient, store)
}

func ProvideStatusService(db *bun.DB, emailClient *email.Client, cfg *config.Config) status.Service {
	return status.New(db, emailClient, cfg.Server.Environment)
}

type resumeParams struct {
	fx.In

	Cfg *config.Config
	S3  *s3pkg.Client `optional:"true"`
}

func ProvideResumeService(p resumeParams) resume.Service {
	var presigner resume.Presigner
	if p.S3 != nil {
		presigner = p.S3
	}
	return resume.New(presigner, p.Cfg.Resume.Key)
}
