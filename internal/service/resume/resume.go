package resume

import (
	"context"
)

// Presigner generates temporary download URLs. *s3.Client satisfies it.
type Presigner interface {
	PresignDownload(ctx context.Context, key string) (string, error)
}

// Download is the payload of GET /api/resume.
type Download struct {
	URL string `json:"url"`
}

type Service interface {
	DownloadURL(ctx context.Context) (*Download, error)
}

type resumeService struct {
	presigner Presigner
	key       string
}

// New builds the resume service. A nil presigner or empty key leaves the
// service in a not-configured state; the endpoint then reports
// ErrNotConfigured instead of failing at startup.
func New(presigner Presigner, key string) Service {
	return &resumeService{presigner: presigner, key: key}
}

func (s *resumeService) DownloadURL(ctx context.Context) (*Download, error) {
	if s.presigner == nil || s.key == "" {
		return nil, ErrNotConfigured
	}

	url, err := s.presigner.PresignDownload(ctx, s.key)
	if err != nil {
		return nil, err
	}
	return &Download{URL: url}, nil
}
