package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/rahulxs/folio_backend/config"
	"github.com/rahulxs/folio_backend/internal/api/http/router"
	"github.com/rahulxs/folio_backend/internal/service/contact"
	"github.com/rahulxs/folio_backend/internal/service/resume"
	"github.com/rahulxs/folio_backend/internal/service/status"
	"github.com/rahulxs/folio_backend/pkg/email"
)

type recordingMailer struct {
	sent []email.Message
}

func (m *recordingMailer) Send(ctx context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) Owner() string { return "owner@example.com" }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T, mailer contact.Mailer) *fiber.App {
	t.Helper()

	staticDir := t.TempDir()
	index := filepath.Join(staticDir, "index.html")
	if err := os.WriteFile(index, []byte("<!DOCTYPE html><title>folio</title>"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	cfg.Server.Static = config.StaticConfig{Dir: staticDir, Index: "index.html"}
	cfg.Firebase.APIKey = "public-api-key"
	cfg.Firebase.ProjectID = "folio-test"

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})

	r := router.NewRouter(router.Params{
		Cfg:        cfg,
		ContactSvc: contact.New(mailer, nil),
		StatusSvc:  status.New(nil, nil, cfg.Server.Environment),
		ResumeSvc:  resume.New(nil, ""),
	})
	r.Register(app)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body string) (*http.Response, envelope) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, target, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, raw)
	}
	return resp, env
}

func TestContactEndpoint_Success(t *testing.T) {
	mailer := &recordingMailer{}
	app := newTestApp(t, mailer)

	resp, env := doJSON(t, app, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"a@x.com","purpose":"collaborate","message":"Hi"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Errorf("success = false, want true (error=%q)", env.Error)
	}
	if env.Message != "Message sent successfully!" {
		t.Errorf("message = %q, want %q", env.Message, "Message sent successfully!")
	}

	var data struct {
		Name    string `json:"name"`
		Purpose string `json:"purpose"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("data is not an object: %v", err)
	}
	if data.Name != "Alice" || data.Purpose != "collaborate" {
		t.Errorf("data = %+v, want submitted fields echoed", data)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("email attempts = %d, want 1", len(mailer.sent))
	}
	if got, want := mailer.sent[0].Subject, "Collaborate Request from Alice"; got != want {
		t.Errorf("subject = %q, want %q", got, want)
	}
}

func TestContactEndpoint_MissingField(t *testing.T) {
	mailer := &recordingMailer{}
	app := newTestApp(t, mailer)

	resp, env := doJSON(t, app, http.MethodPost, "/api/contact",
		`{"name":"Alice","purpose":"collaborate","message":"Hi"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Success {
		t.Error("success = true, want false")
	}
	if env.Error != "Missing required fields" {
		t.Errorf("error = %q, want %q", env.Error, "Missing required fields")
	}
	if len(mailer.sent) != 0 {
		t.Errorf("email attempts = %d, want 0", len(mailer.sent))
	}
}

func TestContactEndpoint_MalformedBody(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	resp, env := doJSON(t, app, http.MethodPost, "/api/contact", `{not json`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error != "Missing required fields" {
		t.Errorf("error = %q, want %q", env.Error, "Missing required fields")
	}
}

func TestContactEndpoint_WrongMethod(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	resp, env := doJSON(t, app, http.MethodPut, "/api/contact",
		`{"name":"Alice","email":"a@x.com","purpose":"collaborate","message":"Hi"}`)

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
	if env.Success || env.Error != "Method not allowed" {
		t.Errorf("envelope = %+v, want {success:false, error:%q}", env, "Method not allowed")
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var report struct {
		Status      string `json:"status"`
		Database    string `json:"database"`
		Email       string `json:"email"`
		Environment string `json:"environment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if report.Status != "OK" {
		t.Errorf("status field = %q, want OK", report.Status)
	}
	if report.Database != "not configured" || report.Email != "not configured" {
		t.Errorf("report = %+v, want unconfigured legs reported", report)
	}
}

func TestTestEndpoint(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	req, _ := http.NewRequest(http.MethodGet, "/api/test?probe=1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
		Method  string `json:"method"`
		URL     string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "API is working" {
		t.Errorf("message = %q, want %q", body.Message, "API is working")
	}
	if body.Method != http.MethodGet {
		t.Errorf("method = %q, want GET", body.Method)
	}
	if body.URL != "/api/test?probe=1" {
		t.Errorf("url = %q, want the original request url", body.URL)
	}
}

func TestFrontendConfigEndpoint(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	req, _ := http.NewRequest(http.MethodGet, "/api/config", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Firebase struct {
			APIKey    string `json:"apiKey"`
			ProjectID string `json:"projectId"`
		} `json:"firebase"`
		Environment string `json:"environment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Firebase.APIKey != "public-api-key" || body.Firebase.ProjectID != "folio-test" {
		t.Errorf("firebase block = %+v", body.Firebase)
	}
	if body.Environment != "development" {
		t.Errorf("environment = %q, want development", body.Environment)
	}
}

func TestResumeEndpoint_NotConfigured(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	resp, env := doJSON(t, app, http.MethodGet, "/api/resume", "")

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if env.Success || env.Error != "Resume download is not available" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestUnknownAPIPathStaysJSON(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	resp, env := doJSON(t, app, http.MethodGet, "/api/nope", "")

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if env.Success || env.Error != "Not found" {
		t.Errorf("envelope = %+v, want {success:false, error:%q}", env, "Not found")
	}
}

func TestSPAFallback(t *testing.T) {
	app := newTestApp(t, &recordingMailer{})

	for _, path := range []string{"/", "/projects", "/about/me"} {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), "<title>folio</title>") {
				t.Errorf("body does not look like the entry document:\n%s", body)
			}
		})
	}
}
