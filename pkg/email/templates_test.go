package email

import (
	"strings"
	"testing"
)

func TestBuildContactNotification_Subject(t *testing.T) {
	tests := []struct {
		name    string
		purpose string
		from    string
		want    string
	}{
		{"collaborate", "collaborate", "Alice", "Collaborate Request from Alice"},
		{"resume", "resume", "Bob", "Resume Request from Bob"},
		{"free text purpose", "mentorship", "Carol", "Mentorship Request from Carol"},
		{"already capitalized", "Brainstorm", "Dan", "Brainstorm Request from Dan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildContactNotification(ContactNotificationData{
				Name:    tt.from,
				Email:   "x@y.com",
				Purpose: tt.purpose,
				Message: "hello",
				Owner:   "owner@example.com",
			})
			if m.Subject != tt.want {
				t.Errorf("subject = %q, want %q", m.Subject, tt.want)
			}
		})
	}
}

func TestBuildContactNotification_Recipient(t *testing.T) {
	m := BuildContactNotification(ContactNotificationData{
		Name:    "Alice",
		Email:   "alice@visitor.com",
		Purpose: "collaborate",
		Message: "hi",
		Owner:   "owner@example.com",
	})

	if len(m.To) != 1 || m.To[0] != "owner@example.com" {
		t.Errorf("To = %v, want the owner mailbox only", m.To)
	}
	if !strings.Contains(m.TextBody, "alice@visitor.com") {
		t.Error("submitter address missing from text body")
	}
	if !strings.Contains(m.HTMLBody, "alice@visitor.com") {
		t.Error("submitter address missing from html body")
	}
}

func TestBuildContactNotification_EscapesHTML(t *testing.T) {
	m := BuildContactNotification(ContactNotificationData{
		Name:    "<script>bad</script>",
		Email:   "x@y.com",
		Purpose: "collaborate",
		Message: "a < b",
		Owner:   "owner@example.com",
	})

	if strings.Contains(m.HTMLBody, "<script>") {
		t.Error("html body contains unescaped submitter input")
	}
	if !strings.Contains(m.HTMLBody, "a &lt; b") {
		t.Errorf("message not escaped in html body:\n%s", m.HTMLBody)
	}
}

func TestNl2br(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unix newlines", "a\nb", "a<br>b"},
		{"windows newlines", "a\r\nb", "a<br>b"},
		{"escape before break", "a<b\nc", "a&lt;b<br>c"},
		{"no newlines", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nl2br(tt.in); got != tt.want {
				t.Errorf("nl2br(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"collaborate", "Collaborate"},
		{"", ""},
		{"X", "X"},
	}

	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
