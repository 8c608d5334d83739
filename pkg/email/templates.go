package email

import (
	"fmt"
	"html"
	"strings"
)

// ContactNotificationData carries the submitted contact form fields into
// the notification sent to the site owner.
type ContactNotificationData struct {
	Name    string
	Email   string
	Purpose string
	Message string

	// Owner is the destination mailbox. Notifications are sent to self;
	// the submitter's address only appears in the body.
	Owner string
}

// BuildContactNotification renders the owner notification for a contact
// form submission. The subject wording depends on the declared purpose.
func BuildContactNotification(data ContactNotificationData) Message {
	var subject string
	switch data.Purpose {
	case "resume":
		subject = fmt.Sprintf("Resume Request from %s", data.Name)
	default:
		subject = fmt.Sprintf("%s Request from %s", capitalize(data.Purpose), data.Name)
	}

	textBody := fmt.Sprintf(`New contact form submission

Name: %s
Email: %s
Purpose: %s

%s`,
		data.Name, data.Email, data.Purpose, data.Message)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New contact form submission</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Purpose:</strong> %s</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">%s</p>
</body>
</html>`,
		html.EscapeString(data.Name),
		html.EscapeString(data.Email),
		html.EscapeString(data.Purpose),
		nl2br(data.Message),
	)

	return Message{
		To:       []string{data.Owner},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// nl2br escapes the message and converts newlines to <br> so multi-line
// submissions keep their shape in the HTML body.
func nl2br(s string) string {
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
