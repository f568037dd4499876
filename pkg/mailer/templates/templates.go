package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names accepted in EmailJob.Template.
const Welcome = "welcome"

var welcomeHTML = template.Must(template.New(Welcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome, {{.FirstName}}!</h2>
    <p>Your account on {{.AppName}} has been created with the address {{.Email}}.</p>
    <p>You can now log in and start publishing.</p>
  </body>
</html>`))

// Render renders the named template and returns subject, text fallback and html.
func Render(name string, data map[string]any) (string, string, string, error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject := fmt.Sprintf("Welcome to %v", data["AppName"])
		text := fmt.Sprintf("Welcome, %v! Your account has been created.", data["FirstName"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
