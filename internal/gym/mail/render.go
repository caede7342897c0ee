package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// markdown escapes raw HTML in the input (WithUnsafe is not set).
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

var loginTmpl = template.Must(template.New("login").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px;">
<h2>Welcome {{.Portal}}</h2>
<p>Your secure sign-in link for <strong>{{.Product}}</strong>:</p>
<p><a href="{{.Link}}" style="background: #0070f3; padding: 12px 18px; color: white; text-decoration: none; border-radius: 6px;">Sign in</a></p>
<p>If the button doesn't work, use this link:</p>
<p>{{.Link}}</p>
<p>The link expires in {{.TTL}} and works once.</p>
<p>Regards,<br>{{.Product}} Team</p>
</div>`))

var notificationTmpl = template.Must(template.New("notification").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px;">
<h2>{{.Title}}</h2>
{{.Body}}
<p>Type: <strong>{{.Type}}</strong></p>
{{- if .Gym}}
<p>{{.Gym}}</p>
{{- end}}
</div>`))

// ProductName appears in sign-in mails.
const ProductName = "Gym Management"

// LoginLink renders the sign-in mail. portal is the link type (ADMIN or MEMBER).
func LoginLink(to, portal, link, ttl string) (Message, error) {
	var buf bytes.Buffer
	err := loginTmpl.Execute(&buf, map[string]string{
		"Portal":  portal,
		"Product": ProductName,
		"Link":    link,
		"TTL":     ttl,
	})
	if err != nil {
		return Message{}, fmt.Errorf("render login mail: %w", err)
	}
	return Message{
		To:      to,
		Subject: fmt.Sprintf("%s Login Link - %s", portal, ProductName),
		HTML:    buf.String(),
		Text:    fmt.Sprintf("Sign in to %s: %s\n", ProductName, link),
	}, nil
}

// Notification renders an admin announcement. The message is markdown.
func Notification(to, title, message, notificationType, gym string) (Message, error) {
	body, err := RenderMarkdown(message)
	if err != nil {
		return Message{}, err
	}

	var buf bytes.Buffer
	err = notificationTmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
		Type  string
		Gym   string
	}{title, body, notificationType, gym})
	if err != nil {
		return Message{}, fmt.Errorf("render notification mail: %w", err)
	}
	return Message{
		To:      to,
		Subject: title,
		HTML:    buf.String(),
		Text:    title + "\n\n" + message + "\n",
	}, nil
}

// RenderMarkdown converts markdown to HTML that is safe to embed.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark escapes raw HTML
}
