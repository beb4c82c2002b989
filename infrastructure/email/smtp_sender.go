// Package email sends transactional emails over SMTP.
package email

import (
	"bytes"
	"collab-hub/errors"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender implements contract.EmailSender.
type SMTPSender struct {
	config Config
	server string
	auth   smtp.Auth
	send   sendFunc
	log    *slog.Logger
}

func NewSMTPSender(config Config, log *slog.Logger) *SMTPSender {
	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return &SMTPSender{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   auth,
		send:   smtp.SendMail,
		log:    log,
	}
}

func (s *SMTPSender) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// SendEmail sends an HTML email with a plain text fallback part.
// An unconfigured sender fails with ErrEmailNotConfigured and sends nothing.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, html string) error {
	if !s.IsConfigured() {
		return errors.ErrEmailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.send(s.server, s.auth, s.config.From, []string{to}, s.compose(to, subject, html)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	s.log.Debug("Email sent", "to", to, "subject", subject)
	return nil
}

func (s *SMTPSender) compose(to, subject, html string) []byte {
	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}
	boundary := "boundary-collab-hub"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&msg, "Please view this email in an HTML-capable email client.\r\n\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&msg, "%s\r\n\r\n", html)
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)
	return msg.Bytes()
}

// DocumentSentData fills the email a client receives when a proposal or
// an invoice is sent to them.
type DocumentSentData struct {
	ClientName  string
	Kind        string
	Title       string
	ProjectName string
	URL         string
}

var documentSentTemplate = template.Must(template.New("document_sent").Parse(documentSentHTML))

// RenderDocumentSent returns the subject and the HTML body.
func RenderDocumentSent(data DocumentSentData) (string, string, error) {
	var buf bytes.Buffer
	if err := documentSentTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render document sent template: %w", err)
	}
	subject := fmt.Sprintf("New %s: %s", data.Kind, data.Title)
	return subject, buf.String(), nil
}

const documentSentHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New {{.Kind}}: {{.Title}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 12px 24px; background: #0066cc; color: white; text-decoration: none; border-radius: 4px; margin: 20px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <h2>Hi {{.ClientName}},</h2>

    <p>A new {{.Kind}} <strong>{{.Title}}</strong> is waiting for you in <strong>{{.ProjectName}}</strong>.</p>

    {{if .URL}}<p><a href="{{.URL}}" class="button">Open the client portal</a></p>{{end}}

    <div class="footer">
        <p>You receive this email because you are a client of this project.</p>
    </div>
</body>
</html>`
