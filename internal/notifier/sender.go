package notifier

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
)

type Sender interface {
	Send(to string, subject string, body string) error
}

// SMTPSender delivers mail over SMTP, with PLAIN auth when credentials
// are configured.
type SMTPSender struct {
	addr string
	host string
	user string
	pass string
	from string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort),
		host: cfg.SMTPHost,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, auth, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

// LogSender is the development fallback when no SMTP host is
// configured: confirmations end up in the log instead of an inbox.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", strings.ReplaceAll(body, "\n", " | ")).
		Msg("email delivery skipped, SMTP not configured")
	return nil
}

// SenderFromConfig picks SMTP or log delivery.
func SenderFromConfig(cfg *config.Config) Sender {
	if cfg.SMTPHost == "" {
		return LogSender{}
	}
	return NewSMTPSender(cfg)
}
