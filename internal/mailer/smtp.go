package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
)

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

// SMTP relays submissions through an authenticated SMTP server.
type SMTP struct {
	cfg      SMTPConfig
	logger   *zap.Logger
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg SMTPConfig, logger *zap.Logger) *SMTP {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ToEmail == "" {
		cfg.ToEmail = cfg.User
	}
	return &SMTP{cfg: cfg, logger: logger, sendMail: smtp.SendMail}
}

func (m *SMTP) Send(ctx context.Context, s contact.Submission) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return fmt.Errorf("%w: SMTP credentials not configured", contact.ErrDeliveryFailed)
	}

	msg := composeMessage(m.cfg.User, m.cfg.ToEmail, s)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := m.sendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.ToEmail}, msg); err != nil {
		return fmt.Errorf("%w: smtp: %v", contact.ErrDeliveryFailed, err)
	}

	m.logger.Info("Email sent", append(logging.Fields(ctx), zap.String("from_name", s.Name))...)
	return nil
}

// headerSafe keeps visitor input from starting new header lines.
var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

func composeMessage(from, to string, s contact.Submission) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(s.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, s.Name, s.Email, s.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe.Replace(s.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
