// Package mailer holds the contact.Sender implementations.
package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
)

// Log only records the submission. Used in development when no provider is set.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

func (l *Log) Send(ctx context.Context, s contact.Submission) error {
	l.logger.Info("contact submission (log provider)",
		append(logging.Fields(ctx),
			zap.String("name", s.Name),
			zap.String("email", s.Email),
			zap.Int("message_len", len(s.Message)),
		)...)
	return nil
}

// New picks the sender named by cfg.Provider.
func New(cfg config.MailConfig, logger *zap.Logger) (contact.Sender, error) {
	switch cfg.Provider {
	case config.ProviderEmailJS:
		return NewEmailJS(EmailJSConfig{
			BaseURL:     cfg.BaseURL,
			ServiceID:   cfg.ServiceID,
			TemplateID:  cfg.TemplateID,
			PublicKey:   cfg.PublicKey,
			AccessToken: cfg.AccessToken,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case config.ProviderSMTP:
		return NewSMTP(SMTPConfig{
			Host:    cfg.SMTPHost,
			Port:    cfg.SMTPPort,
			User:    cfg.SMTPUser,
			Pass:    cfg.SMTPPass,
			ToEmail: cfg.ToEmail,
		}, logger), nil
	case config.ProviderLog, "":
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
