package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
)

const emailJSSendPath = "/api/v1.0/email/send"

// EmailJSConfig holds the identifiers EmailJS requires on every send.
type EmailJSConfig struct {
	BaseURL     string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	AccessToken string
	// Timeout of zero leaves the HTTP client without a deadline.
	Timeout time.Duration
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// EmailJS sends submissions through the EmailJS REST API.
type EmailJS struct {
	httpClient *resty.Client
	cfg        EmailJSConfig
	logger     *zap.Logger
}

func NewEmailJS(cfg EmailJSConfig, logger *zap.Logger) *EmailJS {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &EmailJS{
		httpClient: client,
		cfg:        cfg,
		logger:     logger,
	}
}

func (e *EmailJS) Send(ctx context.Context, s contact.Submission) error {
	body := emailJSRequest{
		ServiceID:   e.cfg.ServiceID,
		TemplateID:  e.cfg.TemplateID,
		UserID:      e.cfg.PublicKey,
		AccessToken: e.cfg.AccessToken,
		TemplateParams: templateParams{
			Name:    s.Name,
			Email:   s.Email,
			Message: s.Message,
		},
	}

	e.logger.Debug("Calling EmailJS send",
		append(logging.Fields(ctx), zap.String("service_id", e.cfg.ServiceID), zap.String("template_id", e.cfg.TemplateID))...)

	resp, err := e.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(emailJSSendPath)
	if err != nil {
		return fmt.Errorf("%w: emailjs request: %v", contact.ErrDeliveryFailed, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: emailjs returned %d: %s", contact.ErrDeliveryFailed, resp.StatusCode(), resp.String())
	}

	return nil
}
