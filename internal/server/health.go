package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Service      string    `json:"service"`
	Version      string    `json:"version"`
	MailProvider string    `json:"mail_provider"`
}

type HealthHandler struct {
	serviceName  string
	version      string
	mailProvider string
}

func NewHealthHandler(serviceName, version, mailProvider string) *HealthHandler {
	return &HealthHandler{
		serviceName:  serviceName,
		version:      version,
		mailProvider: mailProvider,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		MailProvider: h.mailProvider,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
