// Package server wires the portfolio's HTTP surface onto gin.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/diagnostics"
	"github.com/Zachkp/portfolio/internal/site"
)

const ServiceName = "portfolio"

type Deps struct {
	Config      *config.Config
	Site        *site.Site
	Sender      contact.Sender
	Diagnostics *diagnostics.Store
	Logger      *zap.Logger
	// AfterFunc overrides the banner timer; tests use it.
	AfterFunc contact.AfterFunc
}

func NewRouter(dep Deps) (*gin.Engine, error) {
	if dep.Logger == nil {
		dep.Logger = zap.NewNop()
	}
	if dep.Diagnostics == nil {
		dep.Diagnostics = diagnostics.NewStore(dep.Config.Admin.DiagnosticsSize)
	}

	salt, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	hasher := diagnostics.NewHasher(salt)

	r := gin.New()
	r.HTMLRender = dep.Site
	r.Use(gin.Recovery())
	r.Use(requestContext(hasher, dep.Logger))

	if origins := dep.Config.Server.AllowedOrigins; len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			AllowHeaders: []string{
				"Origin", "Content-Type", "X-Request-Id",
				"HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL",
			},
			ExposeHeaders: []string{"X-Request-Id"},
		}))
	}

	static, err := dep.Site.Static()
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	NewHealthHandler(ServiceName, dep.Config.App.Version, dep.Config.Mail.Provider).RegisterRoutes(r)

	h := &pageHandlers{
		site:     dep.Site,
		sender:   dep.Sender,
		reporter: dep.Diagnostics,
		logger:   dep.Logger,
		cfg:      dep.Config.App,
		after:    dep.AfterFunc,
	}

	r.GET("/", h.index)
	r.GET("/sections/:id", h.section)
	r.GET("/contact-form", h.contactForm)
	r.GET("/contact/banner", h.hideBanner)

	submit := []gin.HandlerFunc{}
	if perMinute := dep.Config.Server.ContactRatePerMinute; perMinute > 0 {
		submit = append(submit, rateLimit(newIPRateLimiter(perMinute)))
	}
	submit = append(submit, h.submitContact)
	r.POST("/contact", submit...)

	if dep.Config.AdminEnabled() {
		token, err := generateToken()
		if err != nil {
			return nil, fmt.Errorf("generate admin token: %w", err)
		}
		a := &adminConsole{
			token:    token,
			username: dep.Config.Admin.Username,
			password: dep.Config.Admin.Password,
			maxAge:   dep.Config.Admin.DiagnosticsMaxAge,
			secure:   dep.Config.IsProduction(),
			store:    dep.Diagnostics,
			logger:   dep.Logger,
		}
		a.register(r)
		dep.Logger.Info("Admin diagnostics available at /admin/login")
	}

	return r, nil
}
