package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/diagnostics"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/web"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Serve the portfolio and the contact endpoint",
	Long: `Serve the portfolio page, its HTMX fragments, the contact endpoint and,
when admin.password is set, the diagnostics console.

Set server.template_dir to a directory holding templates/ and static/ to
serve from disk with hot reload instead of the embedded copy.

Examples:
  portfolio serve
  portfolio serve --port 3000
  PORTFOLIO_MAIL_PROVIDER=smtp PORTFOLIO_MAIL_SMTP_USER=me@example.com portfolio serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to serve on")
	serveCmd.Flags().String("templates", "", "Serve templates and static assets from this directory with hot reload")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.template_dir", serveCmd.Flags().Lookup("templates"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.App, server.ServiceName)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := loadSite(ctx, cfg.Server.TemplateDir, logger)
	if err != nil {
		return err
	}

	sender, err := mailer.New(cfg.Mail, logger)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	store := diagnostics.NewStore(cfg.Admin.DiagnosticsSize)
	pruner := diagnostics.NewScheduler(store, cfg.Admin.DiagnosticsMaxAge, logger)
	if err := pruner.Start(cfg.Admin.DiagnosticsPruning); err != nil {
		return fmt.Errorf("schedule diagnostics pruning: %w", err)
	}
	defer pruner.Stop()

	router, err := server.NewRouter(server.Deps{
		Config:      cfg,
		Site:        s,
		Sender:      sender,
		Diagnostics: store,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("mail_provider", cfg.Mail.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// loadSite uses the embedded templates unless dir is set, in which case it
// reads from disk and reloads on change until ctx ends.
func loadSite(ctx context.Context, dir string, logger *zap.Logger) (*site.Site, error) {
	var fsys fs.FS = web.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	s, err := site.New(fsys, logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	if dir != "" {
		go func() {
			if err := s.Watch(ctx, dir); err != nil {
				logger.Warn("Template watcher stopped", zap.Error(err))
			}
		}()
		logger.Info("Serving templates from disk", zap.String("dir", dir))
	}
	return s, nil
}
