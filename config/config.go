package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mail   MailConfig
	Admin  AdminConfig
	App    AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// ContactRatePerMinute limits POST /contact per client IP; 0 disables the limit.
	ContactRatePerMinute int
	TemplateDir          string
}

// MailConfig carries the provider identifiers. They are public values the
// provider requires on every call, not secrets.
type MailConfig struct {
	Provider    string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	AccessToken string
	BaseURL     string
	Timeout     time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string
}

type AdminConfig struct {
	Username           string
	Password           string
	DiagnosticsSize    int
	DiagnosticsMaxAge  time.Duration
	DiagnosticsPruning string
}

type AppConfig struct {
	Environment      string
	LogLevel         string
	LogFormat        string
	Version          string
	BannerDuration   time.Duration
	RestartHideTimer bool
}

const (
	ProviderEmailJS = "emailjs"
	ProviderSMTP    = "smtp"
	ProviderLog     = "log"
)

func init() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.contact_rate_per_minute", 0)
	v.SetDefault("server.template_dir", "")

	v.SetDefault("mail.provider", ProviderLog)
	v.SetDefault("mail.base_url", "https://api.emailjs.com")
	v.SetDefault("mail.timeout", time.Duration(0))
	v.SetDefault("mail.smtp_host", "smtp.gmail.com")
	v.SetDefault("mail.smtp_port", "587")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.diagnostics_size", 200)
	v.SetDefault("admin.diagnostics_max_age", 24*time.Hour)
	v.SetDefault("admin.diagnostics_pruning", "@every 1h")

	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.banner_duration", 5*time.Second)
	v.SetDefault("app.restart_hide_timer", false)
}

// Load reads .env (if present) and then resolves every key through viper, so
// PORTFOLIO_MAIL_SERVICE_ID and mail.service_id in .portfolio.yaml both work.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	return FromViper(viper.GetViper())
}

// New returns a viper instance configured the way Load expects, for callers
// that do not want the process-wide instance.
func New() *viper.Viper {
	v := viper.New()
	Bind(v)
	setDefaults(v)
	return v
}

// Bind wires env lookups and the optional config file into v.
func Bind(v *viper.Viper) {
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:                 v.GetString("server.port"),
			AllowedOrigins:       v.GetStringSlice("server.allowed_origins"),
			ContactRatePerMinute: v.GetInt("server.contact_rate_per_minute"),
			TemplateDir:          v.GetString("server.template_dir"),
		},
		Mail: MailConfig{
			Provider:    strings.ToLower(v.GetString("mail.provider")),
			ServiceID:   v.GetString("mail.service_id"),
			TemplateID:  v.GetString("mail.template_id"),
			PublicKey:   v.GetString("mail.public_key"),
			AccessToken: v.GetString("mail.access_token"),
			BaseURL:     v.GetString("mail.base_url"),
			Timeout:     v.GetDuration("mail.timeout"),
			SMTPHost:    v.GetString("mail.smtp_host"),
			SMTPPort:    v.GetString("mail.smtp_port"),
			SMTPUser:    v.GetString("mail.smtp_user"),
			SMTPPass:    v.GetString("mail.smtp_pass"),
			ToEmail:     v.GetString("mail.to_email"),
		},
		Admin: AdminConfig{
			Username:           v.GetString("admin.username"),
			Password:           v.GetString("admin.password"),
			DiagnosticsSize:    v.GetInt("admin.diagnostics_size"),
			DiagnosticsMaxAge:  v.GetDuration("admin.diagnostics_max_age"),
			DiagnosticsPruning: v.GetString("admin.diagnostics_pruning"),
		},
		App: AppConfig{
			Environment:      v.GetString("app.environment"),
			LogLevel:         v.GetString("app.log_level"),
			LogFormat:        v.GetString("app.log_format"),
			Version:          v.GetString("app.version"),
			BannerDuration:   v.GetDuration("app.banner_duration"),
			RestartHideTimer: v.GetBool("app.restart_hide_timer"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	switch c.Mail.Provider {
	case ProviderEmailJS:
		if c.Mail.ServiceID == "" || c.Mail.TemplateID == "" || c.Mail.PublicKey == "" {
			return fmt.Errorf("emailjs provider requires mail.service_id, mail.template_id and mail.public_key")
		}
	case ProviderSMTP:
		if c.Mail.SMTPUser == "" || c.Mail.SMTPPass == "" {
			return fmt.Errorf("smtp provider requires mail.smtp_user and mail.smtp_pass")
		}
	case ProviderLog:
	default:
		return fmt.Errorf("unknown mail.provider %q", c.Mail.Provider)
	}

	if c.App.BannerDuration <= 0 {
		return fmt.Errorf("app.banner_duration must be positive")
	}
	if c.Admin.DiagnosticsSize <= 0 {
		return fmt.Errorf("admin.diagnostics_size must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// AdminEnabled reports whether the diagnostics console should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Password != ""
}
