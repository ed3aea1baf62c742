package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Board specifics
	Remote         RemoteConfig
	Session        SessionConfig
	Contacts       ContactsConfig
	Board          BoardConfig
	Sync           SyncConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// RemoteConfig points at the remote storage REST API.
type RemoteConfig struct {
	BaseURL    string
	Timeout    time.Duration
	GuestToken string // shared token used by guest sessions
}

type SessionConfig struct {
	File        string // path of the persisted key/value file
	LoginPage   string
	LandingPage string
	PublicPages []string // pages reachable without a session
}

type ContactsConfig struct {
	Locale string // BCP 47 tag for the name collator
}

type BoardConfig struct {
	Timezone string
}

type SyncConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// ErrMissingBaseURL is returned when remote.base_url is not configured.
var ErrMissingBaseURL = errors.New("remote.base_url is required")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskboard/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/taskboard/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Remote storage
	cfg.Remote.BaseURL = v.GetString("remote.base_url")
	cfg.Remote.Timeout = v.GetDuration("remote.timeout")
	cfg.Remote.GuestToken = expandEnvVar(v, v.GetString("remote.guest_token"))

	cfg.Session.File = v.GetString("session.file")
	cfg.Session.LoginPage = v.GetString("session.login_page")
	cfg.Session.LandingPage = v.GetString("session.landing_page")
	cfg.Session.PublicPages = v.GetStringSlice("session.public_pages")

	cfg.Contacts.Locale = v.GetString("contacts.locale")
	cfg.Board.Timezone = v.GetString("board.timezone")

	cfg.Sync.MaxAttempts = v.GetInt("sync.max_attempts")
	cfg.Sync.Backoff = v.GetDuration("sync.backoff")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if cfg.Remote.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 600)

	v.SetDefault("remote.timeout", "10s")
	v.SetDefault("session.file", "session.json")
	v.SetDefault("session.login_page", "index.html")
	v.SetDefault("session.landing_page", "summary.html")
	v.SetDefault("session.public_pages", []string{"signup.html", "privacy_policy.html", "legal_notice.html"})
	v.SetDefault("contacts.locale", "en")
	v.SetDefault("board.timezone", "Europe/Berlin")
	v.SetDefault("sync.max_attempts", 3)
	v.SetDefault("sync.backoff", "2s")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
