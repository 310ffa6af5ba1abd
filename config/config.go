package config

import (
	"fmt"
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

	// Quick-add domain
	App            AppConfig
	Memos          MemosConfig
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AppConfig struct {
	Timezone          string // default IANA zone for requests without one
	LocationCacheSize int
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
}

// Enabled reports whether tasks are stored in Memos instead of memory.
func (c MemosConfig) Enabled() bool {
	return c.URL != "" && c.AccessToken != ""
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	EventDuration   time.Duration
}

type TelegramConfig struct {
	BotToken       string
	WebhookURL     string
	SecretToken    string
	Async          bool
	ProcessTimeout time.Duration // bound on background processing of one update
	NgrokAPIURL    string        // local ngrok API used to discover a webhook URL when WebhookURL is empty
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	MaxClients        int
	IdleTTL           time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// App
	cfg.App.Timezone = viper.GetString("app.timezone")
	cfg.App.LocationCacheSize = viper.GetInt("app.location_cache_size")

	// Memos
	cfg.Memos.URL = strings.TrimRight(viper.GetString("memos.url"), "/")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDuration = viper.GetDuration("google_calendar.event_duration")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.Async = viper.GetBool("telegram.async")
	cfg.Telegram.ProcessTimeout = viper.GetDuration("telegram.process_timeout")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")

	// Rate limit
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.IdleTTL = viper.GetDuration("rate_limit.idle_ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be in 1..65535, got %d", c.HTTPServer.Port)
	}
	if c.App.LocationCacheSize <= 0 {
		return fmt.Errorf("app.location_cache_size must be positive, got %d", c.App.LocationCacheSize)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	if (c.Memos.URL == "") != (c.Memos.AccessToken == "") {
		return fmt.Errorf("memos.url and memos.access_token must be set together")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("app.timezone", "UTC")
	viper.SetDefault("app.location_cache_size", 64)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.event_duration", "30m")

	viper.SetDefault("telegram.async", true)
	viper.SetDefault("telegram.process_timeout", "30s")
	viper.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")

	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.idle_ttl", "5m")
}
