package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and market data provider details.
//
// Example ENV equivalent:
//
//	SERVER_PORT=5000
//	REQUEST_TIMEOUT=30s
//	PROVIDER_TIMEOUT=10s
//	PRIMARY_SUFFIX=.TW
//	ALTERNATE_SUFFIX=.TWO
//	RESOLVER_CONCURRENCY=1
//	NAVER_BASE_URL=https://finance.naver.com
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Resolver ResolverConfig // Price resolution settings
	Provider ProviderConfig // Upstream market data settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // The TCP port the HTTP server will listen on (e.g., "5000")
	RequestTimeout     time.Duration // Deadline attached to every request context
	CORSAllowedOrigins []string      // Origins allowed by the CORS middleware ("*" for any)
	RateLimitPerMinute int           // Inbound requests per client IP per minute (0 disables)
}

// ResolverConfig defines how ticker codes are turned into exchange symbols
// and how many codes are resolved at once.
//
// Fields:
//   - PrimarySuffix: exchange suffix tried first (listed market, ".TW").
//   - AlternateSuffix: exchange suffix tried second (OTC market, ".TWO").
//   - Concurrency: number of codes resolved in parallel (1 = sequential).
//   - HistorySessions: trading sessions covered by the daily-close fallback.
//   - HistoryPaddingDays: extra calendar days added to the fallback window.
type ResolverConfig struct {
	PrimarySuffix      string
	AlternateSuffix    string
	Concurrency        int
	HistorySessions    int
	HistoryPaddingDays int
}

// ProviderConfig holds upstream provider settings.
type ProviderConfig struct {
	Timeout      time.Duration // HTTP client timeout for outbound calls
	NaverBaseURL string        // Base URL of the Naver Finance site
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 0)

	viper.SetDefault("PRIMARY_SUFFIX", ".TW")
	viper.SetDefault("ALTERNATE_SUFFIX", ".TWO")
	viper.SetDefault("RESOLVER_CONCURRENCY", 1)
	viper.SetDefault("HISTORY_SESSIONS", 1)
	viper.SetDefault("HISTORY_PADDING_DAYS", 10)

	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("NAVER_BASE_URL", "https://finance.naver.com")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
			CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Resolver: ResolverConfig{
			PrimarySuffix:      viper.GetString("PRIMARY_SUFFIX"),
			AlternateSuffix:    viper.GetString("ALTERNATE_SUFFIX"),
			Concurrency:        viper.GetInt("RESOLVER_CONCURRENCY"),
			HistorySessions:    viper.GetInt("HISTORY_SESSIONS"),
			HistoryPaddingDays: viper.GetInt("HISTORY_PADDING_DAYS"),
		},
		Provider: ProviderConfig{
			Timeout:      viper.GetDuration("PROVIDER_TIMEOUT"),
			NaverBaseURL: strings.TrimRight(viper.GetString("NAVER_BASE_URL"), "/"),
		},
	}

	validateConfig()
}

// splitList turns a comma separated value into a trimmed, non-empty slice.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Resolver.PrimarySuffix == "" {
		missing = append(missing, "PRIMARY_SUFFIX")
	}
	if AppConfig.Resolver.AlternateSuffix == "" {
		missing = append(missing, "ALTERNATE_SUFFIX")
	}
	if AppConfig.Resolver.Concurrency < 1 {
		missing = append(missing, "RESOLVER_CONCURRENCY")
	}
	if AppConfig.Resolver.HistorySessions < 1 {
		missing = append(missing, "HISTORY_SESSIONS")
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
