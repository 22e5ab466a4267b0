package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT", "REQUEST_TIMEOUT", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE",
		"PRIMARY_SUFFIX", "ALTERNATE_SUFFIX", "RESOLVER_CONCURRENCY",
		"HISTORY_SESSIONS", "HISTORY_PADDING_DAYS", "PROVIDER_TIMEOUT", "NAVER_BASE_URL",
	} {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "5000" {
		t.Fatalf("expected default SERVER_PORT=5000, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected request timeout: %v", AppConfig.Server.RequestTimeout)
	}
	if len(AppConfig.Server.CORSAllowedOrigins) != 1 || AppConfig.Server.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", AppConfig.Server.CORSAllowedOrigins)
	}
	r := AppConfig.Resolver
	if r.PrimarySuffix != ".TW" || r.AlternateSuffix != ".TWO" || r.Concurrency != 1 || r.HistorySessions != 1 || r.HistoryPaddingDays != 10 {
		t.Fatalf("unexpected resolver defaults: %+v", r)
	}
	if AppConfig.Provider.Timeout != 10*time.Second || AppConfig.Provider.NaverBaseURL != "https://finance.naver.com" {
		t.Fatalf("unexpected provider defaults: %+v", AppConfig.Provider)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RESOLVER_CONCURRENCY", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NAVER_BASE_URL", "http://localhost:1234/")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("port=%q", AppConfig.Server.Port)
	}
	if AppConfig.Resolver.Concurrency != 4 {
		t.Fatalf("concurrency=%d", AppConfig.Resolver.Concurrency)
	}
	if got := AppConfig.Server.CORSAllowedOrigins; len(got) != 2 || got[1] != "https://b.example" {
		t.Fatalf("origins=%v", got)
	}
	if AppConfig.Provider.NaverBaseURL != "http://localhost:1234" {
		t.Fatalf("naver base url not trimmed: %q", AppConfig.Provider.NaverBaseURL)
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(" a , ,b,"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitList=%v", got)
	}
	if got := splitList(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
