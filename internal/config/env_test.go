package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"API_BASE_URL", "API_TIMEOUT", "PAYMENT_DELAY", "DEMO_CUSTOMERS", "CORS_ALLOWED_ORIGINS", "DB_PORT", "DB_HOST"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	if env.APIBaseURL != "http://localhost:8000/api" {
		t.Fatalf("APIBaseURL = %q", env.APIBaseURL)
	}
	if env.PaymentDelay != 2*time.Second || env.APITimeout != 15*time.Second {
		t.Fatalf("delays = %v %v", env.PaymentDelay, env.APITimeout)
	}
	if !env.DemoCustomers || env.DBPort != 3306 {
		t.Fatalf("env = %+v", env)
	}
	if len(env.CORSAllowedOrigins) == 0 {
		t.Fatalf("no default CORS origins")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.becak.id/api/")
	t.Setenv("PAYMENT_DELAY", "500ms")
	t.Setenv("DEMO_CUSTOMERS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.id, ,https://b.id")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_HOST", "")

	env := LoadEnv()
	if env.APIBaseURL != "https://api.becak.id/api" {
		t.Fatalf("APIBaseURL = %q", env.APIBaseURL)
	}
	if env.PaymentDelay != 500*time.Millisecond || env.DemoCustomers {
		t.Fatalf("env = %+v", env)
	}
	if len(env.CORSAllowedOrigins) != 2 || env.CORSAllowedOrigins[1] != "https://b.id" {
		t.Fatalf("origins = %v", env.CORSAllowedOrigins)
	}
	if !strings.Contains(env.DSN(), "tcp(127.0.0.1:3307)") {
		t.Fatalf("DSN = %q", env.DSN())
	}
}
