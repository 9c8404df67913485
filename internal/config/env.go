package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Env struct {
	AppAddr string
	GinMode string

	LogLevel string

	// APIBaseURL is the remote booking backend the screens mirror.
	APIBaseURL string
	APITimeout time.Duration

	PaymentDelay  time.Duration
	SessionTTL    time.Duration
	DemoCustomers bool

	JWTSecret string
	JWTTTL    time.Duration

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBMigrate  bool
	MigrateDir string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	_ = godotenv.Load(".env")

	env := Env{
		AppAddr:  cast.ToString(getOrDefault("APP_ADDR", ":8080")),
		GinMode:  cast.ToString(getOrDefault("GIN_MODE", "")),
		LogLevel: cast.ToString(getOrDefault("LOG_LEVEL", "info")),

		APIBaseURL: strings.TrimRight(cast.ToString(getOrDefault("API_BASE_URL", "http://localhost:8000/api")), "/"),
		APITimeout: cast.ToDuration(getOrDefault("API_TIMEOUT", "15s")),

		PaymentDelay:  cast.ToDuration(getOrDefault("PAYMENT_DELAY", "2s")),
		SessionTTL:    cast.ToDuration(getOrDefault("SESSION_TTL", "2h")),
		DemoCustomers: cast.ToBool(getOrDefault("DEMO_CUSTOMERS", true)),

		JWTSecret: cast.ToString(getOrDefault("JWT_SECRET", "super-secret-key-change-me")),
		JWTTTL:    cast.ToDuration(getOrDefault("JWT_TTL", "24h")),

		DBHost:     cast.ToString(getOrDefault("DB_HOST", "127.0.0.1")),
		DBPort:     cast.ToInt(getOrDefault("DB_PORT", 3306)),
		DBUser:     cast.ToString(getOrDefault("DB_USER", "root")),
		DBPassword: cast.ToString(getOrDefault("DB_PASSWORD", "")),
		DBName:     cast.ToString(getOrDefault("DB_NAME", "becak_app")),
		DBMigrate:  cast.ToBool(getOrDefault("DB_MIGRATE", false)),
		MigrateDir: cast.ToString(getOrDefault("MIGRATE_DIR", "migrations")),
	}

	if origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	} else {
		env.CORSAllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return env
}

func getOrDefault(key string, defaultValue interface{}) interface{} {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
