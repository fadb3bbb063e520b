package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string

	GoogleCredentialsFile string
	GoogleTokenFile       string
	GoogleCalendarID      string
	TimeslotsFile         string

	// Optional. Empty disables the database token store / rate limiter.
	DBUrl         string
	RedisAddr     string
	RedisPassword string
	RateLimit     int

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	CORSOrigins []string
}

// insecureJWTSecret is a well-known placeholder that is never accepted.
const insecureJWTSecret = "changeme"

// Load reads an optional .env file, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		GoogleTokenFile:       getEnv("GOOGLE_TOKEN_FILE", "token.json"),
		GoogleCalendarID:      getEnv("GOOGLE_CALENDAR_ID", "primary"),
		TimeslotsFile:         getEnv("TIMESLOTS_FILE", "timeslots.json"),

		DBUrl:         getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RateLimit:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// AdminEnabled reports whether the admin routes may be served: both a
// signing secret and a password hash must be configured.
func (c *Config) AdminEnabled() bool {
	secret := strings.TrimSpace(c.JWTSecret)
	return secret != "" && secret != insecureJWTSecret && c.AdminPasswordHash != ""
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
