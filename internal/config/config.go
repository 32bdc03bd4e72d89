package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port              int
	DBPath            string
	JWTSecret         string
	CampusEmailDomain string
	DemoEmail         string
	GeminiAPIKey      string
	CorsOrigins       []string
}

// Load reads configuration from the environment. JWT_SECRET is the only
// required variable; everything else has a development default.
func Load() Config {
	return Config{
		Port:              envOrInt("PORT", 8080),
		DBPath:            envOr("DB_PATH", "data/studyhub.db"),
		JWTSecret:         mustEnv("JWT_SECRET"),
		CampusEmailDomain: envOr("CAMPUS_EMAIL_DOMAIN", ".edu"),
		DemoEmail:         envOr("DEMO_EMAIL", "demo@university.edu"),
		GeminiAPIKey:      envOr("GEMINI_API_KEY", ""),
		CorsOrigins:       parseCSV(envOr("CORS_ORIGINS", "http://localhost:5173")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
