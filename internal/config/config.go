package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultGeminiModel    = "gemini-2.5-flash-preview-09-2025"
	defaultDiscordAPIBase = "https://discord.com/api"
	defaultDiscordGuildID = "1357439616877072545"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string

	// Discord
	DiscordAPIBase        string
	DiscordGuildID        string
	DiscordTimeoutSeconds int

	// HTTP
	CORSOrigin         string
	RateLimitPerMinute int

	// Redis (optional, shared rate limit counters)
	RedisURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		Env:                   getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", defaultGeminiModel),
		GeminiEndpoint:        os.Getenv("GEMINI_ENDPOINT"),
		DiscordAPIBase:        getEnvOrDefault("DISCORD_API_BASE", defaultDiscordAPIBase),
		DiscordGuildID:        getEnvOrDefault("DISCORD_GUILD_ID", defaultDiscordGuildID),
		DiscordTimeoutSeconds: getEnvAsIntOrDefault("DISCORD_TIMEOUT_SECONDS", 10),
		CORSOrigin:            getEnvOrDefault("CORS_ORIGIN", "*"),
		RateLimitPerMinute:    getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 0),
		RedisURL:              os.Getenv("REDIS_URL"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
