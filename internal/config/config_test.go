package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "DISCORD_GUILD_ID", "CORS_ORIGIN", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != defaultGeminiModel {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.DiscordGuildID != defaultDiscordGuildID {
		t.Errorf("Expected default guild id, got %q", cfg.DiscordGuildID)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("Expected wildcard CORS origin, got %q", cfg.CORSOrigin)
	}
	if cfg.RateLimitPerMinute != 0 {
		t.Errorf("Expected rate limiting disabled by default, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoad_MissingAPIKeyDoesNotPanic(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Load panicked without GEMINI_API_KEY: %v", r)
		}
	}()
	Load()
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("ENV", "")
	if cfg := Load(); cfg.Env != "development" {
		t.Errorf("Expected default env 'development', got %q", cfg.Env)
	}

	t.Setenv("ENV", "production")
	if cfg := Load(); cfg.Env != "production" {
		t.Errorf("Expected env 'production', got %q", cfg.Env)
	}
}
