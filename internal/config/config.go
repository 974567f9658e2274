package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

// SupabaseConfig carries everything the gateway needs to talk to the
// upstream project: the REST base URL, the service API key and the JWT
// secret used to verify caller tokens. The analyzer endpoint works without
// any of them.
type SupabaseConfig struct {
	URL       string
	APIKey    string
	JWTSecret string
}

// Load reads the configuration from the environment, after loading an
// optional .env file into it.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables only")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "7860"),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Supabase: SupabaseConfig{
			URL:       os.Getenv("SUPABASE_URL"),
			APIKey:    os.Getenv("SUPABASE_API_KEY"),
			JWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		},
	}

	if cfg.Supabase.URL == "" || cfg.Supabase.APIKey == "" || cfg.Supabase.JWTSecret == "" {
		slog.Warn("Supabase configuration incomplete, only /analyze will work",
			"url_set", cfg.Supabase.URL != "",
			"api_key_set", cfg.Supabase.APIKey != "",
			"jwt_secret_set", cfg.Supabase.JWTSecret != "",
		)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
