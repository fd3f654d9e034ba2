package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string `yaml:"port"`
	Environment  string `yaml:"environment"`
	DatabaseURL  string `yaml:"database_url"`
	CORSOrigins  string `yaml:"cors_origins"`
	TablePrefix  string `yaml:"table_prefix"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	// MemoryStore runs the server against the in-memory store (dev only)
	MemoryStore bool `yaml:"memory_store"`
}

// Load builds the configuration from the environment, then applies an
// optional jotdown.yaml overlay when one exists next to the binary.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	cfg := &Config{
		Port:         getEnv("PORT", "3500"),
		Environment:  env,
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		TablePrefix:  getTablePrefix(env),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		MemoryStore:  getEnv("MEMORY_STORE", "") == "true",
	}

	if err := applyFileOverlay(cfg, getEnv("CONFIG_FILE", "jotdown.yaml")); err != nil {
		fmt.Fprintf(os.Stderr, "warning: config overlay ignored: %v\n", err)
	}

	return cfg
}

// applyFileOverlay merges a YAML config file over cfg. A missing file is
// not an error; a malformed one is reported and skipped.
func applyFileOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
