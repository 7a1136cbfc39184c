package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string

	// Tutor chat
	GroqURL    string // OpenAI-compatible base, e.g. "https://api.groq.com/openai"
	GroqAPIKey string // empty enables demonstration-mode fallback replies
	GroqModel  string // e.g. "llama3-70b-8192"
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "eduassist.db"),
		GroqURL:         getenvDefault("GROQ_URL", "https://api.groq.com/openai"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		GroqModel:       getenvDefault("GROQ_MODEL", "llama3-70b-8192"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
