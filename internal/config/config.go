package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultModels is the fallback order of OpenRouter models. All free-tier,
// low-latency, with independent failure modes.
var DefaultModels = []string{
	"meta-llama/llama-3.3-70b-instruct:free",
	"google/gemma-3-27b-it:free",
	"mistralai/mistral-small-3.1-24b-instruct:free",
	"qwen/qwen-2.5-72b-instruct:free",
}

type Config struct {
	// Server
	Port string
	Env  string

	// OpenRouter
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	Models            []string
	RequestTimeout    time.Duration
	Referer           string
	AppTitle          string

	// Quiz
	QuestionCount int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),

		// A missing key is not fatal at startup; it is surfaced per-request
		// so the service still answers health checks.
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Models:            getEnvAsListOrDefault("OPENROUTER_MODELS", DefaultModels),
		RequestTimeout:    time.Duration(getEnvAsIntOrDefault("OPENROUTER_TIMEOUT_MS", 5000)) * time.Millisecond,
		Referer:           getEnvOrDefault("HTTP_REFERER", "http://localhost:8080"),
		AppTitle:          getEnvOrDefault("APP_TITLE", "QuizForge"),

		QuestionCount: getEnvAsIntOrDefault("QUESTION_COUNT", 5),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
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

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return defaultVal
	}
	return list
}
