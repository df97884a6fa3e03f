package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	KBPath          string
	FacultyXLSXPath string

	OllamaURL       string
	OllamaChatModel string

	ProviderEnabled        bool
	ProviderTimeoutSeconds int

	VerifyOnline         bool
	VerifyTimeoutSeconds int

	APIRateLimitRPS   float64
	APIRateLimitBurst int
	APIMaxInFlight    int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		KBPath:          mustEnv("KB_PATH", "./data/university.json"),
		FacultyXLSXPath: mustEnv("FACULTY_XLSX_PATH", ""),

		OllamaURL:       mustEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaChatModel: mustEnv("OLLAMA_CHAT_MODEL", "llama3.2:latest"),

		ProviderEnabled:        mustEnvBool("PROVIDER_ENABLED", true),
		ProviderTimeoutSeconds: mustEnvInt("PROVIDER_TIMEOUT_SECONDS", 25),

		VerifyOnline:         mustEnvBool("VERIFY_ONLINE", false),
		VerifyTimeoutSeconds: mustEnvInt("VERIFY_TIMEOUT_SECONDS", 3),

		APIRateLimitRPS:   mustEnvFloat("API_RATE_LIMIT_RPS", 25),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 50),
		APIMaxInFlight:    mustEnvInt("API_MAX_IN_FLIGHT", 64),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
