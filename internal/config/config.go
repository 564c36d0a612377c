package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Answer AnswerConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type AnswerConfig struct {
	Provider       string // "simulated" is the only provider shipped today
	SimulatedDelay int    // milliseconds before a canned answer resolves
	QueryTimeout   int    // milliseconds before an in-flight query is abandoned
	SessionTTL     int    // minutes of inactivity before a chat session is evicted
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Answer: AnswerConfig{
			Provider:       getEnv("ANSWER_PROVIDER", "simulated"),
			SimulatedDelay: getEnvAsInt("ANSWER_SIMULATED_DELAY_MS", 2000),
			QueryTimeout:   getEnvAsInt("ANSWER_QUERY_TIMEOUT_MS", 30000),
			SessionTTL:     getEnvAsInt("CHAT_SESSION_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
