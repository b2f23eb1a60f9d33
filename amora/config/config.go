package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	JWTSecret string

	GeminiAPIKey string
	GeminiModel  string
	// Upper bound for one generation call; on expiry the reply
	// falls back to a canned line.
	GenerateTimeoutSeconds int

	SwipeDailyLimit   int
	MessageDailyLimit int

	// Probability that a right swipe turns into a match.
	MatchThreshold float64

	// How many prior messages are replayed to the model.
	HistoryWindow int

	// "soft": reply with a canned in-character decline and limitReached=true.
	// "hard": fail the request with 403 and limitReached=true.
	OnLimitReached string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string

	PersonaSeedFile string
}

func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8000"),

		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", ""),
		DBName:     getEnv("DB_NAME", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GenerateTimeoutSeconds: getEnvInt("GENERATE_TIMEOUT_SECONDS", 20),

		SwipeDailyLimit:   getEnvInt("SWIPE_DAILY_LIMIT", 20),
		MessageDailyLimit: getEnvInt("MESSAGE_DAILY_LIMIT", 30),

		MatchThreshold: getEnvFloat("MATCH_THRESHOLD", 0.6),
		HistoryWindow:  getEnvInt("HISTORY_WINDOW", 12),
		OnLimitReached: getEnv("ON_LIMIT_REACHED", "soft"),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "amora-media"),

		PersonaSeedFile: getEnv("PERSONA_SEED_FILE", "personas.yaml"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
