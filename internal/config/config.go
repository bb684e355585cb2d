package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Speech   SpeechConfig
	Records  RecordsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Provider       string // "ollama", "openai", "nvidia"
	Model          string
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

type SpeechConfig struct {
	WhisperURL    string
	WhisperAPIKey string
	WhisperModel  string
	TTSURL        string
	TTSSpeaker    string
	TTSLanguage   string
}

type RecordsConfig struct {
	TopicName string
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
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:       getEnv("LLM_PROVIDER", "ollama"),
			Model:          getEnv("LLM_MODEL", "llama3"),
			BaseURL:        getEnv("LLM_BASE_URL", "http://localhost:11434"),
			APIKey:         getEnv("LLM_API_KEY", ""),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 12),
		},
		Speech: SpeechConfig{
			WhisperURL:    getEnv("WHISPER_URL", ""),
			WhisperAPIKey: getEnv("WHISPER_API_KEY", ""),
			WhisperModel:  getEnv("WHISPER_MODEL", "whisper-1"),
			TTSURL:        getEnv("TTS_URL", ""),
			TTSSpeaker:    getEnv("TTS_SPEAKER", "Claribel Dervla"),
			TTSLanguage:   getEnv("TTS_LANGUAGE", "en"),
		},
		Records: RecordsConfig{
			TopicName: getEnv("INTERVIEW_RECORDS_TOPIC_NAME", "INTERVIEW_RECORDS"),
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
