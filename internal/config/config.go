package config

import (
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.  Both
// external collaborators are optional at startup: a missing Groq key
// only breaks analysis requests, a missing Mongo URI disables history.
type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration
}

// New loads a .env file if present and resolves configuration from the
// environment, falling back to defaults.
func New() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("MONGODB_DB", "HealtheCare")
	viper.SetDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("LLM_MODEL", "llama-3.1-8b-instant")
	viper.SetDefault("LLM_TIMEOUT", "30s")

	cfg := &Config{
		Port:       viper.GetString("PORT"),
		MongoURI:   viper.GetString("MONGODB_URI"),
		MongoDB:    viper.GetString("MONGODB_DB"),
		LLMAPIKey:  viper.GetString("GROQ_API_KEY"),
		LLMBaseURL: viper.GetString("LLM_BASE_URL"),
		LLMModel:   viper.GetString("LLM_MODEL"),
		LLMTimeout: viper.GetDuration("LLM_TIMEOUT"),
	}

	if cfg.LLMAPIKey == "" {
		log.Warn("GROQ_API_KEY not set; analysis requests will fail")
	}
	if cfg.MongoURI == "" {
		log.Warn("MONGODB_URI not set; history persistence disabled")
	}
	log.Info("config parsed")

	return cfg
}
