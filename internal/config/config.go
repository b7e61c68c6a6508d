package config

import (
	"errors"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
//
// StorageMode decide la garantía de durabilidad: "postgres" (default)
// sobrevive reinicios; "memory" pierde todo al reiniciar y existe solo para
// desarrollo y tests.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	StorageMode string `env:"STORAGE_MODE" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`

	LLMAPIKey         string `env:"LLM_API_KEY"`
	LLMBaseURL        string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel          string `env:"LLM_MODEL" envDefault:"gpt-5.1"`
	LLMTimeoutSeconds int    `env:"LLM_TIMEOUT_SECONDS" envDefault:"30"`

	// Locale de las etiquetas de animales: "th" (original) o "en".
	LabelLocale string `env:"DISC_LABEL_LOCALE" envDefault:"th"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.StorageMode != "postgres" && cfg.StorageMode != "memory" {
		return nil, errors.New("STORAGE_MODE must be postgres or memory")
	}
	if cfg.StorageMode == "postgres" && cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required with STORAGE_MODE=postgres")
	}
	return &cfg, nil
}
