package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Modelo generador (estrategia generativa de trivia).
	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-5.1"`

	// Encoder de embeddings.
	EmbedAPIKey  string `env:"EMBED_API_KEY"`
	EmbedBaseURL string `env:"EMBED_BASE_URL" envDefault:"https://api.openai.com/v1"`
	EmbedModel   string `env:"EMBED_MODEL" envDefault:"text-embedding-3-small"`
	EmbedDim     int    `env:"EMBED_DIM" envDefault:"768"`

	// Timeout acotado para las invocaciones de modelos, las únicas
	// operaciones de latencia no acotada del pipeline.
	ModelTimeoutSeconds int `env:"MODEL_TIMEOUT_SECONDS" envDefault:"30"`

	// "static" o "generative".
	TriviaStrategy string `env:"TRIVIA_STRATEGY" envDefault:"static"`

	// Fuente de posts (API de X). Opcional: sin token solo se aceptan
	// posts incluidos en el request.
	XBearerToken string `env:"X_BEARER_TOKEN"`
	XAPIBaseURL  string `env:"X_API_BASE_URL" envDefault:"https://api.x.com"`

	// Almacenamiento direccionado por contenido. Opcional.
	IPFSAPIURL string `env:"IPFS_API_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
