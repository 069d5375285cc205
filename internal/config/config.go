package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyMetrics   = key("metrics")
	KeyRequestID = key("request_id")
)

type Config struct {
	Service   Service
	Postgres  Postgres
	Redis     Redis
	Logger    Logger
	Metrics   Metrics
	Platform  Platform
	Translate Translate
	Sentiment Sentiment
	Cors      Cors
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"sentiment-chat-service"`
	Port string `env:"PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:""`
	Database string `env:"POSTGRES_DB" env-default:"sentiment_chat"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Redis struct {
	Host     string        `env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `env:"REDIS_PORT" env-default:"6379"`
	Password string        `env:"REDIS_PASSWORD" env-default:""`
	TTL      time.Duration `env:"REDIS_SENTIMENT_TTL" env-default:"24h"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST" env-default:"localhost"`
	Port string `env:"LOGGER_SERVICE_PORT" env-default:"9999"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST" env-default:"localhost"`
	Port int    `env:"METRICS_PORT" env-default:"8125"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Translate struct {
	BaseURL    string        `env:"TRANSLATE_BASE_URL" env-default:"https://api.mymemory.translated.net"`
	SourceLang string        `env:"TRANSLATE_SOURCE_LANG" env-default:"autodetect"`
	Timeout    time.Duration `env:"TRANSLATE_TIMEOUT" env-default:"10s"`
}

type Sentiment struct {
	BaseURL   string        `env:"SENTIMENT_BASE_URL" env-default:"https://mustafa5534-sentiment-analyzer.hf.space"`
	APIName   string        `env:"SENTIMENT_API_NAME" env-default:"analyze_sentiment"`
	PollDelay time.Duration `env:"SENTIMENT_POLL_DELAY" env-default:"1s"`
	Timeout   time.Duration `env:"SENTIMENT_TIMEOUT" env-default:"30s"`
}

type Cors struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://127.0.0.1:5173,http://10.0.2.2:8081"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
