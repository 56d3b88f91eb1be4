package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

type Config struct {
	TargetURL      string
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	FetchTimeout   time.Duration
	OutputDir      string
	DatabaseURL    string
	RedisURL       string
	CacheTTL       time.Duration
	MetricsPort    string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		TargetURL:      getEnv("TARGET_URL", "https://www.amazon.com/Best-Sellers-Computers-Accessories/zgbs/pc/"),
		BaseURL:        getEnv("BASE_URL", "https://www.amazon.com"),
		UserAgent:      getEnv("USER_AGENT", defaultUserAgent),
		AcceptLanguage: getEnv("ACCEPT_LANGUAGE", "en-US,en;q=0.9"),
		FetchTimeout:   getDuration("FETCH_TIMEOUT", 10*time.Second),
		OutputDir:      getEnv("OUTPUT_DIR", "output/data"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		CacheTTL:       getDuration("CACHE_TTL", time.Hour),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// getDuration falls back to d when the variable is unset or not a valid duration.
func getDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return d
	}
	return parsed
}
