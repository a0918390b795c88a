package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string

	HIBPBaseURL    string
	HIBPTimeout    time.Duration
	HIBPMaxRetries int
	HIBPAddPadding bool

	WordlistDir string

	DefaultPasswordLength  int
	DefaultPassphraseWords int

	RateLimitRPS   float64
	RateLimitBurst int

	TOTPIssuer string
}

func Load() Config {
	return Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		HIBPBaseURL:            getEnv("HIBP_API_URL", "https://api.pwnedpasswords.com/range"),
		HIBPTimeout:            time.Duration(getEnvInt("HIBP_TIMEOUT_SECONDS", 10)) * time.Second,
		HIBPMaxRetries:         getEnvInt("HIBP_MAX_RETRIES", 3),
		HIBPAddPadding:         getEnvBool("HIBP_ADD_PADDING", true),
		WordlistDir:            getEnv("WORDLIST_DIR", "./wordlists"),
		DefaultPasswordLength:  getEnvInt("DEFAULT_PASSWORD_LENGTH", 16),
		DefaultPassphraseWords: getEnvInt("DEFAULT_PASSPHRASE_WORDS", 6),
		RateLimitRPS:           getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:         getEnvInt("RATE_LIMIT_BURST", 10),
		TOTPIssuer:             getEnv("TOTP_ISSUER", "QuantumLock"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
