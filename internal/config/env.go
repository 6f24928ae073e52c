package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	JWTSecret string
	JWTTTL    time.Duration

	SimLatency         time.Duration
	PaymentLatency     time.Duration
	PaymentFailureRate float64

	// StorageDSN selects the MySQL key/value backend; empty keeps state in memory.
	StorageDSN string
	SeedData   bool

	LogLevel string
	LogFile  string

	CORSAllowedOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadDotEnv reads .env into the process environment when the file exists.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// DevJWTSecret signs tokens when JWT_SECRET is unset. Release mode refuses it.
const DevJWTSecret = "zambus-dev-secret"

// Validate rejects settings that are only acceptable in development.
func (e Env) Validate() error {
	if e.GinMode == gin.ReleaseMode && e.JWTSecret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set when GIN_MODE=release")
	}
	return nil
}

func LoadEnv() Env {
	return Env{
		AppAddr:            str("APP_ADDR", ":8080"),
		GinMode:            str("GIN_MODE", ""),
		JWTSecret:          str("JWT_SECRET", DevJWTSecret),
		JWTTTL:             duration("JWT_TTL", 24*time.Hour),
		SimLatency:         duration("SIM_LATENCY", time.Second),
		PaymentLatency:     duration("PAYMENT_LATENCY", 2*time.Second),
		PaymentFailureRate: rate("PAYMENT_FAILURE_RATE", 0.1),
		StorageDSN:         str("STORAGE_DSN", ""),
		SeedData:           boolean("SEED_DATA", true),
		LogLevel:           str("LOG_LEVEL", "info"),
		LogFile:            str("LOG_FILE", ""),
		CORSAllowedOrigins: list("CORS_ALLOWED_ORIGINS", defaultOrigins),
	}
}

func str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// duration accepts Go durations ("1500ms") or plain milliseconds ("1500").
func duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

func rate(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return def
	}
	return f
}

func boolean(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func list(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
