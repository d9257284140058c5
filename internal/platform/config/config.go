package config

import (
	"os"
	"strings"
	"time"
)

// Artifact source kinds.
const (
	ArtifactSourceFile  = "file"
	ArtifactSourceRedis = "redis"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	EvaluateTimeout time.Duration
	PolicyFile      string
	Artifacts       Artifacts
	Redis           RedisConfig
}

// Artifacts names the trained model blobs and where to read them from.
type Artifacts struct {
	Source         string
	Dir            string
	ClassifierName string
	EncoderName    string
	RedisKeyPrefix string
}

// RedisConfig configures the optional Redis artifact store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            getEnv("CREDIT_ADDR", ":8080"),
		LogLevel:        getEnv("CREDIT_LOG_LEVEL", "info"),
		LogFormat:       getEnv("CREDIT_LOG_FORMAT", "json"),
		EvaluateTimeout: getDuration("CREDIT_EVALUATE_TIMEOUT", 2*time.Second),
		PolicyFile:      os.Getenv("CREDIT_POLICY_FILE"),
		Artifacts: Artifacts{
			Source:         strings.ToLower(getEnv("CREDIT_ARTIFACT_SOURCE", ArtifactSourceFile)),
			Dir:            getEnv("CREDIT_ARTIFACT_DIR", "./artifacts"),
			ClassifierName: getEnv("CREDIT_CLASSIFIER_ARTIFACT", "credit_risk_model.json"),
			EncoderName:    getEnv("CREDIT_ENCODER_ARTIFACT", "sex_encoder.json"),
			RedisKeyPrefix: getEnv("CREDIT_REDIS_KEY_PREFIX", "creditrisk:artifact:"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("CREDIT_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
