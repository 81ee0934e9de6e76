package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is resolved once at startup and never reloaded.
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Kafka    KafkaConfig
	REST     RESTConfig
	Dispatch DispatchConfig

	Product        DownstreamConfig
	Recommendation DownstreamConfig
	Review         DownstreamConfig
}

type ServerConfig struct {
	Port           string
	ServiceAddress string
}

type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

type KafkaConfig struct {
	Brokers []string
}

type RESTConfig struct {
	Timeout time.Duration
}

type DispatchConfig struct {
	Workers    int
	QueueDepth int
}

// DownstreamConfig locates one backend service.
type DownstreamConfig struct {
	Host string
	Port int
}

// URL resolves the downstream base URL.
func (d DownstreamConfig) URL() string {
	return fmt.Sprintf("http://%s:%d", d.Host, d.Port)
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           envOr("PORT", "8080"),
			ServiceAddress: envOr("SERVICE_ADDRESS", hostnameOr("product-composite")),
		},
		Logging: LoggingConfig{
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
			AddSource: envBool("LOG_ADD_SOURCE"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(envOr("KAFKA_BROKERS", envOr("KAFKA_BROKER", "localhost:9092"))),
		},
	}

	var err error
	if cfg.REST.Timeout, err = envDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Dispatch.Workers, err = envInt("DISPATCH_WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.Dispatch.QueueDepth, err = envInt("DISPATCH_QUEUE_DEPTH", 64); err != nil {
		return nil, err
	}

	if cfg.Product, err = downstream("PRODUCT_SERVICE", 7001); err != nil {
		return nil, err
	}
	if cfg.Recommendation, err = downstream("RECOMMENDATION_SERVICE", 7002); err != nil {
		return nil, err
	}
	if cfg.Review, err = downstream("REVIEW_SERVICE", 7003); err != nil {
		return nil, err
	}

	return cfg, nil
}

func downstream(prefix string, defaultPort int) (DownstreamConfig, error) {
	port, err := envInt(prefix+"_PORT", defaultPort)
	if err != nil {
		return DownstreamConfig{}, err
	}
	return DownstreamConfig{
		Host: envOr(prefix+"_HOST", "localhost"),
		Port: port,
	}, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string) bool {
	value, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return value
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func hostnameOr(fallback string) string {
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return fallback
}
