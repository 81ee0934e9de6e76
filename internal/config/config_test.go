package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "PRODUCT_SERVICE_HOST", "PRODUCT_SERVICE_PORT", "HTTP_TIMEOUT", "DISPATCH_WORKERS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Server.Port)
	}
	if cfg.Product.URL() != "http://localhost:7001" {
		t.Fatalf("unexpected product url: %s", cfg.Product.URL())
	}
	if cfg.Recommendation.URL() != "http://localhost:7002" {
		t.Fatalf("unexpected recommendation url: %s", cfg.Recommendation.URL())
	}
	if cfg.Review.URL() != "http://localhost:7003" {
		t.Fatalf("unexpected review url: %s", cfg.Review.URL())
	}
	if cfg.REST.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.REST.Timeout)
	}
	if cfg.Dispatch.Workers != 4 {
		t.Fatalf("unexpected worker count: %d", cfg.Dispatch.Workers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRODUCT_SERVICE_HOST", "product")
	t.Setenv("PRODUCT_SERVICE_PORT", "8081")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("HTTP_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Product.URL() != "http://product:8081" {
		t.Fatalf("unexpected product url: %s", cfg.Product.URL())
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.Kafka.Brokers)
	}
	if cfg.REST.Timeout != 2*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.REST.Timeout)
	}
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("REVIEW_SERVICE_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-integer port")
	}
}
