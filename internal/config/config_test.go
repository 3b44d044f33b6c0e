package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		if cfg.Server.Port != 8080 {
			t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
		}
		if cfg.Storage.Driver != StorageMemory {
			t.Fatalf("expected memory driver, got %q", cfg.Storage.Driver)
		}
		if cfg.Delay.ThresholdDays != 7 {
			t.Fatalf("expected 7 threshold days, got %v", cfg.Delay.ThresholdDays)
		}
		if cfg.Reader.Latency != 300*time.Millisecond {
			t.Fatalf("unexpected reader latency %v", cfg.Reader.Latency)
		}
		if cfg.DynamoDB.GarmentsTable != "garments" {
			t.Fatalf("unexpected garments table %q", cfg.DynamoDB.GarmentsTable)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("STORAGE_DRIVER", " DynamoDB ")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
		t.Setenv("DELAY_THRESHOLD_DAYS", "5")
		t.Setenv("REDIS_ADDR", "redis:6379")

		cfg := Load()
		if cfg.Server.Port != 9090 {
			t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
		}
		if cfg.Storage.Driver != StorageDynamoDB {
			t.Fatalf("expected dynamodb driver, got %q", cfg.Storage.Driver)
		}
		if cfg.DynamoDB.Endpoint != "http://dynamodb:8000" {
			t.Fatalf("unexpected endpoint %q", cfg.DynamoDB.Endpoint)
		}
		if cfg.Delay.ThresholdDays != 5 {
			t.Fatalf("expected 5 threshold days, got %v", cfg.Delay.ThresholdDays)
		}
		if cfg.Redis.Addr != "redis:6379" {
			t.Fatalf("unexpected redis addr %q", cfg.Redis.Addr)
		}
	})
}
