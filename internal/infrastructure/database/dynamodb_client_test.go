package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Run("default region", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBSettings{AccessKeyID: "local", SecretAccessKey: "local"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "us-east-1" {
			t.Fatalf("expected us-east-1, got %q", cfg.Region)
		}
	})

	t.Run("static credentials", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBSettings{Region: "sa-east-1", AccessKeyID: "key", SecretAccessKey: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.AccessKeyID != "key" || cfg.Region != "sa-east-1" {
			t.Fatalf("unexpected config: region=%s key=%s", cfg.Region, creds.AccessKeyID)
		}
	})
}
