package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	} `mapstructure:"server"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Storage struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"storage"`

	DynamoDB struct {
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		ClientsTable    string `mapstructure:"clients_table"`
		GarmentsTable   string `mapstructure:"garments_table"`
		BatchesTable    string `mapstructure:"batches_table"`
		CountersTable   string `mapstructure:"counters_table"`
	} `mapstructure:"dynamodb"`

	Redis struct {
		Addr          string        `mapstructure:"addr"`
		Password      string        `mapstructure:"password"`
		DB            int           `mapstructure:"db"`
		SessionTTL    time.Duration `mapstructure:"session_ttl"`
		NotifyChannel string        `mapstructure:"notify_channel"`
	} `mapstructure:"redis"`

	Postgres struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"postgres"`

	Delay struct {
		ThresholdDays float64 `mapstructure:"threshold_days"`
		ExpectedDays  float64 `mapstructure:"expected_days"`
	} `mapstructure:"delay"`

	Reader struct {
		Latency         time.Duration `mapstructure:"latency"`
		RoundPauseMin   time.Duration `mapstructure:"round_pause_min"`
		RoundPauseMax   time.Duration `mapstructure:"round_pause_max"`
		StopProbability float64       `mapstructure:"stop_probability"`
		MaxDuration     time.Duration `mapstructure:"max_duration"`
		MaxTags         int           `mapstructure:"max_tags"`
		Seed            uint64        `mapstructure:"seed"`
	} `mapstructure:"reader"`

	// SeedClients loads a demo client directory into the memory store.
	SeedClients bool `mapstructure:"seed_clients"`
}

// Load reads configs/config.yaml (optional), .env (optional) and the
// environment. Nested keys map to env vars with dots replaced by
// underscores: storage.driver -> STORAGE_DRIVER.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Debug().Msg("[config] no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatal().Err(err).Msg("[config] unmarshal failed")
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("seed_clients", true)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.clients_table", "clients")
	v.SetDefault("dynamodb.garments_table", "garments")
	v.SetDefault("dynamodb.batches_table", "batches")
	v.SetDefault("dynamodb.counters_table", "counters")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", 24*time.Hour)
	v.SetDefault("redis.notify_channel", "lavanderia:notifications")

	v.SetDefault("postgres.url", "")

	v.SetDefault("delay.threshold_days", 7.0)
	v.SetDefault("delay.expected_days", 3.0)

	v.SetDefault("reader.latency", 300*time.Millisecond)
	v.SetDefault("reader.round_pause_min", 200*time.Millisecond)
	v.SetDefault("reader.round_pause_max", 600*time.Millisecond)
	v.SetDefault("reader.stop_probability", 0.15)
	v.SetDefault("reader.max_duration", 10*time.Second)
	v.SetDefault("reader.max_tags", 0)
	v.SetDefault("reader.seed", 0)
}
