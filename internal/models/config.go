package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	// playback
	TickInterval   time.Duration `mapstructure:"tick_interval"`
	Speed          float64       `mapstructure:"speed"` // wall-clock divisor for the tick timer
	TapBackZone    float64       `mapstructure:"tap_back_zone"`
	TapForwardZone float64       `mapstructure:"tap_forward_zone"`

	// catalog
	CatalogSource                 string        `mapstructure:"catalog_source"` // mock, file, s3, postgres, generated
	CatalogPath                   string        `mapstructure:"catalog_path"`
	CatalogCacheTTL               time.Duration `mapstructure:"catalog_cache_ttl"`
	S3Region                      string        `mapstructure:"s3_region"`
	S3Bucket                      string        `mapstructure:"s3_bucket"`
	S3Key                         string        `mapstructure:"s3_key"`
	DatabaseURL                   string        `mapstructure:"database_url"`
	GeneratedRestaurants          int           `mapstructure:"generated_restaurants"`
	GeneratedStoriesPerRestaurant int           `mapstructure:"generated_stories_per_restaurant"`

	// output
	OutputFormat      string `mapstructure:"output_format"` // console, json, csv, parquet, kafka, postgres
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputDestination string `mapstructure:"output_destination"` // local or s3
	KafkaBrokerList   string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs  int    `mapstructure:"session_timeout_ms"`

	// simulation
	Seed        int64         `mapstructure:"seed"`
	Viewers     int           `mapstructure:"viewers"`
	Concurrency int           `mapstructure:"concurrency"`
	MaxActions  int           `mapstructure:"max_actions"`
	ThinkTime   time.Duration `mapstructure:"think_time"` // mean pause between viewer actions
}

// SetDefaults registers default values for every config key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tick_interval", 50*time.Millisecond)
	v.SetDefault("speed", 1.0)
	v.SetDefault("tap_back_zone", 30.0)
	v.SetDefault("tap_forward_zone", 70.0)

	v.SetDefault("catalog_source", "mock")
	v.SetDefault("catalog_cache_ttl", 5*time.Minute)
	v.SetDefault("s3_region", "us-east-1")
	v.SetDefault("generated_restaurants", 5)
	v.SetDefault("generated_stories_per_restaurant", 2)

	v.SetDefault("output_format", "console")
	v.SetDefault("output_folder", "events")
	v.SetDefault("output_destination", "local")
	v.SetDefault("kafka_broker_list", "localhost:9092")

	v.SetDefault("seed", 42)
	v.SetDefault("viewers", 10)
	v.SetDefault("concurrency", 4)
	v.SetDefault("max_actions", 20)
	v.SetDefault("think_time", 2*time.Second)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// defaults are static; a decode failure here is a programming error
		panic(err)
	}
	return cfg
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv() // Read in environment variables that match

	config, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &config, nil
}

func (cfg *Config) Validate() error {
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", cfg.TickInterval)
	}
	if cfg.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", cfg.Speed)
	}
	if cfg.TapBackZone < 0 || cfg.TapForwardZone > 100 || cfg.TapBackZone >= cfg.TapForwardZone {
		return fmt.Errorf("tap zones must satisfy 0 <= back < forward <= 100, got %v/%v", cfg.TapBackZone, cfg.TapForwardZone)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return nil
}

// WallInterval is the real time between two timer ticks, never below a
// millisecond.
func (cfg *Config) WallInterval() time.Duration {
	d := time.Duration(float64(cfg.TickInterval) / cfg.Speed)
	if d < time.Millisecond {
		return time.Millisecond
	}
	return d
}
