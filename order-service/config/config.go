package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string            `mapstructure:"service_name"`
	Env         string            `mapstructure:"env"`
	Port        string            `mapstructure:"port"`
	LogLevel    string            `mapstructure:"log_level"`
	Barista     Downstream        `mapstructure:"barista"`
	Payment     Downstream        `mapstructure:"payment"`
	Prices      map[string]string `mapstructure:"prices"`
	Telemetry   Telemetry         `mapstructure:"telemetry"`
	AWS         AWS               `mapstructure:"aws"`
}

// Downstream describes a service the order saga calls
type Downstream struct {
	Endpoint    string        `mapstructure:"endpoint"`
	Timeout     time.Duration `mapstructure:"timeout"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type AWS struct {
	Enabled         bool   `mapstructure:"enabled"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	EndpointSNS     string `mapstructure:"endpoint_sns"`
	SNSTopicArn     string `mapstructure:"sns_topic_arn"`
}

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	v := viper.New()
	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Dir(filename))

	// Allow environment variables to override config
	v.SetEnvPrefix("ORDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper) {
	// Service defaults
	v.SetDefault("service_name", "order-service")
	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")

	// Downstream defaults
	v.SetDefault("barista.endpoint", "http://localhost:8082")
	v.SetDefault("barista.timeout", "100ms")
	v.SetDefault("barista.http_timeout", "2s")
	v.SetDefault("payment.endpoint", "http://localhost:8081")
	v.SetDefault("payment.http_timeout", "2s")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otlp_endpoint", "")

	// AWS defaults
	v.SetDefault("aws.enabled", false)
	v.SetDefault("aws.access_key_id", "test")
	v.SetDefault("aws.secret_access_key", "test")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint_sns", "http://localhost:4566")
	v.SetDefault("aws.sns_topic_arn", "arn:aws:sns:us-east-1:000000000000:coffee-events")
}
