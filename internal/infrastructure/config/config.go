package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Processor environments and their API origins.
const (
	EnvironmentDevelopment = "development"
	EnvironmentQA          = "qa"
	EnvironmentSandbox     = "sandbox"
	EnvironmentProduction  = "production"
)

var environmentBaseURLs = map[string]string{
	EnvironmentDevelopment: "http://localhost:3000",
	EnvironmentQA:          "https://gateway.qa.braintreepayments.com:443",
	EnvironmentSandbox:     "https://api.sandbox.braintreegateway.com:443",
	EnvironmentProduction:  "https://api.braintreegateway.com:443",
}

// Config is the service configuration, read from the environment.
//
// Supported env vars:
//   - PROCESSOR_ENVIRONMENT (default: sandbox)
//   - PROCESSOR_BASE_URL (optional; overrides the environment's origin)
//   - PROCESSOR_MERCHANT_ID, PROCESSOR_PUBLIC_KEY, PROCESSOR_PRIVATE_KEY (required)
//   - PROCESSOR_TIMEOUT (default: 60s), PROCESSOR_API_VERSION (default: 6)
//   - HTTP_PORT (default: 8080), APP_ENV (default: local)
//   - LOG_FILE (optional; tees logs to the file), LOG_LEVEL (default: info)
//   - OPERATIONS_TABLE (default: payment_method_operations)
//   - AWS_REGION (default: us-east-1), DYNAMODB_ENDPOINT (optional)
//   - AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY (default: local)
//   - OTEL_EXPORTER_OTLP_ENDPOINT (optional; host:port, enables span export)
//   - OTEL_EXPORTER_OTLP_INSECURE (default: true), OTEL_TRACES_SAMPLE_RATE (default: 1)
type Config struct {
	Environment string        `mapstructure:"processor_environment" validate:"required,oneof=development qa sandbox production"`
	BaseURL     string        `mapstructure:"processor_base_url" validate:"omitempty,url"`
	MerchantID  string        `mapstructure:"processor_merchant_id" validate:"required"`
	PublicKey   string        `mapstructure:"processor_public_key" validate:"required"`
	PrivateKey  string        `mapstructure:"processor_private_key" validate:"required"`
	Timeout     time.Duration `mapstructure:"processor_timeout" validate:"gt=0"`
	APIVersion  string        `mapstructure:"processor_api_version" validate:"required"`

	HTTPPort int    `mapstructure:"http_port" validate:"min=1,max=65535"`
	AppEnv   string `mapstructure:"app_env"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error dpanic panic fatal"`

	OperationsTable  string `mapstructure:"operations_table" validate:"required"`
	AWSRegion        string `mapstructure:"aws_region" validate:"required"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint" validate:"omitempty,url"`
	AWSAccessKeyID   string `mapstructure:"aws_access_key_id"`
	AWSSecretKey     string `mapstructure:"aws_secret_access_key"`

	OTLPEndpoint    string  `mapstructure:"otel_exporter_otlp_endpoint"`
	OTLPInsecure    bool    `mapstructure:"otel_exporter_otlp_insecure"`
	TraceSampleRate float64 `mapstructure:"otel_traces_sample_rate" validate:"gte=0,lte=1"`
}

var defaults = map[string]any{
	"processor_environment": EnvironmentSandbox,
	"processor_base_url":    "",
	"processor_merchant_id": "",
	"processor_public_key":  "",
	"processor_private_key": "",
	"processor_timeout":     "60s",
	"processor_api_version": "6",

	"http_port": 8080,
	"app_env":   "local",
	"log_file":  "",
	"log_level": "info",

	"operations_table":      "payment_method_operations",
	"aws_region":            "us-east-1",
	"dynamodb_endpoint":     "",
	"aws_access_key_id":     "local",
	"aws_secret_access_key": "local",

	"otel_exporter_otlp_endpoint": "",
	"otel_exporter_otlp_insecure": true,
	"otel_traces_sample_rate":     1.0,
}

// Load reads and validates the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// ProcessorBaseURL is PROCESSOR_BASE_URL when set, otherwise the environment's origin.
func (c *Config) ProcessorBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return environmentBaseURLs[c.Environment]
}

// BaseMerchantPath is the merchant-scoped prefix of every processor path.
func (c *Config) BaseMerchantPath() string {
	return "/merchants/" + c.MerchantID
}
