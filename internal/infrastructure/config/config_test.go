package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PROCESSOR_MERCHANT_ID", "merchant-1")
	t.Setenv("PROCESSOR_PUBLIC_KEY", "pub")
	t.Setenv("PROCESSOR_PRIVATE_KEY", "priv")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"PROCESSOR_ENVIRONMENT", "PROCESSOR_BASE_URL", "PROCESSOR_TIMEOUT", "HTTP_PORT", "OPERATIONS_TABLE", "AWS_REGION", "OTEL_EXPORTER_OTLP_ENDPOINT", "LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvironmentSandbox, cfg.Environment)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "6", cfg.APIVersion)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "payment_method_operations", cfg.OperationsTable)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, 1.0, cfg.TraceSampleRate)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.sandbox.braintreegateway.com:443", cfg.ProcessorBaseURL())
	assert.Equal(t, "/merchants/merchant-1", cfg.BaseMerchantPath())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PROCESSOR_ENVIRONMENT", " Production ")
	t.Setenv("PROCESSOR_BASE_URL", "")
	t.Setenv("PROCESSOR_TIMEOUT", "5s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OPERATIONS_TABLE", "ops")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("LOG_FILE", "/tmp/gateway.log")
	t.Setenv("LOG_LEVEL", " DEBUG ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvironmentProduction, cfg.Environment)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "ops", cfg.OperationsTable)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoDBEndpoint)
	assert.Equal(t, "/tmp/gateway.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://api.braintreegateway.com:443", cfg.ProcessorBaseURL())
}

func TestLoad_BaseURLOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("PROCESSOR_ENVIRONMENT", "")
	t.Setenv("PROCESSOR_BASE_URL", "http://processor.local:3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://processor.local:3000", cfg.ProcessorBaseURL())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("PROCESSOR_MERCHANT_ID", "")
		t.Setenv("PROCESSOR_PUBLIC_KEY", "")
		t.Setenv("PROCESSOR_PRIVATE_KEY", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown environment", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PROCESSOR_ENVIRONMENT", "staging")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("sample rate out of range", func(t *testing.T) {
		setRequired(t)
		t.Setenv("OTEL_TRACES_SAMPLE_RATE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})
}
