package httpclient

import (
	"fmt"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultAPIVersion = "6"
	defaultUserAgent  = "payment-method-gateway/1.0"
)

// Config configures the processor client.
type Config struct {
	// BaseURL is the processor origin, e.g. https://api.sandbox.example.com:443.
	BaseURL    string
	PublicKey  string
	PrivateKey string
	// APIVersion is sent as X-ApiVersion. Defaults to 6.
	APIVersion string
	UserAgent  string
	// Timeout bounds a whole request. Defaults to 60s.
	Timeout time.Duration
	// Transport overrides http.DefaultTransport.
	Transport http.RoundTripper
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Transport == nil {
		c.Transport = http.DefaultTransport
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("httpclient: base url is required")
	}
	if c.PublicKey == "" || c.PrivateKey == "" {
		return fmt.Errorf("httpclient: public and private keys are required")
	}
	return nil
}
