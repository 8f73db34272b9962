package azopenai

import (
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds the client configuration.
// For FlavorAzure, Model is the deployment name and BaseURL the resource endpoint.
type Config struct {
	Flavor     string
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
	Timeout    time.Duration
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("azopenai: APIKey is required")
	}
	if c.Model == "" {
		return fmt.Errorf("azopenai: Model is required")
	}
	if c.Flavor == "" {
		c.Flavor = FlavorAzure
	}
	switch c.Flavor {
	case FlavorAzure:
		if c.BaseURL == "" {
			return fmt.Errorf("azopenai: BaseURL is required for azure")
		}
		if c.APIVersion == "" {
			c.APIVersion = DefaultAPIVersion
		}
	case FlavorOpenAI:
	default:
		return fmt.Errorf("azopenai: unknown flavor %q", c.Flavor)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

func (c Config) clientConfig() openai.ClientConfig {
	var cfg openai.ClientConfig
	if c.Flavor == FlavorAzure {
		cfg = openai.DefaultAzureConfig(c.APIKey, c.BaseURL)
		cfg.APIVersion = c.APIVersion
		deployment := c.Model
		cfg.AzureModelMapperFunc = func(string) string { return deployment }
	} else {
		cfg = openai.DefaultConfig(c.APIKey)
		if c.BaseURL != "" {
			cfg.BaseURL = c.BaseURL
		}
	}
	cfg.HTTPClient = &http.Client{Timeout: c.Timeout}
	return cfg
}

// JSONSchema adapts a JSON Schema map to the json.Marshaler go-openai expects.
type JSONSchema map[string]interface{}

func (s JSONSchema) MarshalJSON() ([]byte, error) {
	return marshalMap(s)
}
