package azopenai

import "time"

const (
	// DefaultAPIVersion is used for Azure deployments when none is configured
	DefaultAPIVersion = "2024-08-01-preview"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// QwenBaseURL is the OpenAI-compatible DashScope endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// Flavors
const (
	FlavorAzure  = "azure"
	FlavorOpenAI = "openai"
)
