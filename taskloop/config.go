package taskloop

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the loop bounds and completion-endpoint settings.
type Config struct {
	// Provider and credential for the completion endpoint. An empty APIKey
	// means no credential is configured; ExecuteTask fails its setup
	// precondition without making any completion call.
	Provider string `env:"FLOWPILOT_PROVIDER" envDefault:"openai"`
	Model    string `env:"FLOWPILOT_MODEL"`
	APIKey   string `env:"FLOWPILOT_API_KEY"`

	Temperature float64 `env:"FLOWPILOT_TEMPERATURE" envDefault:"0.2"`
	MaxTokens   int     `env:"FLOWPILOT_MAX_TOKENS" envDefault:"2048"`

	// MaxIterations caps completion calls per ExecuteTask invocation.
	MaxIterations int `env:"FLOWPILOT_MAX_ITERATIONS" envDefault:"10"`

	// MaxDelegationDepth caps agent-to-agent delegation hops. A task at
	// depth >= MaxDelegationDepth is never offered the delegate action.
	MaxDelegationDepth int `env:"FLOWPILOT_MAX_DELEGATION_DEPTH" envDefault:"2"`

	// ExecutionTimeout bounds one automation run await.
	ExecutionTimeout time.Duration `env:"FLOWPILOT_EXECUTION_TIMEOUT" envDefault:"2m"`
}

// DefaultConfig returns the default configuration (no credential).
func DefaultConfig() Config {
	return Config{
		Provider:           "openai",
		Temperature:        0.2,
		MaxTokens:          2048,
		MaxIterations:      10,
		MaxDelegationDepth: 2,
		ExecutionTimeout:   automationDefaultTimeout,
	}
}

const automationDefaultTimeout = 2 * time.Minute

// ConfigFromEnv reads configuration from FLOWPILOT_* environment variables,
// applying defaults for anything unset.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
