package taskloop

import (
	"testing"
	"time"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("unexpected default provider %q", cfg.Provider)
	}
	if cfg.MaxIterations != 10 {
		t.Errorf("unexpected default max iterations %d", cfg.MaxIterations)
	}
	if cfg.MaxDelegationDepth != 2 {
		t.Errorf("unexpected default delegation depth %d", cfg.MaxDelegationDepth)
	}
	if cfg.ExecutionTimeout != 2*time.Minute {
		t.Errorf("unexpected default execution timeout %s", cfg.ExecutionTimeout)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("FLOWPILOT_PROVIDER", "anthropic")
	t.Setenv("FLOWPILOT_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("FLOWPILOT_MAX_ITERATIONS", "5")
	t.Setenv("FLOWPILOT_EXECUTION_TIMEOUT", "45s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("unexpected provider %q", cfg.Provider)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
	if cfg.MaxIterations != 5 {
		t.Errorf("unexpected max iterations %d", cfg.MaxIterations)
	}
	if cfg.ExecutionTimeout != 45*time.Second {
		t.Errorf("unexpected execution timeout %s", cfg.ExecutionTimeout)
	}
}

func TestConfigFromEnvInvalidValue(t *testing.T) {
	t.Setenv("FLOWPILOT_MAX_ITERATIONS", "lots")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error for non-numeric iteration cap")
	}
}
