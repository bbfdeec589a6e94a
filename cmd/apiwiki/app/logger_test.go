package app

import (
	"testing"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default level when no flags set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "explicit log-level overrides quiet",
			config:   &Config{LogLevel: "trace", Quiet: true},
			expected: "trace",
		},
		{
			name:     "both verbose and quiet prefers quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "env LOG_LEVEL used when no flags",
			config:   &Config{EnvLogLevel: "debug"},
			expected: "debug",
		},
		{
			name:     "verbose overrides env LOG_LEVEL",
			config:   &Config{EnvLogLevel: "error", Verbose: true},
			expected: "debug",
		},
		{
			name:     "invalid log level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
		{
			name:     "invalid env level falls back to info",
			config:   &Config{EnvLogLevel: "loud"},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(tt.config); got != tt.expected {
				t.Errorf("determineLogLevel() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestValidateLogLevel tests log level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q", level, got)
		}
	}
	if got := validateLogLevel("INFO"); got != "info" {
		t.Errorf("validateLogLevel(INFO) = %q, want info", got)
	}
}
