package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
)

// envPrefix namespaces environment variables (APIWIKI_CODEGEN_URL, ...).
const envPrefix = "APIWIKI"

// Config holds the application configuration loaded from flags, environment
// variables, .env files and an optional config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	DryRun  bool

	// Config file
	ConfigFile string

	// Endpoints
	DiscoveryURL string
	CodegenURL   string
	SamplesURL   string
	ExplorerURL  string
	ConsoleURL   string

	// Run configuration
	Language    string
	HTTPTimeout time.Duration
	Concurrency int
	Rate        float64
	Extras      string
	UserAgent   string

	// Logging configuration
	LogLevel    string // --log-level
	EnvLogLevel string // LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (when flags is non-nil)
// 2. Environment variables (APIWIKI_*)
// 3. .env files
// 4. Config file (configFile, or ~/.apiwiki.yaml, or ./.apiwiki.yaml)
// 5. Defaults
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		bindFlags(v, flags)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".apiwiki")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "failed to read "+v.ConfigFileUsed(), err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		DryRun:  v.GetBool("dry-run"),

		ConfigFile: v.ConfigFileUsed(),

		DiscoveryURL: v.GetString("discovery_url"),
		CodegenURL:   v.GetString("codegen_url"),
		SamplesURL:   v.GetString("samples_url"),
		ExplorerURL:  v.GetString("explorer_url"),
		ConsoleURL:   v.GetString("console_url"),

		Language:    v.GetString("language"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		Concurrency: v.GetInt("concurrency"),
		Rate:        v.GetFloat64("rate"),
		Extras:      v.GetString("extras"),
		UserAgent:   v.GetString("user_agent"),

		LogLevel:    v.GetString("log-level"),
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that numeric settings are in range.
func (c *Config) Validate() error {
	if c.Concurrency < 1 || c.Concurrency > constants.MaxConcurrency {
		return errors.NewConfigError("concurrency", "must be between 1 and 16", nil)
	}
	if c.Rate < 0 {
		return errors.NewConfigError("rate", "must not be negative", nil)
	}
	if c.HTTPTimeout <= 0 {
		return errors.NewConfigError("http_timeout", "must be positive", nil)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("discovery_url", constants.DiscoveryURL)
	v.SetDefault("codegen_url", constants.CodegenURL)
	v.SetDefault("samples_url", constants.SamplesURL)
	v.SetDefault("explorer_url", constants.ExplorerURL)
	v.SetDefault("console_url", constants.ConsoleURL)
	v.SetDefault("language", constants.Language)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("concurrency", constants.DefaultConcurrency)
	v.SetDefault("rate", 0)
	v.SetDefault("user_agent", constants.UserAgent)
}

// bindFlags maps command-line flags onto config keys. Only flags the user
// actually set take precedence over the other sources.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	keys := map[string]string{
		"verbose":     "verbose",
		"quiet":       "quiet",
		"no-color":    "no-color",
		"dry-run":     "dry-run",
		"log-level":   "log-level",
		"extras":      "extras",
		"concurrency": "concurrency",
		"rate":        "rate",
	}
	for flag, key := range keys {
		if f := flags.Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so that it wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
