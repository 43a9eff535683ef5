package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvPrefix is the prefix for every configuration environment variable
const EnvPrefix = "LABELS"

// DefaultTeams are the teams offered by the form when LABELS_TEAMS is not set
var DefaultTeams = []string{
	"Greenmeadow Marlins",
	"Brookside Waves",
	"Laurelwood",
	"Eichler Gators",
	"Saratoga Woods",
	"Cupertino Hills",
}

// Config holds application configuration
type Config struct {
	OutputDir       string        `envconfig:"OUTPUT_DIR" default:"."`
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	Teams           []string      `envconfig:"TEAMS"`
	MaxUploadBytes  int64         `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	CredentialsFile string        `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`
	PublishURL      string        `envconfig:"PUBLISH_URL"`
	PublishKeyFile  string        `envconfig:"PUBLISH_KEY_FILE" default:"deploy.pem"`
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from LABELS_* environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	teams := make([]string, 0, len(cfg.Teams))
	for _, team := range cfg.Teams {
		if trimmed := strings.TrimSpace(team); trimmed != "" {
			teams = append(teams, trimmed)
		}
	}
	if len(teams) == 0 {
		teams = append(teams, DefaultTeams...)
	}
	cfg.Teams = teams

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("%s_MAX_UPLOAD_BYTES must be positive, got %d", EnvPrefix, cfg.MaxUploadBytes)
	}

	return &cfg, nil
}

// HasTeam reports whether team is one of the configured teams
func (c *Config) HasTeam(team string) bool {
	for _, t := range c.Teams {
		if t == team {
			return true
		}
	}
	return false
}
