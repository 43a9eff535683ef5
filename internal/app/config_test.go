package app

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadConfig(t *testing.T) {
	keys := []string{
		"LABELS_OUTPUT_DIR",
		"LABELS_LISTEN_ADDR",
		"LABELS_TEAMS",
		"LABELS_MAX_UPLOAD_BYTES",
		"LABELS_READ_TIMEOUT",
		"LABELS_PUBLISH_URL",
		"LABELS_GOOGLE_CREDENTIALS_FILE",
	}
	originals := make(map[string]string, len(keys))
	for _, key := range keys {
		originals[key] = os.Getenv(key)
	}

	// Cleanup function
	defer func() {
		for key, value := range originals {
			setOrUnset(key, value)
		}
	}()

	resetEnv := func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	}

	t.Run("Defaults", func(t *testing.T) {
		resetEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.OutputDir != "." {
			t.Errorf("Expected OutputDir to default to '.', got '%s'", config.OutputDir)
		}

		if config.ListenAddr != ":8080" {
			t.Errorf("Expected ListenAddr to default to ':8080', got '%s'", config.ListenAddr)
		}

		if config.MaxUploadBytes != 10<<20 {
			t.Errorf("Expected MaxUploadBytes 10MiB, got %d", config.MaxUploadBytes)
		}

		if config.ReadTimeout != 15*time.Second {
			t.Errorf("Expected ReadTimeout 15s, got %v", config.ReadTimeout)
		}

		if config.CredentialsFile != "credentials.json" {
			t.Errorf("Expected CredentialsFile to default to 'credentials.json', got '%s'", config.CredentialsFile)
		}

		if len(config.Teams) != len(DefaultTeams) {
			t.Fatalf("Expected %d default teams, got %d", len(DefaultTeams), len(config.Teams))
		}

		if config.PublishURL != "" {
			t.Errorf("Expected empty PublishURL, got '%s'", config.PublishURL)
		}
	})

	t.Run("CustomTeams", func(t *testing.T) {
		resetEnv()
		os.Setenv("LABELS_TEAMS", "Alpha Sharks, Beta Rays,,")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(config.Teams) != 2 {
			t.Fatalf("Expected 2 teams, got %v", config.Teams)
		}

		if !config.HasTeam("Beta Rays") {
			t.Errorf("Expected 'Beta Rays' to be configured, got %v", config.Teams)
		}

		if config.HasTeam("Cupertino Hills") {
			t.Error("Expected default teams to be replaced")
		}
	})

	t.Run("InvalidUploadLimit", func(t *testing.T) {
		resetEnv()
		os.Setenv("LABELS_MAX_UPLOAD_BYTES", "0")

		_, err := LoadConfig()
		if err == nil {
			t.Fatal("Expected error for zero upload limit, got nil")
		}

		if !strings.Contains(err.Error(), "MAX_UPLOAD_BYTES") {
			t.Errorf("Expected error message to contain 'MAX_UPLOAD_BYTES', got '%s'", err.Error())
		}
	})

	t.Run("MalformedDuration", func(t *testing.T) {
		resetEnv()
		os.Setenv("LABELS_READ_TIMEOUT", "soon")

		if _, err := LoadConfig(); err == nil {
			t.Fatal("Expected error for malformed duration, got nil")
		}
	})
}

func TestSetupEnvironment(t *testing.T) {
	// Save original environment
	originalENV := os.Getenv("ENV")
	originalLOGLEVEL := os.Getenv("LOGLEVEL")
	originalLevel := zerolog.GlobalLevel()

	// Cleanup function
	defer func() {
		setOrUnset("ENV", originalENV)
		setOrUnset("LOGLEVEL", originalLOGLEVEL)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	testCases := []struct {
		name          string
		env           string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{"ProductionDebug", "production", "debug", zerolog.DebugLevel},
		{"ProductionWarning", "production", "warning", zerolog.WarnLevel},
		{"ProductionError", "production", "error", zerolog.ErrorLevel},
		{"ProductionDisabled", "production", "disabled", zerolog.Disabled},
		{"ProductionDefault", "production", "", zerolog.WarnLevel},
		{"ProductionUnknown", "production", "unknown", zerolog.InfoLevel},
		{"DevelopmentDebug", "development", "debug", zerolog.DebugLevel},
		{"DevelopmentDefault", "development", "", zerolog.InfoLevel},
		{"DevelopmentUnknown", "", "unknown", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setOrUnset("ENV", tc.env)
			setOrUnset("LOGLEVEL", tc.logLevel)

			SetupEnvironment()

			if zerolog.GlobalLevel() != tc.expectedLevel {
				t.Errorf("Expected log level %v, got %v", tc.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestAthleteFullName(t *testing.T) {
	tests := []struct {
		athlete  Athlete
		expected string
	}{
		{Athlete{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{Athlete{FirstName: "Ada"}, "Ada "},
		{Athlete{LastName: "Lovelace"}, " Lovelace"},
	}

	for _, tt := range tests {
		if got := tt.athlete.FullName(); got != tt.expected {
			t.Errorf("Expected '%s', got '%s'", tt.expected, got)
		}
	}
}

// Helper function to set environment variable or unset if value is empty
func setOrUnset(key, value string) {
	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}
