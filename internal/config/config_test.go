package config

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_BOOL", "true")
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BAD_INT", "forty-two")

	if got := GetEnvAsType("TYPED_BOOL", false); !got {
		t.Errorf("GetEnvAsType(bool) = %v, expected true", got)
	}
	if got := GetEnvAsType("TYPED_INT", 0); got != 42 {
		t.Errorf("GetEnvAsType(int) = %v, expected 42", got)
	}
	if got := GetEnvAsType("TYPED_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvAsType(invalid int) = %v, expected default 7", got)
	}
	if got := GetEnvAsType("TYPED_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvAsType(missing) = %v, expected fallback", got)
	}
}

// configVars lists every variable read by LoadConfig
var configVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "JWT_SECRET", "AUTH_ENABLED",
	"DB_DRIVER", "DB_URI", "DB_PATH", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
	"DB_PASSWORD", "DB_SSLMODE", "SEED_DATABASE",
}

func cleanupTestEnv() {
	for _, v := range configVars {
		os.Unsetenv(v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("DB_URI", "/tmp/pizza.db")
		os.Setenv("AUTH_ENABLED", "true")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key_with_32_chars!")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.DBPath != "/tmp/pizza.db" {
			t.Errorf("DBPath = %s, expected /tmp/pizza.db", config.DBPath)
		}
		if !config.AuthEnabled {
			t.Error("AuthEnabled = false, expected true")
		}
		if config.Address() != "0.0.0.0:9000" {
			t.Errorf("Address() = %s, expected 0.0.0.0:9000", config.Address())
		}
	})

	t.Run("log level follows environment unless set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_ENV", "production")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.LogLevel != "error" {
			t.Errorf("LogLevel = %s, expected production default error", config.LogLevel)
		}

		os.Setenv("LOG_LEVEL", "warn")
		config, err = LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.LogLevel != "warn" {
			t.Errorf("LogLevel = %s, expected warn", config.LogLevel)
		}
	})

	t.Run("accepts a sqlite uri in DB_URI", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("DB_URI", "sqlite:///pizza.db")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if dsn := config.Database().DSN(); dsn != "pizza.db?_foreign_keys=on" {
			t.Errorf("Database().DSN() = %s, expected pizza.db?_foreign_keys=on", dsn)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with short jwt secret when auth enabled", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("AUTH_ENABLED", "true")
		os.Setenv("JWT_SECRET", "short")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should reject a short JWT_SECRET")
		}
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("DB_DRIVER", "oracle")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should reject an unsupported DB_DRIVER")
		}
	})

	t.Run("should require host for postgres", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("DB_DRIVER", "postgres")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should require DB_HOST for postgres")
		}

		os.Setenv("DB_HOST", "db")
		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}
		if config.DBPort != "5432" {
			t.Errorf("DBPort = %s, expected default 5432", config.DBPort)
		}
		if config.Database().NormalizedDriver() != "postgres" {
			t.Errorf("Database().Driver = %s, expected postgres", config.Database().Driver)
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 5555 {
			t.Errorf("Port = %d, expected default 5555", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected development default debug", config.LogLevel)
		}
		if config.DBDriver != "sqlite" || config.DBPath != "app.db" {
			t.Errorf("DB = %s %s, expected default sqlite app.db", config.DBDriver, config.DBPath)
		}
		if config.AuthEnabled {
			t.Error("AuthEnabled should default to false")
		}
		if !config.SeedData {
			t.Error("SeedData should default to true")
		}
	})
}

func TestStringMasksSecrets(t *testing.T) {
	config := &Config{DBPassword: "db-pass", JWTSecret: "jwt-secret", LogLevel: "info"}
	s := config.String()
	for _, secret := range []string{"db-pass", "jwt-secret"} {
		if strings.Contains(s, secret) {
			t.Errorf("String() leaks %q: %s", secret, s)
		}
	}
}

func TestLevelForEnvironment(t *testing.T) {
	testCases := map[string]logrus.Level{
		"development": logrus.DebugLevel,
		"production":  logrus.ErrorLevel,
		"staging":     logrus.InfoLevel,
	}
	for env, expected := range testCases {
		if got := LevelForEnvironment(env); got != expected {
			t.Errorf("LevelForEnvironment(%s) = %v, expected %v", env, got, expected)
		}
	}
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
