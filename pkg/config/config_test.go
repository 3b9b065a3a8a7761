package config

import (
	"strings"
	"testing"
)

func TestListenPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want int
	}{
		{"default", "9000", 9000},
		{"custom", "8080", 8080},
		{"surrounding spaces", " 3000 ", 3000},
		{"empty falls back", "", DefaultPort},
		{"non-numeric falls back", "abc", DefaultPort},
		{"zero falls back", "0", DefaultPort},
		{"out of range falls back", "70000", DefaultPort},
		{"negative falls back", "-1", DefaultPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: tt.port}
			if got := cfg.ListenPort(); got != tt.want {
				t.Fatalf("ListenPort() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestListenAddr_BindsAllInterfaces(t *testing.T) {
	cfg := &Config{Port: "9000"}
	if got := cfg.ListenAddr(); got != "0.0.0.0:9000" {
		t.Fatalf("ListenAddr() = %q, want %q", got, "0.0.0.0:9000")
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is a no-op", func(t *testing.T) {
		cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", CORSAllowedOrigins: "*"}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("production with safe settings", func(t *testing.T) {
		cfg := &Config{Environment: EnvProduction, LogLevel: "info", CORSAllowedOrigins: "https://app.example.com"}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("production rejects debug and wildcard CORS", func(t *testing.T) {
		cfg := &Config{Environment: EnvProduction, LogLevel: "debug", CORSAllowedOrigins: "*"}
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "LOG_LEVEL") || !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
			t.Fatalf("expected both violations in error, got %q", err.Error())
		}
	})
}
