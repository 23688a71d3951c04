package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OWNER_CODE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("EXPORT_BASENAME", "")

	cfg := Load()
	if cfg.OwnerCode != "" {
		t.Errorf("OwnerCode = %q, want empty", cfg.OwnerCode)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ExportBaseName != "project_estimate" {
		t.Errorf("ExportBaseName = %q, want project_estimate", cfg.ExportBaseName)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("OWNER_CODE", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EXPORT_BASENAME", "acme")

	cfg := Load()
	if cfg.OwnerCode != "s3cret" || cfg.LogLevel != "debug" || cfg.ExportBaseName != "acme" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level  string
		expect log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"nonsense", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			SetupLogger(tt.level)
			if got := log.GetLevel(); got != tt.expect {
				t.Errorf("level = %v, want %v", got, tt.expect)
			}
		})
	}
}
