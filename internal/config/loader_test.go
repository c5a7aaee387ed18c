package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DASHBOARD_ADMIN_PASSWORD", "s3cret")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Fatalf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	wantReference := time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)
	if !cfg.ReferenceDate.Equal(wantReference) {
		t.Fatalf("ReferenceDate = %v, want %v", cfg.ReferenceDate, wantReference)
	}
	if cfg.FirstHour != 8 || cfg.LastHour != 17 {
		t.Fatalf("hour window = %d..%d, want 8..17", cfg.FirstHour, cfg.LastHour)
	}
	if !cfg.SeedDemoData {
		t.Fatal("SeedDemoData defaults to false, want true")
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DASHBOARD_HTTP_PORT", "9090")
	t.Setenv("DASHBOARD_SESSION_TTL", "2h")
	t.Setenv("DASHBOARD_REFERENCE_DATE", "2024-01-02")
	t.Setenv("DASHBOARD_FIRST_HOUR", "7")
	t.Setenv("DASHBOARD_LAST_HOUR", "19")
	t.Setenv("DASHBOARD_SEED_DEMO_DATA", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}

	if cfg.HTTPPort != 9090 || cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ReferenceDate.Year() != 2024 || cfg.FirstHour != 7 || cfg.LastHour != 19 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SeedDemoData {
		t.Fatal("SeedDemoData override not applied")
	}
}

func TestLoadReportsMissingAdminPassword(t *testing.T) {
	t.Setenv("DASHBOARD_ADMIN_PASSWORD", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load succeeded without the admin password")
	}
	if !strings.Contains(err.Error(), "DASHBOARD_ADMIN_PASSWORD") {
		t.Fatalf("error does not name the missing variable: %v", err)
	}
}

func TestLoadCollectsInvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("DASHBOARD_HTTP_PORT", "not-a-port")
	t.Setenv("DASHBOARD_SESSION_TTL", "-5m")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted invalid values")
	}
	message := err.Error()
	if !strings.Contains(message, "DASHBOARD_HTTP_PORT") || !strings.Contains(message, "DASHBOARD_SESSION_TTL") {
		t.Fatalf("error does not list every invalid variable: %v", err)
	}
}

func TestLoadRejectsInvertedHourWindow(t *testing.T) {
	setRequired(t)
	t.Setenv("DASHBOARD_FIRST_HOUR", "15")
	t.Setenv("DASHBOARD_LAST_HOUR", "9")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted an inverted hour window")
	}
	if !strings.Contains(err.Error(), "DASHBOARD_LAST_HOUR") {
		t.Fatalf("error does not name the inverted bound: %v", err)
	}
}

func TestLoadRejectsMalformedReferenceDate(t *testing.T) {
	setRequired(t)
	t.Setenv("DASHBOARD_REFERENCE_DATE", "July 15 2023")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted a malformed reference date")
	}
	if !strings.Contains(err.Error(), "DASHBOARD_REFERENCE_DATE") {
		t.Fatalf("error does not name the malformed variable: %v", err)
	}
}
