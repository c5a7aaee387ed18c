package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment-driven configuration values for the dashboard
// service.
type Config struct {
	HTTPPort      int
	AdminPassword string
	SessionTTL    time.Duration
	ReferenceDate time.Time
	FirstHour     int
	LastHour      int
	SeedDemoData  bool
}

// Load parses configuration values from the current process environment.
//
// The loader applies defaults for optional fields while validating required
// values, collecting every missing or malformed entry so a misconfigured
// deployment is reported in one pass.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:      8080,
		SessionTTL:    24 * time.Hour,
		ReferenceDate: time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC),
		FirstHour:     8,
		LastHour:      17,
		SeedDemoData:  true,
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("DASHBOARD_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "DASHBOARD_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if password := strings.TrimSpace(os.Getenv("DASHBOARD_ADMIN_PASSWORD")); password == "" {
		missing = append(missing, "DASHBOARD_ADMIN_PASSWORD")
	} else {
		cfg.AdminPassword = password
	}

	if ttlValue := strings.TrimSpace(os.Getenv("DASHBOARD_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "DASHBOARD_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if dateValue := strings.TrimSpace(os.Getenv("DASHBOARD_REFERENCE_DATE")); dateValue != "" {
		date, err := time.Parse("2006-01-02", dateValue)
		if err != nil {
			invalid = append(invalid, "DASHBOARD_REFERENCE_DATE")
		} else {
			cfg.ReferenceDate = date
		}
	}

	if hourValue := strings.TrimSpace(os.Getenv("DASHBOARD_FIRST_HOUR")); hourValue != "" {
		hour, err := strconv.Atoi(hourValue)
		if err != nil || hour < 0 || hour > 23 {
			invalid = append(invalid, "DASHBOARD_FIRST_HOUR")
		} else {
			cfg.FirstHour = hour
		}
	}

	if hourValue := strings.TrimSpace(os.Getenv("DASHBOARD_LAST_HOUR")); hourValue != "" {
		hour, err := strconv.Atoi(hourValue)
		if err != nil || hour < 0 || hour > 23 {
			invalid = append(invalid, "DASHBOARD_LAST_HOUR")
		} else {
			cfg.LastHour = hour
		}
	}

	if seedValue := strings.TrimSpace(os.Getenv("DASHBOARD_SEED_DEMO_DATA")); seedValue != "" {
		seed, err := strconv.ParseBool(seedValue)
		if err != nil {
			invalid = append(invalid, "DASHBOARD_SEED_DEMO_DATA")
		} else {
			cfg.SeedDemoData = seed
		}
	}

	if cfg.LastHour < cfg.FirstHour {
		invalid = append(invalid, "DASHBOARD_LAST_HOUR")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
