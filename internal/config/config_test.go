package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.HourlyRate != 15.0 {
		t.Fatalf("HourlyRate = %v, want 15.0", cfg.HourlyRate)
	}
	if cfg.TaxRate != 0.20 {
		t.Fatalf("TaxRate = %v, want 0.20", cfg.TaxRate)
	}
	if cfg.OvertimeMultiplier != 1.5 {
		t.Fatalf("OvertimeMultiplier = %v, want 1.5", cfg.OvertimeMultiplier)
	}
	if cfg.PayslipDir != "payslips" {
		t.Fatalf("PayslipDir = %q, want payslips", cfg.PayslipDir)
	}
	if cfg.IsProduction() {
		t.Fatal("IsProduction() = true for default environment")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PAYROLL_HOURLY_RATE", "22.5")
	t.Setenv("PAYROLL_TAX_RATE", "0.25")
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	if cfg.HourlyRate != 22.5 {
		t.Fatalf("HourlyRate = %v, want 22.5", cfg.HourlyRate)
	}
	if cfg.TaxRate != 0.25 {
		t.Fatalf("TaxRate = %v, want 0.25", cfg.TaxRate)
	}
	if !cfg.IsProduction() {
		t.Fatal("IsProduction() = false with APP_ENV=production")
	}
}

func TestValidate(t *testing.T) {
	base := Load()
	base.DatabaseURL = "postgres://localhost/backoffice"

	if err := base.Validate(); err != nil {
		t.Fatalf("Validate() on valid config: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"missing database url", func(c *Config) { c.DatabaseURL = " " }, "DATABASE_URL"},
		{"zero hourly rate", func(c *Config) { c.HourlyRate = 0 }, "PAYROLL_HOURLY_RATE"},
		{"tax rate of one", func(c *Config) { c.TaxRate = 1 }, "PAYROLL_TAX_RATE"},
		{"overtime below one", func(c *Config) { c.OvertimeMultiplier = 0.5 }, "PAYROLL_OVERTIME_MULTIPLIER"},
		{"tiny body limit", func(c *Config) { c.MaxBodyBytes = 100 }, "MAX_BODY_BYTES"},
		{"email without host", func(c *Config) { c.EmailEnabled = true; c.SMTPHost = "" }, "SMTP_HOST"},
		{"production without secret", func(c *Config) { c.Environment = "production"; c.JWTSecret = "" }, "JWT_SECRET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("Validate() = %v, want mention of %s", err, tc.wantSub)
			}
		})
	}
}
