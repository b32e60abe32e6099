package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("unused.yaml", true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("http_addr=%q want :8080", cfg.Server.HTTPAddr)
	}
	if cfg.Rates.Currency != "INR" || cfg.Rates.Timezone != "Asia/Kolkata" {
		t.Fatalf("rates defaults wrong: %+v", cfg.Rates)
	}
	if len(cfg.Rates.Samples) != len(DefaultRateSamples()) {
		t.Fatalf("samples=%d want %d", len(cfg.Rates.Samples), len(DefaultRateSamples()))
	}
	if !cfg.Cron.Enabled || cfg.Cron.RateSnapshot == "" {
		t.Fatalf("cron defaults wrong: %+v", cfg.Cron)
	}
}

func TestLoadEnvOnlyOverrides(t *testing.T) {
	t.Setenv("GOLD_DB_DSN", "host=db port=5432 user=gold dbname=goldledger")
	t.Setenv("GOLD_SERVER_HTTP_ADDR", ":9090")

	cfg, err := Load("unused.yaml", true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DB.DSN != "host=db port=5432 user=gold dbname=goldledger" {
		t.Fatalf("dsn=%q, env override not applied", cfg.DB.DSN)
	}
	if cfg.Server.HTTPAddr != ":9090" {
		t.Fatalf("http_addr=%q, env override not applied", cfg.Server.HTTPAddr)
	}
}

func TestDefaultRateSamplesArePositive(t *testing.T) {
	for _, p := range DefaultRateSamples() {
		if p <= 0 {
			t.Fatalf("sample %v not positive", p)
		}
	}
}
