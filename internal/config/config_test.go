package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyDefaults()

	if cfg.Server.Addr != ":3000" {
		t.Errorf("Expected default addr ':3000', got %q", cfg.Server.Addr)
	}
	if cfg.Client.APIURL != "http://localhost:3000" {
		t.Errorf("Expected default api url, got %q", cfg.Client.APIURL)
	}
	if cfg.Server.DatabasePath == "" {
		t.Error("Expected a default database path")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LISTO_ADDR", ":9999")
	t.Setenv("LISTO_DB_PATH", "/tmp/listo-test.db")
	t.Setenv("LISTO_API_URL", "http://example.test:9999")
	t.Setenv("LISTO_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg := defaultConfig()
	cfg.applyDefaults()
	cfg.applyEnv()

	if cfg.Server.Addr != ":9999" {
		t.Errorf("Expected addr override, got %q", cfg.Server.Addr)
	}
	if cfg.Server.DatabasePath != "/tmp/listo-test.db" {
		t.Errorf("Expected db path override, got %q", cfg.Server.DatabasePath)
	}
	if cfg.Client.APIURL != "http://example.test:9999" {
		t.Errorf("Expected api url override, got %q", cfg.Client.APIURL)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("Expected two parsed origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestApplyDefaultsFillsEmpty(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Server.Addr == "" || cfg.Client.APIURL == "" {
		t.Error("Expected empty config to be filled with defaults")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	// Point HOME somewhere empty so no config file is found
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LISTO_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Expected default addr, got %q", cfg.Server.Addr)
	}
}
