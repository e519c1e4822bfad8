package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.TLS.Enabled {
		t.Error("TLS should be disabled by default")
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should be disabled by default")
	}
}

func TestLoadRequiresJWTSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	if _, err := Load(); err == nil {
		t.Error("expected error when JWT_SECRET is empty")
	}

	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when JWT_REFRESH_SECRET is empty")
	}
}

func TestLoadRequiresCertificatesWithTLS(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TLS_ENABLED", "true")

	if _, err := Load(); err == nil {
		t.Error("expected error when TLS is on without certificate paths")
	}

	t.Setenv("TLS_CERT_PATH", "/tmp/cert.pem")
	t.Setenv("TLS_KEY_PATH", "/tmp/key.pem")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.TLS.Enabled {
		t.Error("TLS.Enabled = false, want true")
	}
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "laurus",
		Password: "secret", DBName: "laurus", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=laurus password=secret dbname=laurus sslmode=disable"
	if got := db.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}

func TestLoadParsesAllowedHosts(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_HOSTS", "laurus.dev, api.laurus.dev ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Server.AllowedHosts) != 2 {
		t.Fatalf("AllowedHosts = %v, want 2 entries", cfg.Server.AllowedHosts)
	}
	if cfg.Server.AllowedHosts[0] != "laurus.dev" || cfg.Server.AllowedHosts[1] != "api.laurus.dev" {
		t.Errorf("AllowedHosts = %v", cfg.Server.AllowedHosts)
	}
}
