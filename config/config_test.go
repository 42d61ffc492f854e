package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Database.Name != "data_mart" {
		t.Errorf("db.name = %q, want data_mart", cfg.Database.Name)
	}
	if cfg.Database.Timezone != "America/La_Paz" {
		t.Errorf("db.timezone = %q", cfg.Database.Timezone)
	}
	if cfg.Redis.TTLHours != 12 {
		t.Errorf("redis.ttl_hours = %d, want 12", cfg.Redis.TTLHours)
	}
	if cfg.Upload.MaxSizeMB != 20 {
		t.Errorf("upload.max_size_mb = %d, want 20", cfg.Upload.MaxSizeMB)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DATAMART_SERVER_PORT", "8080")
	t.Setenv("DATAMART_DB_NAME", "mart_test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "mart_test" {
		t.Errorf("db.name = %q, want mart_test", cfg.Database.Name)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 0},
		Database: DatabaseConfig{Name: "data_mart"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 should fail validation")
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, Name: "data_mart",
		User: "postgres", Password: "secret",
		SSLMode: "disable", Timezone: "America/La_Paz",
	}
	want := "host=localhost port=5432 user=postgres password=secret dbname=data_mart sslmode=disable TimeZone=America/La_Paz"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
