package database

import (
	"strings"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"} {
		t.Setenv(key, "")
	}
	t.Setenv("DB_DRIVER", "memory")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if cfg.Persistent() {
		t.Error("memory driver should not be persistent")
	}
}

func TestNewConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestConfig_DSN(t *testing.T) {
	sqliteCfg := &Config{Driver: DriverSQLite, Path: "data/theark.db"}
	if got := sqliteCfg.DSN(); got != "data/theark.db" {
		t.Errorf("sqlite DSN = %q", got)
	}
	if got := sqliteCfg.MigrationURL(); got != "sqlite3://data/theark.db" {
		t.Errorf("sqlite migration URL = %q", got)
	}

	pgCfg := &Config{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "ark",
		Password: "p@ss word",
		DBName:   "ledger",
		SSLMode:  "disable",
	}
	if got := pgCfg.DSN(); !strings.Contains(got, "host=db") || !strings.Contains(got, "dbname=ledger") {
		t.Errorf("postgres DSN = %q", got)
	}
	want := "postgres://ark:p%40ss%20word@db:5432/ledger?sslmode=disable"
	if got := pgCfg.MigrationURL(); got != want {
		t.Errorf("postgres migration URL = %q, want %q", got, want)
	}
	if !pgCfg.Persistent() {
		t.Error("postgres should be persistent")
	}
}
