package config

import "testing"

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "GO_ENV", "APP_BANNER", "STORE_DRIVER", "DATABASE_URL", "SQLITE_PATH", "MYSQL_DSN"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Port != "5555" {
		t.Errorf("expected port 5555, got %s", cfg.Port)
	}
	if cfg.StoreDriver != DriverMemory {
		t.Errorf("expected memory driver, got %s", cfg.StoreDriver)
	}
	if cfg.Banner != "Flask SQLAlchemy Lab 1" {
		t.Errorf("unexpected banner %q", cfg.Banner)
	}
	if cfg.SQLitePath != "instance/app.db" {
		t.Errorf("unexpected sqlite path %q", cfg.SQLitePath)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestFromEnv_DatabaseURLSelectsPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/quakes")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.StoreDriver != DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.StoreDriver)
	}
}

func TestFromEnv_DriverIsCaseInsensitive(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "SQLite")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.StoreDriver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.StoreDriver)
	}
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORE_DRIVER": "oracle"}},
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}},
		{"mysql without dsn", map[string]string{"STORE_DRIVER": "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
