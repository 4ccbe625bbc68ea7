// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("NEWS_DB_PATH", "/tmp/news.db")
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/news.db" {
		t.Errorf("expected db path from env, got %q", cfg.DatabasePath)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("expected gemini key from env, got %q", cfg.GeminiAPIKey)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_DatabasePathRequired(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when database path missing")
	}
}

func TestParseFlags_GeminiKeyOptional(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "test.db"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("expected empty gemini key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
}
