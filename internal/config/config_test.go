package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "STORAGE_BACKEND", "STORAGE_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected default addr: %q", cfg.Server.Addr)
	}
	if cfg.Storage.Backend != StorageFile || cfg.Storage.Path != "data/sessions.json" {
		t.Fatalf("unexpected default storage: %+v", cfg.Storage)
	}
	if cfg.AI.Model != "gemini-1.5-flash-latest" {
		t.Fatalf("unexpected default model: %q", cfg.AI.Model)
	}
	if cfg.AI.Enabled() {
		t.Fatal("AI must be disabled without an API key")
	}
}

func TestLoadServerAddrForms(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:9090")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "90 90")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed PORT")
	}
}

func TestLoadStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != StorageSQLite || cfg.Storage.Path != "data/sessions.db" {
		t.Fatalf("unexpected sqlite storage: %+v", cfg.Storage)
	}

	t.Setenv("STORAGE_BACKEND", "redis")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown storage backend")
	}
}

func TestLoadKnowledgeExtraPhrases(t *testing.T) {
	t.Setenv("KNOWLEDGE_EXTRA_PHRASES", "ibuprofen, blood sugar ,,")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := cfg.Knowledge.ExtraPhrases
	if len(got) != 2 || got[0] != "ibuprofen" || got[1] != "blood sugar" {
		t.Fatalf("unexpected phrases: %v", got)
	}
}
