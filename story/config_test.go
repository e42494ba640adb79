package story

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
model: llama3:8b
base_url: http://ollama.internal:11434
temperature: 0.3
max_tokens: 2048
`

	dir := t.TempDir()
	path := filepath.Join(dir, "storygen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Model != "llama3:8b" {
		t.Errorf("model: got %q, want %q", cfg.Model, "llama3:8b")
	}
	if cfg.BaseURL != "http://ollama.internal:11434" {
		t.Errorf("base_url: got %q, want %q", cfg.BaseURL, "http://ollama.internal:11434")
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("temperature: got %v, want 0.3", cfg.Temperature)
	}
	if cfg.MaxTokens != 2048 {
		t.Errorf("max_tokens: got %d, want 2048", cfg.MaxTokens)
	}
	// Unset fields still get defaults
	if cfg.TimeoutSeconds != 300 {
		t.Errorf("timeout_seconds: got %d, want 300", cfg.TimeoutSeconds)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "gemma:2b" {
		t.Errorf("model: got %q, want %q", cfg.Model, "gemma:2b")
	}
	if cfg.BaseURL != "http://localhost:11434" {
		t.Errorf("base_url: got %q, want %q", cfg.BaseURL, "http://localhost:11434")
	}
	if cfg.Temperature != 0.8 {
		t.Errorf("temperature: got %v, want 0.8", cfg.Temperature)
	}
}
