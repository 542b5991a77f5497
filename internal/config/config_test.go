package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  local:
    path: /tmp/inbox
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.Backend != "local" {
		t.Errorf("expected local backend default, got %q", cfg.Storage.Backend)
	}
	if cfg.Cache.Backend != "sqlite" || cfg.Cache.Path == "" {
		t.Errorf("expected sqlite cache default with a path, got %+v", cfg.Cache)
	}
	if cfg.Classifier.Model != "gpt-4o-mini" {
		t.Errorf("expected default model, got %q", cfg.Classifier.Model)
	}
	if cfg.Classifier.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout default, got %v", cfg.Classifier.Timeout)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("ORDINA_TEST_KEY", "sk-secret")
	path := writeConfig(t, `
storage:
  local:
    path: /tmp/inbox
classifier:
  api_key: ${ORDINA_TEST_KEY}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Classifier.APIKey != "sk-secret" {
		t.Errorf("expected env expansion, got %q", cfg.Classifier.APIKey)
	}
}

func TestLoad_ParsesFolderRules(t *testing.T) {
	path := writeConfig(t, `
storage:
  local:
    path: /tmp/inbox
folders:
  Invoices:
    description: Billing documents
    include: [invoice, fattura]
    exclude: [draft]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rule, ok := cfg.Folders["Invoices"]
	if !ok {
		t.Fatal("expected an Invoices rule")
	}
	if rule.Description != "Billing documents" {
		t.Errorf("unexpected description: %q", rule.Description)
	}
	if len(rule.Include) != 2 || len(rule.Exclude) != 1 {
		t.Errorf("unexpected keywords: %+v", rule)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: ftp
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation to reject an unknown backend")
	}
}

func TestLoad_LocalRequiresPath(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: local
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation to require storage.local.path")
	}
}

func TestLoad_RedisRequiresAddr(t *testing.T) {
	path := writeConfig(t, `
storage:
  local:
    path: /tmp/inbox
cache:
  backend: redis
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation to require cache.redis.addr")
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("ORDINA_CONFIG", "/etc/ordina.yaml")
	if got := DefaultPath(); got != "/etc/ordina.yaml" {
		t.Errorf("expected env override, got %q", got)
	}
}
