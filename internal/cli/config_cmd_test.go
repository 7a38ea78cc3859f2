package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/contrast/internal/config"
)

func overrideConfigDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalFunc := configDirFunc
	configDirFunc = func() string {
		return tempDir
	}
	t.Cleanup(func() {
		configDirFunc = originalFunc
	})
	return tempDir
}

func TestConfigInitCreatesFile(t *testing.T) {
	tempDir := overrideConfigDir(t)

	out, _, err := executeCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	if !strings.Contains(out, configPath) {
		t.Errorf("expected output to mention %s, got: %s", configPath, out)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "Contrast Configuration File") {
		t.Error("config file doesn't contain expected header")
	}
	if !strings.Contains(string(content), "large_aa: 3.0") {
		t.Error("config file doesn't contain expected default")
	}
}

func TestConfigInitExistingNoForce(t *testing.T) {
	tempDir := overrideConfigDir(t)
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}

	_, _, err := executeCommand(t, "config", "init")
	if err == nil {
		t.Fatal("expected error for existing config")
	}

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %T", err)
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("expected error to mention %s, got: %v", configPath, err)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "# existing" {
		t.Error("existing config was overwritten")
	}
}

func TestConfigInitForce(t *testing.T) {
	tempDir := overrideConfigDir(t)
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}

	if _, _, err := executeCommand(t, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}

	content, _ := os.ReadFile(configPath)
	if !strings.Contains(string(content), "Contrast Configuration File") {
		t.Error("config was not overwritten")
	}
}

func TestConfigInitThenLoad(t *testing.T) {
	tempDir := overrideConfigDir(t)
	if _, _, err := executeCommand(t, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(tempDir, "config.yaml"))
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Thresholds.AAA != 7.0 {
		t.Errorf("expected aaa 7.0, got %v", cfg.Thresholds.AAA)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("CONTRAST_SUGGEST_TARGET", "7")

	out, _, err := executeCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var cfg config.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config show output is not JSON: %v", err)
	}
	if cfg.Suggest.Target != 7 {
		t.Errorf("expected suggest target 7 from env, got %v", cfg.Suggest.Target)
	}
	if cfg.Output.Theme != "default" {
		t.Errorf("expected default theme, got %q", cfg.Output.Theme)
	}
}

func TestConfigInitExplicitPath(t *testing.T) {
	overrideConfigDir(t)
	configPath := filepath.Join(t.TempDir(), "nested", "fresh.yaml")

	out, _, err := executeCommand(t, "--config", configPath, "config", "init")
	if err != nil {
		t.Fatalf("config init --config failed: %v", err)
	}
	if !strings.Contains(out, configPath) {
		t.Errorf("expected output to mention %s, got: %s", configPath, out)
	}

	if _, err := config.Load(configPath); err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
}

func TestConfigInitForceReplacesInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("thresholds:\n  aa: 0.2\n"), 0o644); err != nil {
		t.Fatalf("failed to write invalid config: %v", err)
	}

	if _, _, err := executeCommand(t, "--config", configPath, "check", "#000000", "#ffffff"); err == nil {
		t.Fatal("expected the invalid config to be rejected by other commands")
	}

	if _, _, err := executeCommand(t, "--config", configPath, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force over an invalid config failed: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("replaced config does not load: %v", err)
	}
	if cfg.Thresholds.AA != 4.5 {
		t.Errorf("expected aa 4.5 after reset, got %v", cfg.Thresholds.AA)
	}
}

func TestConfigInitInvalidConfigWithoutForce(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  color: sometimes\n"), 0o644); err != nil {
		t.Fatalf("failed to write invalid config: %v", err)
	}

	_, _, err := executeCommand(t, "--config", configPath, "config", "init")
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError about the existing file, got %v", err)
	}
	if !strings.Contains(inputErr.Hint, "--force") {
		t.Errorf("expected a --force hint, got %q", inputErr.Hint)
	}
}
