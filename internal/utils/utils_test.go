package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestConfigTemplateContent(t *testing.T) {
	requiredKeys := []string{
		"login",
		"key",
		"host",
		"api_version",
		"timeout",
		"loglevel",
	}

	for _, key := range requiredKeys {
		if !strings.Contains(configTemplate, key+" = ") {
			t.Errorf("configTemplate missing required key: %s", key)
		}
	}
}

func TestConfigTemplatePlaceholders(t *testing.T) {
	for _, placeholder := range []string{"{{OPENLOAD_LOGIN}}", "{{OPENLOAD_KEY}}"} {
		if !strings.Contains(configTemplate, placeholder) {
			t.Errorf("configTemplate missing %s placeholder", placeholder)
		}
	}
}

func TestConfigTemplateComments(t *testing.T) {
	for _, comment := range []string{"# Required", "# Optional"} {
		if !strings.Contains(configTemplate, comment) {
			t.Errorf("configTemplate missing important comment: %s", comment)
		}
	}
}

func TestRenderConfigIsValidTOML(t *testing.T) {
	content := RenderConfig(`we"ird\login`, "k3y")

	var decoded struct {
		Login      string `toml:"login"`
		Key        string `toml:"key"`
		Host       string `toml:"host"`
		APIVersion string `toml:"api_version"`
		Timeout    int    `toml:"timeout"`
		Loglevel   string `toml:"loglevel"`
	}
	if _, err := toml.Decode(content, &decoded); err != nil {
		t.Fatalf("rendered config is not valid TOML: %v", err)
	}
	if decoded.Login != `we"ird\login` {
		t.Errorf("expected login to round-trip, got %q", decoded.Login)
	}
	if decoded.Key != "k3y" {
		t.Errorf("expected key 'k3y', got %q", decoded.Key)
	}
	if decoded.Host != "api.openload.co" || decoded.APIVersion != "1" || decoded.Timeout != 30 || decoded.Loglevel != "info" {
		t.Errorf("unexpected defaults: %+v", decoded)
	}
}

func TestGenerateConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "nested", "config.toml")

	var out bytes.Buffer
	if err := GenerateConfig(&out, configPath, "login", "key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(content), `login = "login"`) {
		t.Error("config should contain the login")
	}
	if strings.Contains(string(content), "{{") {
		t.Error("config should not contain placeholders")
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("failed to stat config: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("expected permissions 0600, got %o", mode)
	}
	if !strings.Contains(out.String(), "Writing "+configPath) {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestGenerateConfigBackup(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	originalContent := "original config content"
	if err := os.WriteFile(configPath, []byte(originalContent), 0644); err != nil {
		t.Fatalf("failed to write original config: %v", err)
	}

	var out bytes.Buffer
	if err := GenerateConfig(&out, configPath, "login", "key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backupContent, err := os.ReadFile(configPath + ".bak")
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(backupContent) != originalContent {
		t.Errorf("backup content mismatch: expected '%s', got '%s'", originalContent, string(backupContent))
	}
	if !strings.Contains(out.String(), "Backing up config") {
		t.Errorf("expected backup notice, got: %s", out.String())
	}
}

func TestGenerateConfigRequiresCredentials(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	if err := GenerateConfig(&bytes.Buffer{}, configPath, "", "key"); err == nil {
		t.Error("expected error for empty login")
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("no file should be written without credentials")
	}
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	err := PrintJSON(&out, map[string]any{"folders": []string{}, "files": []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, `"files": [`) || !strings.Contains(got, `"folders": []`) {
		t.Errorf("unexpected output: %s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestPrintJSONUnsupportedValue(t *testing.T) {
	if err := PrintJSON(&bytes.Buffer{}, make(chan int)); err == nil {
		t.Error("expected error for unsupported value")
	}
}
