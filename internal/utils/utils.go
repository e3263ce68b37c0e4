package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const configTemplate = `# Required. API login and key, found in the User Settings of your openload account
login = "{{OPENLOAD_LOGIN}}"
key = "{{OPENLOAD_KEY}}"

# Optional API host, default "api.openload.co"
host = "api.openload.co"

# Optional API version, default "1"
api_version = "1"

# Optional HTTP timeout in secs, default 30
timeout = 30

# Optional log level, default "info"
loglevel = "info"
`

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RenderConfig fills the config template with the given credentials
func RenderConfig(login, key string) string {
	config := strings.Replace(configTemplate, "{{OPENLOAD_LOGIN}}", escapeTOML(login), 1)
	return strings.Replace(config, "{{OPENLOAD_KEY}}", escapeTOML(key), 1)
}

// GenerateConfig writes a configuration file holding the given credentials.
// An existing file is kept as <configPath>.bak.
func GenerateConfig(out io.Writer, configPath, login, key string) error {
	if login == "" || key == "" {
		return fmt.Errorf("login and key are required")
	}

	fmt.Fprintf(out, "Generating config %s\n", configPath)

	config := RenderConfig(login, key)

	// Check if config file already exists and back it up
	if _, err := os.Stat(configPath); err == nil {
		backupPath := configPath + ".bak"
		fmt.Fprintf(out, "Backing up config %s\n", configPath)
		if err := os.Rename(configPath, backupPath); err != nil {
			return fmt.Errorf("failed to backup config: %w", err)
		}
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// The file holds credentials
	fmt.Fprintf(out, "Writing %s\n", configPath)
	if err := os.WriteFile(configPath, []byte(config), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// PrintJSON writes v to out as indented JSON
func PrintJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func escapeTOML(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
