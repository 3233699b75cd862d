package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDirectory overrides built-in prompts with .json files from
// baseDir/prompts. Each file holds one Template. Missing directory is an
// error the caller may treat as "use the defaults".
func LoadFromDirectory(baseDir string) error {
	dir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", dir)
	}

	registry := Get()
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read prompt file %s: %w", path, err)
		}

		var pt Template
		if err := json.Unmarshal(data, &pt); err != nil {
			return fmt.Errorf("failed to parse prompt file %s: %w", path, err)
		}
		return registry.Register(&pt)
	})
}
