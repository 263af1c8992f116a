package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sub-directories of the data root, one record per file.
const (
	UnitDir   = "unit"
	WeaponDir = "weapon"
	SceneDir  = "battlescene"
)

type Data struct {
	Units   []UnitTemplate
	Weapons []WeaponTemplate
	Scenes  []SceneDef
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return fmt.Errorf("empty document")
	}
	// JSON records are often tab-indented, which YAML rejects.
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(b, out)
	}
	return yaml.Unmarshal(b, out)
}

func isRecordFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadDir decodes every record file in dir in filename order. Files that fail to
// parse are logged and skipped.
func LoadDir[T any](dir string, logger *slog.Logger) ([]T, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read record dir: %w", err)
	}
	var out []T
	for _, e := range entries {
		if e.IsDir() || !isRecordFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		var rec T
		if err := loadYAML(path, &rec); err != nil {
			logger.Warn("skipping record file", "path", path, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func LoadAll(root string, logger *slog.Logger) (*Data, error) {
	units, err := LoadDir[UnitTemplate](filepath.Join(root, UnitDir), logger)
	if err != nil {
		return nil, fmt.Errorf("load unit templates: %w", err)
	}
	weapons, err := LoadDir[WeaponTemplate](filepath.Join(root, WeaponDir), logger)
	if err != nil {
		return nil, fmt.Errorf("load weapon templates: %w", err)
	}
	scenes, err := LoadDir[SceneDef](filepath.Join(root, SceneDir), logger)
	if err != nil {
		return nil, fmt.Errorf("load scenes: %w", err)
	}
	return &Data{Units: units, Weapons: weapons, Scenes: scenes}, nil
}
