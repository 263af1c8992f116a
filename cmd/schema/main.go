// Command schema writes JSON Schemas for the designer-authored records under data/.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"srpg/internal/config"
	"srpg/internal/logging"
)

type schemaDoc struct {
	file  string
	title string
	dir   string
	value any
}

var docs = []schemaDoc{
	{"unit.schema.json", "Unit Template", config.UnitDir, new(config.UnitTemplate)},
	{"weapon.schema.json", "Weapon Template", config.WeaponDir, new(config.WeaponTemplate)},
	{"battlescene.schema.json", "Battle Scene", config.SceneDir, new(config.SceneDef)},
}

func main() {
	outDir := flag.String("out", "", "directory to write the JSON schemas into")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	lm := logging.NewManager()
	lm.Setup(os.Stderr, *level)
	if *outDir == "" {
		fmt.Fprintln(os.Stderr, "schema: -out is required")
		os.Exit(2)
	}
	if _, err := writeAll(*outDir, lm.Logger()); err != nil {
		fmt.Fprintln(os.Stderr, "schema:", err)
		os.Exit(1)
	}
}

// writeAll renders every record schema into dir and returns the written paths.
func writeAll(dir string, logger *slog.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create schema directory: %w", err)
	}
	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		path := filepath.Join(dir, d.file)
		if err := writeSchema(path, buildSchema(d)); err != nil {
			return paths, fmt.Errorf("%s: %w", d.file, err)
		}
		logger.Info("schema written", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// buildSchema reflects a record type. Unknown keys stay allowed so older data
// files with extra fields still validate.
func buildSchema(d schemaDoc) *jsonschema.Schema {
	r := jsonschema.Reflector{AllowAdditionalProperties: true}
	s := r.Reflect(d.value)
	s.Title = d.title
	s.Description = fmt.Sprintf("One record per file in data/%s (.json, .yaml or .yml)", d.dir)
	return s
}

// writeSchema replaces path through a temp file in the same directory.
func writeSchema(path string, s *jsonschema.Schema) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
