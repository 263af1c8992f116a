package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"

	"srpg/internal/combat"
	"srpg/internal/config"
	"srpg/internal/logging"
	"srpg/internal/render"
)

// flagKeys maps command-line flags onto settings keys so a flag given explicitly
// wins over srpg.yaml.
var flagKeys = map[string]string{
	"data":      "dataDir",
	"scene":     "scene",
	"format":    "format",
	"color":     "color",
	"target":    "target",
	"relative":  "relationToTarget",
	"move":      "show.moveRange",
	"attack":    "show.attackInPlace",
	"reach":     "show.attackAlongMove",
	"threat":    "show.enemyThreat",
	"log-level": "logLevel",
}

func main() {
	if err := run(os.Args[1:], colorable.NewColorable(os.Stdout), os.Stderr, render.IsTerminal(os.Stdout)); err != nil {
		fmt.Fprintln(os.Stderr, "srpg:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, tty bool) error {
	fs := flag.NewFlagSet("srpg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	settingsDir := fs.String("settings", ".", "directory holding srpg.yaml (empty to skip)")
	fs.String("data", "./data", "data root with unit/, weapon/ and battlescene/")
	fs.Int("scene", 0, "scene index in filename order")
	fs.String("format", "text", "output format: text or json")
	fs.Bool("color", true, "colour output when stdout is a terminal")
	fs.Int("target", -1, "target unit index (default: first player unit)")
	fs.Bool("relative", false, "label units relative to the target")
	fs.Bool("move", false, "show the target's move range")
	fs.Bool("attack", false, "show the target's attack range from its current tile")
	fs.Bool("reach", true, "show the target's attack range along its move range")
	fs.Bool("threat", false, "show every enemy's attack range")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := config.LoadSettings(*settingsDir); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			config.Override(key, f.Value.(flag.Getter).Get())
		}
	})
	st := config.CurrentSettings()

	lm := logging.NewManager()
	lm.Setup(stderr, st.LogLevel)
	logger := lm.Logger()

	data, err := config.LoadAll(st.DataDir, logger)
	if err != nil {
		return err
	}
	if st.Scene < 0 || st.Scene >= len(data.Scenes) {
		return fmt.Errorf("scene index %d out of range (%d scenes in %s)", st.Scene, len(data.Scenes), st.DataDir)
	}
	catalog := combat.NewCatalog(data.Units, data.Weapons)
	scene, err := combat.NewScene(data.Scenes[st.Scene], catalog, combat.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("scene loaded", "scene", scene.ID, "units", len(scene.Units()))

	opts := combat.OverlayOptions{
		RelationToTarget:    st.RelationToTarget,
		ShowMoveRange:       st.Show.MoveRange,
		ShowAttackInPlace:   st.Show.AttackInPlace,
		ShowAttackAlongMove: st.Show.AttackAlongMove,
		ShowEnemyThreat:     st.Show.EnemyThreat,
	}
	if st.Target >= 0 {
		units := scene.Units()
		if st.Target >= len(units) {
			return fmt.Errorf("target index %d out of range (%d units)", st.Target, len(units))
		}
		opts.Target = units[st.Target]
	}

	var r render.Renderer
	switch st.Format {
	case "text":
		r = &render.Text{Out: stdout, Color: st.Color && tty}
	case "json":
		r = &render.JSON{Out: stdout}
	default:
		return fmt.Errorf("unsupported format %q (supported: text, json)", st.Format)
	}
	return r.Render(scene.Overlay(opts))
}
