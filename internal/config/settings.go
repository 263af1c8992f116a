package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SettingsFile is the optional settings file looked up in the settings directory.
const SettingsFile = "srpg.yaml"

type Settings struct {
	LogLevel         string
	DataDir          string
	Scene            int
	Format           string
	Color            bool
	Target           int // unit index; negative selects the first player unit
	RelationToTarget bool
	Show             DisplayFlags
}

type DisplayFlags struct {
	MoveRange       bool
	AttackInPlace   bool
	AttackAlongMove bool
	EnemyThreat     bool
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("dataDir", "./data")
	viper.SetDefault("scene", 0)
	viper.SetDefault("format", "text")
	viper.SetDefault("color", true)
	viper.SetDefault("target", -1)
	viper.SetDefault("relationToTarget", false)

	viper.SetDefault("show.moveRange", false)
	viper.SetDefault("show.attackInPlace", false)
	viper.SetDefault("show.attackAlongMove", true)
	viper.SetDefault("show.enemyThreat", false)
}

// LoadSettings installs defaults and merges srpg.yaml from dir when present.
// An empty dir skips the file lookup.
func LoadSettings(dir string) (*Settings, error) {
	setDefaults()
	if dir == "" {
		return CurrentSettings(), nil
	}
	path := filepath.Join(dir, SettingsFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return CurrentSettings(), nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}
	return CurrentSettings(), nil
}

func CurrentSettings() *Settings {
	return &Settings{
		LogLevel:         viper.GetString("logLevel"),
		DataDir:          viper.GetString("dataDir"),
		Scene:            viper.GetInt("scene"),
		Format:           viper.GetString("format"),
		Color:            viper.GetBool("color"),
		Target:           viper.GetInt("target"),
		RelationToTarget: viper.GetBool("relationToTarget"),
		Show: DisplayFlags{
			MoveRange:       viper.GetBool("show.moveRange"),
			AttackInPlace:   viper.GetBool("show.attackInPlace"),
			AttackAlongMove: viper.GetBool("show.attackAlongMove"),
			EnemyThreat:     viper.GetBool("show.enemyThreat"),
		},
	}
}

// Override sets a key from a command-line flag, taking precedence over the file.
func Override(key string, value any) { viper.Set(key, value) }
