// Package config resolves where the hike log keeps its data and how it logs.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "MHIKE"
	appDir    = "mhike"
	dbFile    = "mhike.db"
)

// Config is the resolved runtime configuration.
type Config struct {
	DataDir   string `mapstructure:"dir"`
	DBPath    string `mapstructure:"db_path"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads MHIKE_* variables, after merging a .env file from the working
// directory when one exists. Variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("dir", "")
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	var cfg Config
	_ = v.Unmarshal(&cfg)

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, dbFile)
	}
	return cfg
}

// GetDataDir resolves the base directory for the hike log. MHIKE_DIR wins,
// then XDG_DATA_HOME, then ~/.local/share.
func GetDataDir() string {
	return Load().DataDir
}

// GetDBPath returns the path to the SQLite database file.
func GetDBPath() string {
	return Load().DBPath
}

func defaultDataDir() string {
	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appDir)
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, appDir)
}
