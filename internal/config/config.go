// Package config resolves settings from defaults, an optional .todo.yaml,
// TODO_* environment variables and command line flags, in that order.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todolist/internal/store"
)

const (
	KeyBackend = "backend"
	KeyDir     = "dir"
	KeyKey     = "key"
	KeyTheme   = "theme"
	KeyNoColor = "no-color"

	DefaultDir = "~/.todo"
)

type Config struct {
	Backend string
	Dir     string
	Key     string
	Theme   string
	NoColor bool
}

// StoreOptions maps the config onto store.Open.
func (c Config) StoreOptions() store.Options {
	return store.Options{Backend: c.Backend, Dir: c.Dir, Key: c.Key}
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBackend, store.BackendDiskv)
	v.SetDefault(KeyDir, DefaultDir)
	v.SetDefault(KeyKey, store.DefaultKey)
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyNoColor, false)

	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()
	// no-color -> TODO_NO_COLOR
	_ = v.BindEnv(KeyNoColor, "TODO_NO_COLOR")

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")
	return v
}

// Load reads the config file (if any) and resolves the final values.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	dir, err := homedir.Expand(v.GetString(KeyDir))
	if err != nil {
		return Config{}, fmt.Errorf("expand dir: %w", err)
	}
	return Config{
		Backend: v.GetString(KeyBackend),
		Dir:     dir,
		Key:     v.GetString(KeyKey),
		Theme:   v.GetString(KeyTheme),
		NoColor: v.GetBool(KeyNoColor),
	}, nil
}
