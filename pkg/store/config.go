package store

import (
	"errors"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath          = "~/.frog.db"
	defaultUndoLimit     = 100
	defaultDragThreshold = 4.0
	logFileName          = "frog.log"
)

// Config locates the data directory and carries the tunables of the core.
type Config interface {
	BasePath() string
	UndoLimit() int
	DragThreshold() float64
	LogFile() string
}

// LoadConfig reads .frog.yaml from $FROG_CONFIG_PATH or the working directory.
// Every key can be overridden with a FROG_ prefixed environment variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("undo_limit", defaultUndoLimit)
	v.SetDefault("drag_threshold", defaultDragThreshold)
	v.SetDefault("log_file", "")
	v.SetConfigName(".frog") // .yaml is implicit
	v.SetEnvPrefix("FROG")
	v.AutomaticEnv()

	if override := os.Getenv("FROG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	logFile, err := homedir.Expand(v.GetString("log_file"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{
		Path:      path,
		Undo:      v.GetInt("undo_limit"),
		Threshold: v.GetFloat64("drag_threshold"),
		Log:       logFile,
	}, nil
}

// NewConfig returns a Config rooted at path with default tunables.
func NewConfig(path string) Config {
	return &fileConfig{Path: path, Undo: defaultUndoLimit, Threshold: defaultDragThreshold}
}

type fileConfig struct {
	Path      string  `json:"path"`
	Undo      int     `json:"undoLimit"`
	Threshold float64 `json:"dragThreshold"`
	Log       string  `json:"logFile"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) UndoLimit() int {
	if f.Undo <= 0 {
		return defaultUndoLimit
	}
	return f.Undo
}

func (f *fileConfig) DragThreshold() float64 {
	if f.Threshold <= 0 {
		return defaultDragThreshold
	}
	return f.Threshold
}

func (f *fileConfig) LogFile() string {
	if f.Log != "" {
		return f.Log
	}
	return filepath.Join(f.Path, logFileName)
}
