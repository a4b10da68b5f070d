// Package store persists the task sequence and the opaque presentation
// settings in a diskv key-value directory, and reports external changes to it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/frog/pkg/task"
)

// Persistence loads the task sequence once and saves it after every command.
type Persistence interface {
	Load(ctx context.Context) ([]task.Task, error)
	Save(tasks []task.Task) error
}

// Settings holds presentation values the core round-trips without reading
// them (window position per mode, zoom, ...).
type Settings interface {
	Settings(ctx context.Context) (map[string]string, error)
	SetSetting(key, value string) error
}

// Store is everything the application needs from storage.
type Store interface {
	Persistence
	Settings
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	tasksKey      = "tasks"
	settingPrefix = "setting-"
	settingsDir   = "settings"
	tempDir       = ".tmp"
)

// Load opens the diskv store described by cfg, reading the configuration from
// disk when cfg is nil.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := ensureDir(filepath.Join(basePath, tempDir)); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) ([]task.Task, error) {
	if !p.d.Has(tasksKey) {
		return []task.Task{}, nil
	}
	// Read around the cache: another process may have written since we last
	// looked.
	rc, err := p.d.ReadStream(tasksKey, true)
	if err != nil {
		return nil, fmt.Errorf("store: read tasks: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read tasks: %w", err)
	}
	return Decode(data)
}

func (p *persistence) Save(tasks []task.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return fmt.Errorf("store: encode tasks: %w", err)
	}
	if err := p.d.Write(tasksKey, data); err != nil {
		return fmt.Errorf("store: write tasks: %w", err)
	}
	return nil
}

func (p *persistence) Settings(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for key := range p.d.KeysPrefix(settingPrefix, ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read setting %s: %w", key, err)
		}
		out[strings.TrimPrefix(key, settingPrefix)] = string(val)
	}
	return out, nil
}

func (p *persistence) SetSetting(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("store: invalid setting key %q", key)
	}
	if err := p.d.Write(settingPrefix+key, []byte(value)); err != nil {
		return fmt.Errorf("store: write setting %s: %w", key, err)
	}
	return nil
}

// Encode renders tasks in the on-disk format.
func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return json.MarshalIndent(tasks, "", "  ")
}

// Decode parses the on-disk format. Records written before priorities existed
// get the lowest priority, and the sequence is normalized.
func Decode(data []byte) ([]task.Task, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []task.Task{}, nil
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("store: decode tasks: %w", err)
	}
	return task.Normalize(tasks), nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	if name, ok := strings.CutPrefix(key, settingPrefix); ok {
		return &diskv.PathKey{Path: []string{settingsDir}, FileName: name}
	}
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) > 0 && pathKey.Path[0] == settingsDir {
		return settingPrefix + pathKey.FileName
	}
	return pathKey.FileName
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
