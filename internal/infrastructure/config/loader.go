package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither JSON nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Motion *MotionConfig
	Stage  *StageConfig
}

// Loader loads configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadMotion loads motion.json (or motion.yaml / motion.yml) over the defaults
func (l *Loader) LoadMotion() (*MotionConfig, error) {
	name, err := l.find("motion")
	if err != nil {
		return nil, err
	}
	return l.LoadMotionFile(name)
}

// LoadMotionFile loads a motion config from a path inside the loader's filesystem
func (l *Loader) LoadMotionFile(name string) (*MotionConfig, error) {
	cfg := DefaultMotionConfig()
	if err := l.decode(name, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Motion.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

// LoadStage loads a stage file from stages/
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	file, err := l.find("stages/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := l.decode(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the motion config and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	motion, err := l.LoadMotion()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Motion: motion,
		Stage:  stageCfg,
	}, nil
}

// find returns the first existing file for stem with a supported extension
func (l *Loader) find(stem string) (string, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		if _, err := fs.Stat(l.fsys, stem+ext); err == nil {
			return stem + ext, nil
		}
	}
	return "", fmt.Errorf("failed to read %s: %w", stem, fs.ErrNotExist)
}

func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
