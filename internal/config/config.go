// Package config reads pbxpatch.yaml and the PBXPATCH_* environment
// overrides. The core pbxproj package never reads configuration; the
// command line resolves it once and passes plain values down.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig wraps every error caused by bad configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ConfigFileName = "pbxpatch.yaml"
	EnvFileName    = ".env"

	EnvProjectFile = "PBXPATCH_PROJECT_FILE"
	EnvUseNetwork  = "PBXPATCH_USE_NETWORK"
	EnvLogLevel    = "PBXPATCH_LOG_LEVEL"
)

// LayoutConfig overrides the directories created by `setup directories`.
// Paths are relative to the source directory.
type LayoutConfig struct {
	View     string `yaml:"view,omitempty"`
	Layouts  string `yaml:"layouts,omitempty"`
	Styles   string `yaml:"styles,omitempty"`
	Bindings string `yaml:"bindings,omitempty"`
	Core     string `yaml:"core,omitempty"`
	UI       string `yaml:"ui,omitempty"`
	Base     string `yaml:"base,omitempty"`
}

type PackageConfig struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	MinimumVersion string `yaml:"minimum_version"`
}

type BuildPhaseConfig struct {
	Name        string   `yaml:"name"`
	Script      string   `yaml:"script"`
	ShellPath   string   `yaml:"shell_path,omitempty"`
	InputPaths  []string `yaml:"input_paths,omitempty"`
	OutputPaths []string `yaml:"output_paths,omitempty"`
}

type Config struct {
	ProjectFile     string             `yaml:"project_file,omitempty"`
	SourceDirectory string             `yaml:"source_directory,omitempty"`
	Target          string             `yaml:"target,omitempty"`
	UseNetwork      bool               `yaml:"use_network"`
	LogLevel        string             `yaml:"log_level,omitempty"`
	Layout          LayoutConfig       `yaml:"layout,omitempty"`
	Packages        []PackageConfig    `yaml:"packages,omitempty"`
	BuildPhases     []BuildPhaseConfig `yaml:"build_phases,omitempty"`
}

// Default is the configuration used when no pbxpatch.yaml exists.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads pbxpatch.yaml from dir.
func Load(fs afero.Fs, dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for i, p := range c.Packages {
		if p.Name == "" || p.URL == "" || p.MinimumVersion == "" {
			return fmt.Errorf("%w: packages[%d] needs name, url and minimum_version", ErrInvalidConfig, i)
		}
	}
	for i, b := range c.BuildPhases {
		if b.Name == "" {
			return fmt.Errorf("%w: build_phases[%d] needs a name", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Resolve loads the config file from dir, falling back to Default when there
// is none, then applies the environment overrides. Variables from dir/.env
// fill in what the process environment does not set.
func Resolve(fs afero.Fs, dir string) (*Config, error) {
	cfg, err := Load(fs, dir)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(fs, filepath.Join(dir, EnvFileName))
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PBXPATCH_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvProjectFile); ok && v != "" {
		c.ProjectFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvUseNetwork); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvUseNetwork, v)
		}
		c.UseNetwork = b
	}
	return nil
}

func readEnvFile(fs afero.Fs, path string) (map[string]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return env, nil
}
