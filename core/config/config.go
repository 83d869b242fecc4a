package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tristendillon/pydeps/core/logger"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "pydeps.yaml"

type Config struct {
	Source     string     `yaml:"source"`
	Output     string     `yaml:"output"`
	Entry      string     `yaml:"entry"`
	Exclude    []string   `yaml:"exclude"`
	Workers    int        `yaml:"workers"`
	EntryNames []string   `yaml:"entry_names"`
	Outputs    Outputs    `yaml:"outputs"`
	Classifier Classifier `yaml:"classifier"`
	Parser     Parser     `yaml:"parser"`
	Cache      Cache      `yaml:"cache"`
	Watch      Watch      `yaml:"watch"`
}

type Outputs struct {
	Map     string `yaml:"map"`
	Unused  string `yaml:"unused"`
	Systems string `yaml:"systems"`
}

// Classifier holds names appended to the bundled external-module tables.
type Classifier struct {
	Stdlib     []string `yaml:"stdlib,omitempty"`
	ThirdParty []string `yaml:"third_party,omitempty"`
}

type Parser struct {
	MaxFileSize int64 `yaml:"max_file_size"`
}

type Cache struct {
	MaxEntries int `yaml:"max_entries"`
	// TTL expires parse results in long watch sessions. Zero keeps them
	// until the file content changes.
	TTL time.Duration `yaml:"ttl,omitempty"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

func Default() *Config {
	return &Config{
		Source:  ".",
		Output:  ".",
		Entry:   "main.py",
		Workers: 1,
		// Only names that are never importable project packages. Anything
		// else (build, dist, env) is left to pydeps.yaml.
		Exclude: []string{
			".git", ".hg", ".svn", "__pycache__", ".venv", "venv",
			".tox", ".mypy_cache", ".pytest_cache", "node_modules",
		},
		EntryNames: []string{"main.py", "__main__.py", "app.py", "run.py", "server.py"},
		Outputs: Outputs{
			Map:     "dependency_map.json",
			Unused:  "unused_files.txt",
			Systems: "systems.json",
		},
		Parser: Parser{MaxFileSize: 10 * 1024 * 1024},
		Cache:  Cache{MaxEntries: 4096},
		Watch:  Watch{Debounce: 500 * time.Millisecond},
	}
}

// Load reads the config at path. An empty path means pydeps.yaml in the
// working directory. A missing file yields Default().
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		path = filepath.Join(wd, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			logger.Debug("No config file found, using default config")
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", *cfg)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Outputs.Map == "" {
		return errors.New("outputs.map must not be empty")
	}
	if c.Parser.MaxFileSize < 0 {
		return fmt.Errorf("parser.max_file_size must not be negative, got %d", c.Parser.MaxFileSize)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// Marshal renders the config as YAML, used by `pydeps init`.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
