// Package config provides configuration management for rulegen.
// It reads a project config file (YAML or TOML), a .env file, environment
// variables and sensible defaults, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/klauern/rulegen/internal/util"
)

// DefaultIDEFolder matches the generator's default dump directory.
const DefaultIDEFolder = ".ai-rules"

// FileNames are the config file names looked up in a project directory, in
// order.
var FileNames = []string{".rulegen.yaml", ".rulegen.yml", ".rulegen.toml"}

// Config represents the complete rulegen configuration.
type Config struct {
	// OutputDir is the project directory generated files are written under.
	OutputDir string `yaml:"output_dir" toml:"output_dir"`

	// Formats limits generation to these formatter ids. Empty means all.
	Formats []string `yaml:"formats,omitempty" toml:"formats,omitempty"`

	// Force overwrites existing files.
	Force bool `yaml:"force" toml:"force"`

	// IDEStyle writes the flat rule dump for multi-rule sources.
	IDEStyle bool `yaml:"ide_style" toml:"ide_style"`

	// IDEFolder names the dump directory.
	IDEFolder string `yaml:"ide_folder" toml:"ide_folder"`

	// Gitignore refreshes the managed .gitignore block after generating.
	Gitignore bool `yaml:"gitignore" toml:"gitignore"`

	// Jobs are run by `generate` when no input is given.
	Jobs []Job `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// path is the file the config was loaded from, if any.
	path string
}

// Job is one source document and where to generate it.
type Job struct {
	// Input is a file path or http(s) URL.
	Input string `yaml:"input" toml:"input"`
	// OutputDir overrides Config.OutputDir for this job.
	OutputDir string `yaml:"output_dir,omitempty" toml:"output_dir,omitempty"`
	// Formats overrides Config.Formats for this job.
	Formats []string `yaml:"formats,omitempty" toml:"formats,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		IDEStyle:  true,
		IDEFolder: DefaultIDEFolder,
	}
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// FindFile returns the first config file present in dir.
func FindFile(dir string) (string, bool) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Load loads configuration for the working directory.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadDir(wd)
}

// LoadDir loads dir/.env and the first config file in dir, merging with
// defaults. Without a config file the defaults with environment overrides are
// returned.
func LoadDir(dir string) (*Config, error) {
	if err := loadDotEnv(dir); err != nil {
		return nil, err
	}

	path, found := FindFile(dir)
	if !found {
		cfg := Default()
		cfg.applyEnvironment()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific path. The format is chosen
// by extension: .toml is TOML, anything else YAML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.path = path
	cfg.resolvePaths(filepath.Dir(path))
	cfg.applyEnvironment()
	return cfg, nil
}

// SaveToPath writes the configuration to path in the format its extension
// selects.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(c); err != nil {
			return err
		}
		data = []byte(sb.String())
	} else {
		out, err := yaml.Marshal(c)
		if err != nil {
			return err
		}
		data = out
	}

	// #nosec G306 - config file is committed with the project
	return os.WriteFile(path, data, 0o644)
}

// Validate reports configuration problems.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.IDEFolder) == "" {
		errs = append(errs, errors.New("ide_folder must not be empty"))
	}
	for i, j := range c.Jobs {
		if strings.TrimSpace(j.Input) == "" {
			errs = append(errs, fmt.Errorf("job %d has no input", i+1))
		}
	}
	return errors.Join(errs...)
}

// JobOutputDir returns the output directory of j, falling back to the
// config's.
func (c *Config) JobOutputDir(j Job) string {
	if j.OutputDir != "" {
		return j.OutputDir
	}
	return c.OutputDir
}

// JobFormats returns the formats of j, falling back to the config's.
func (c *Config) JobFormats(j Job) []string {
	if len(j.Formats) > 0 {
		return j.Formats
	}
	return c.Formats
}

// resolvePaths makes relative paths in the file relative to the file's
// directory rather than the working directory.
func (c *Config) resolvePaths(base string) {
	c.OutputDir = util.ExpandPath(c.OutputDir, base)
	for i := range c.Jobs {
		if c.Jobs[i].Input != "" && !util.IsRemote(c.Jobs[i].Input) {
			c.Jobs[i].Input = util.ExpandPath(c.Jobs[i].Input, base)
		}
		if c.Jobs[i].OutputDir != "" {
			c.Jobs[i].OutputDir = util.ExpandPath(c.Jobs[i].OutputDir, base)
		}
	}
}

// loadDotEnv loads dir/.env without overriding variables already set.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern RULEGEN_<KEY>.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("RULEGEN_OUTPUT_DIR"); v != "" {
		c.OutputDir = util.ExpandPath(v, "")
	}
	if v := os.Getenv("RULEGEN_FORMATS"); v != "" {
		c.Formats = SplitList(v)
	}
	if v := os.Getenv("RULEGEN_FORCE"); v != "" {
		c.Force = parseBool(v)
	}
	if v := os.Getenv("RULEGEN_IDE_STYLE"); v != "" {
		c.IDEStyle = parseBool(v)
	}
	if v := os.Getenv("RULEGEN_IDE_FOLDER"); v != "" {
		c.IDEFolder = v
	}
	if v := os.Getenv("RULEGEN_GITIGNORE"); v != "" {
		c.Gitignore = parseBool(v)
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// SplitList splits a comma-separated list, dropping empty entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
