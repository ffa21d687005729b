// Package config loads the optional alna.toml project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// FileName is the name of the project file searched for by FindAndLoad.
const FileName = "alna.toml"

// AST output formats accepted in [output] ast_format.
var astFormats = []string{"text", "json", "dump"}

// Config is the decoded project configuration.
type Config struct {
	Parser    ParserConfig    `toml:"parser"`
	Output    OutputConfig    `toml:"output"`
	Toolchain ToolchainConfig `toml:"toolchain"`
}

// ParserConfig holds the parser options.
type ParserConfig struct {
	Comments  bool `toml:"comments"`   // keep comments in File.Comments
	MaxErrors int  `toml:"max_errors"` // 0 = unlimited
}

// OutputConfig controls how the driver prints results.
type OutputConfig struct {
	ASTFormat string `toml:"ast_format"` // text, json or dump
	Color     bool   `toml:"color"`
}

// ToolchainConfig pins the driver versions a project accepts.
type ToolchainConfig struct {
	Requires string `toml:"requires"` // semver constraint, e.g. ">= 0.1.0"
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			ASTFormat: "text",
		},
	}
}

// FindAndLoad searches for alna.toml from startDir upwards and loads it.
// If no file is found it returns the default configuration and an empty path.
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}
	return config, configPath, nil
}

// FindConfigFile returns the path of the nearest alna.toml in startDir or
// one of its parents, or "" if there is none.
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if fi, err := os.Stat(configPath); err == nil && !fi.IsDir() {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load decodes the file at path on top of the defaults and validates it.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return config, nil
}

// Validate checks value ranges and that the toolchain constraint parses.
func (c *Config) Validate() error {
	if c.Parser.MaxErrors < 0 {
		return fmt.Errorf("parser.max_errors must not be negative, got %d", c.Parser.MaxErrors)
	}
	if !validASTFormat(c.Output.ASTFormat) {
		return fmt.Errorf("output.ast_format must be one of %s, got %q",
			strings.Join(astFormats, ", "), c.Output.ASTFormat)
	}
	if c.Toolchain.Requires != "" {
		if _, err := semver.NewConstraint(c.Toolchain.Requires); err != nil {
			return fmt.Errorf("toolchain.requires: %w", err)
		}
	}
	return nil
}

// CheckVersion reports an error if version does not satisfy
// toolchain.requires. An empty constraint accepts every version.
func (c *Config) CheckVersion(version string) error {
	if c.Toolchain.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Toolchain.Requires)
	if err != nil {
		return fmt.Errorf("toolchain.requires: %w", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("driver version %q: %w", version, err)
	}
	if ok, errs := constraint.Validate(v); !ok {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("driver version %s does not satisfy %q: %s",
			v, c.Toolchain.Requires, strings.Join(msgs, "; "))
	}
	return nil
}

func validASTFormat(f string) bool {
	for _, ok := range astFormats {
		if f == ok {
			return true
		}
	}
	return false
}
