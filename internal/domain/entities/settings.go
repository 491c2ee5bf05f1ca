package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the runtime configuration for a gomoddrift run. Values come
// from an optional YAML file and can be overridden by CLI flags.
type Settings struct {
	ModuleDir  string `yaml:"module_dir"` // root of the Go module to inspect
	GoModCache string `yaml:"gomodcache"` // empty means a throwaway temp dir
	OutputDir  string `yaml:"output_dir"` // where identity reports are written
	GoBinary   string `yaml:"go_binary"`  // the go executable to invoke
	DropUnused bool   `yaml:"drop_unused"`
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		ModuleDir:  ".",
		GoModCache: "",
		OutputDir:  ".",
		GoBinary:   "go",
		DropUnused: true,
	}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// LoadSettings reads and parses a settings file, expanding environment
// variables in path values.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.ModuleDir = expandEnv(settings.ModuleDir)
	settings.GoModCache = expandEnv(settings.GoModCache)
	settings.OutputDir = expandEnv(settings.OutputDir)
	settings.GoBinary = expandEnv(settings.GoBinary)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gomoddrift.yaml",
		".gomoddrift.yml",
		"gomoddrift.yaml",
		"gomoddrift.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required settings values.
func (s *Settings) Validate() error {
	if s.ModuleDir == "" {
		return errors.New("module_dir must not be empty")
	}
	if s.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if s.GoBinary == "" {
		return errors.New("go_binary must not be empty")
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
