package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zbiljic/vconfig-go"
)

var (
	// Cached configuration to avoid loading multiple times
	cachedConfig *Config
	// Mutex for thread-safe access to config file
	configMutex = &sync.Mutex{}
)

// Load loads configuration, falling back to defaults when no file
// exists. The result is cached; the program runs once per prompt
// render, so every stat here is on the hot path.
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadOrCreate()
	if err != nil {
		return nil, err
	}

	cachedConfig = config
	return config, nil
}

// loadOrCreate loads an existing config file or returns the defaults.
func loadOrCreate() (*Config, error) {
	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}

	switch version {
	case configVersionV1:
		config, err := vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return config, nil
	default:
		return nil, errUnknownVersion(version)
	}
}

// Save saves configuration to a file
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	// ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	// update the cached config so subsequent loads see saved state
	cachedConfig = config

	return nil
}

// FindFile searches for configuration file in hierarchical order
func FindFile() (string, error) {
	searchPaths := GetSearchPaths()

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths returns the list of paths to search for configuration
// files. No ancestor-directory walk here: the binary runs on every
// prompt render and extra stat calls show up as prompt latency.
func GetSearchPaths() []string {
	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// 1. ./.gitprompt.json (current directory)
	paths = append(paths, filepath.Join(cwd, ".gitprompt.json"))

	// prompts also render in environments without a home directory
	// (cron, containers); skip the home-based paths there
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return paths
	}

	// 2. ~/.config/gitprompt/gitprompt.json (user config)
	configDir := filepath.Join(homeDir, ".config", "gitprompt")
	paths = append(paths, filepath.Join(configDir, "gitprompt.json"))

	// 3. ~/.gitprompt.json (user home fallback)
	paths = append(paths, filepath.Join(homeDir, ".gitprompt.json"))

	return paths
}

// GetPath returns the path where configuration would be loaded from
func GetPath() (string, bool) {
	path, err := FindFile()
	return path, err == nil
}

// GetDefaultPath returns the default path for user configuration, or
// an empty string when no home directory is available.
func GetDefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Prefer ~/.config/gitprompt/gitprompt.json
	configDir := filepath.Join(homeDir, ".config", "gitprompt")
	return filepath.Join(configDir, "gitprompt.json")
}

// ResetCache clears the cached configuration (useful for testing)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
