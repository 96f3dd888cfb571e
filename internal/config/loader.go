package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/zbiljic/vconfig-go"
)

// FileNames are the names of a project configuration file, in lookup order.
var FileNames = []string{".jskit.json", "jskit.json"}

var (
	mu sync.Mutex
	// loaded is the configuration of the current process, nil until Load
	// succeeds.
	loaded *loadedConfig
)

type loadedConfig struct {
	config *Config
	// path is empty when no file was found.
	path string
}

// Load finds and loads the configuration once per process. Without a file the
// default configuration is used.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if loaded != nil {
		return loaded.config, nil
	}

	config, path, err := loadCreateMigrate(FindFile)
	if err != nil {
		return nil, err
	}

	loaded = &loadedConfig{config: config, path: path}
	return config, nil
}

// Path returns the file the configuration was loaded from.
func Path() (string, bool) {
	mu.Lock()
	defer mu.Unlock()

	if loaded == nil || loaded.path == "" {
		return "", false
	}
	return loaded.path, true
}

// Save validates config and writes it to filename, creating parent
// directories as needed.
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	if err := config.Validate(); err != nil {
		return errInvalidConfig(filename, err)
	}

	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	loaded = &loadedConfig{config: config, path: filename}

	return nil
}

// FindFile returns the first existing path of GetSearchPaths.
func FindFile() (string, error) {
	for _, path := range GetSearchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths returns the candidate configuration files. The working
// directory and its parents are searched up to the repository root, the
// first directory holding .git, or up to the home directory. The user
// configuration files come last.
func GetSearchPaths() []string {
	home, _ := os.UserHomeDir()

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	var paths []string
	for {
		for _, name := range FileNames {
			paths = append(paths, filepath.Join(dir, name))
		}

		if isRepositoryRoot(dir) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir || parent == home {
			break
		}
		dir = parent
	}

	if home != "" {
		paths = append(paths, GetDefaultPath(), filepath.Join(home, ".jskit.json"))
	}

	return paths
}

func isRepositoryRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// GetDefaultPath returns the path of the user configuration file.
func GetDefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "jskit", "jskit.json")
}

// ResetCache forgets the loaded configuration.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()

	loaded = nil
}
