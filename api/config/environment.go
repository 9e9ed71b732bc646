package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadFromEnvironment loads the configuration from the process environment
// overlaid on the nearest .env file.
func LoadFromEnvironment(opts ...Option) (*ToolConfig, error) {
	envVars, err := Environment()
	if err != nil {
		return nil, err
	}
	return Load(envVars, opts...)
}

// Environment snapshots the process environment on top of the nearest .env
// file found from the working directory upwards. Process variables win; the
// .env file is read but never exported into the process.
func Environment() (map[string]string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return environmentFrom(currentDir, os.Environ())
}

func environmentFrom(dir string, processEnv []string) (map[string]string, error) {
	envVars := map[string]string{}
	if envPath, ok := findDotEnv(dir); ok {
		fileVars, err := godotenv.Read(envPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
		for k, v := range fileVars {
			envVars[k] = v
		}
	}
	for _, kv := range processEnv {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		envVars[k] = v
	}
	return envVars, nil
}

// findDotEnv walks from dir up to the filesystem root.
func findDotEnv(dir string) (string, bool) {
	for {
		envPath := filepath.Join(dir, ".env")
		if fi, err := os.Stat(envPath); err == nil && !fi.IsDir() {
			return envPath, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
