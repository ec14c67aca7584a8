package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// environmentsFile maps short names to backend base URLs, e.g.
//
//	environments:
//	  staging:
//	    base_url: https://api.staging.walliswell.example/api/v1
//	  production:
//	    base_url: https://api.walliswell.example/api/v1
type environmentsFile struct {
	Environments map[string]struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"environments"`
}

// lookupEnvironment resolves a named environment from environments.yaml in
// the dot directory. ok is false when the file or the entry is absent.
func lookupEnvironment(name string) (baseURL string, ok bool, err error) {
	dir, err := Dir()
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "environments.yaml"))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var f environmentsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", false, fmt.Errorf("corrupt environments.yaml: %w", err)
	}

	entry, found := f.Environments[name]
	if !found || entry.BaseURL == "" {
		return "", false, nil
	}
	return entry.BaseURL, true, nil
}
