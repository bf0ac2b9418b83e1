// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/filtq/filtq/internal/log"
)

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Namespace: optional dot-prefixed keyspace used to prefer namespaced
//     lookups (e.g. "query.source").
//   - Data: raw key/value tree unmarshaled from YAML.
//
// Data is kept as map[string]any so the file can hold arbitrary shapes;
// callers go through the typed getters.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// GetString returns the string value for the given dotted key path. If the
// key is not found and a single defaultValue is provided, the default is
// returned instead of an error.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key
// path, with the same default-value convention as GetString.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, errors.New("value is not a slice")
	}
}

// GetBool returns the boolean value for the given dotted key path, with the
// same default-value convention as GetString.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}
	return b, nil
}

// Load reads the YAML configuration file and populates the global Config.
// A missing file is not fatal to the CLI; callers ignore the error and run
// with defaults.
func Load(namespace string) (Type, error) {
	path, err := File()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, err
	}

	Config = Type{
		Source:    path,
		Namespace: namespace,
		Data:      data,
	}
	return Config, nil
}

// get traverses the configuration tree using a dotted key path. If
// Namespace is set, the namespaced candidate key is attempted first, then
// the unnamespaced key.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, candidate := range candidateKeys {
		var current interface{} = cfg.Data

		found := true
		for _, key := range strings.Split(candidate, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			current, ok = m[key]
			if !ok {
				found = false
				break
			}
		}

		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// File returns the absolute path to the YAML config file. The
// FILTQ_CFG_FILE environment variable, when set, is the full path and must
// exist; otherwise the user config directory is searched for filtq.yaml.
// Both Load and the CLI flag value sources resolve through here, so they
// always read the same file.
func File() (string, error) {
	if cfgPath := os.Getenv("FILTQ_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from FILTQ_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("FILTQ_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at FILTQ_CFG_FILE path: %s", cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "filtq.yaml")
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", errors.New("no config file found in standard locations")
}
