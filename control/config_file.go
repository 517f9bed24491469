// control/config_file.go
// Author: momentics <momentics@gmail.com>
//
// YAML configuration file loading for ConfigStore.

package control

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile parses a YAML file into a flat key/value map.
func LoadFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("control: read config %s: %w", path, err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("control: parse config %s: %w", path, err)
	}
	return values, nil
}

// LoadFile merges a YAML file into the store, notifying listeners once.
func (cs *ConfigStore) LoadFile(path string) error {
	values, err := LoadFile(path)
	if err != nil {
		return err
	}
	cs.Merge(values)
	return nil
}
