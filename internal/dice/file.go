package dice

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fairdice/internal/domain"
)

// fileFormat is the on-disk YAML layout of a dice file.
type fileFormat struct {
	Dice []string `yaml:"dice"`
}

// LoadFile reads dice specs from a YAML file. The specs are returned
// unparsed so they can be merged with command-line dice before Parse.
func LoadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: dice file %s does not exist", domain.ErrConfiguration, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dice file: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: dice file %s: %w", domain.ErrConfiguration, path, err)
	}
	return f.Dice, nil
}
