package scenario

import (
	"embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed classic.yaml
var embedded embed.FS

// validate is the shared validator instance for case-file schemas.
var validate = validator.New()

// Load parses and fully validates a YAML case file.
// Every playable guarantee is checked here: schema tags, clue/suspect
// cross-checks, and the mansion build itself, so callers downstream
// never re-validate.
func Load(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if err := s.crossCheck(); err != nil {
		return nil, err
	}
	if _, err := s.Mansion(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return &s, nil
}

// LoadFile reads path and hands the bytes to Load.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Load(data)
}

// Default returns the embedded classic case: the nine-room mansion and
// its four suspects.
func Default() (*Scenario, error) {
	data, err := embedded.ReadFile("classic.yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario: embedded classic: %w", err)
	}

	return Load(data)
}
