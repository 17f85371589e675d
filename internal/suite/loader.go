package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		switch {
		case c.Want == "" && c.Error == "":
			return nil, fmt.Errorf("case %q needs either want or error", c.ID)
		case c.Want != "" && c.Error != "":
			return nil, fmt.Errorf("case %q sets both want and error", c.ID)
		}
		if c.Error != "" {
			if _, ok := knownKinds[c.Error]; !ok {
				return nil, fmt.Errorf("case %q references unknown error kind %q", c.ID, c.Error)
			}
		}
	}

	return &s, nil
}
