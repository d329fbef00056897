package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a batch of vector pairs evaluated together.
type Scenario struct {
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Pair names two operands given as raw components; each must have 2 or 3
// components.
type Pair struct {
	Name string    `json:"name" yaml:"name"`
	A    []float32 `json:"a" yaml:"a"`
	B    []float32 `json:"b" yaml:"b"`
}

// LoadYAML decodes a scenario from r.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	return &s, nil
}

// Load opens path and decodes it with LoadYAML.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}
