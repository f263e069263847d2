package genprop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params controls trial execution behavior.
type Params struct {
	// Trials is the number of generate-and-check cycles to run.
	Trials int `yaml:"trials"`
	// Seed reseeds the default random source before the run when non-zero,
	// making failing runs reproducible. 0 leaves the source untouched.
	Seed int64 `yaml:"seed"`
	// MaxShrinkSteps bounds the shrink loop (0 = unbounded).
	MaxShrinkSteps int `yaml:"max_shrink_steps"`
}

// DefaultParams returns Params matching Check's behavior.
func DefaultParams() Params {
	return Params{Trials: DefaultTrials}
}

// LoadParams reads and parses a YAML parameters file. Fields absent from
// the file keep their DefaultParams values.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading params file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing params file: %w", err)
	}
	return p, nil
}
