package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/payrollwedge/wagegrowth/pkg/wagegrowth"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultBeta          = 0.7
	DefaultEmployerShare = 50.0
	DefaultFormat        = FormatText
	DefaultAddr          = ":8080"
)

// Output formats understood by the report renderer.
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatPrometheus = "prometheus"
)

// Config is the top-level scenario file.
type Config struct {
	Defaults  Defaults     `yaml:"defaults"`
	Output    OutputConfig `yaml:"output"`
	Server    ServerConfig `yaml:"server"`
	Scenarios []Scenario   `yaml:"scenarios"`
}

// Defaults holds the parameters used by scenarios that leave them unset.
type Defaults struct {
	// Beta is the shifting coefficient, 0.5–1.0.
	Beta float64 `yaml:"beta"`

	// EmployerShare is the employer SSC as a percentage of the total tax
	// wedge, 0–100.
	EmployerShare float64 `yaml:"employer_share"`
}

// OutputConfig selects how one-shot reports are rendered.
type OutputConfig struct {
	// Format is one of: text | json | prometheus.
	Format string `yaml:"format"`
}

// ServerConfig holds settings for serve mode.
type ServerConfig struct {
	// Addr is the listen address of the HTTP API.
	Addr string `yaml:"addr"`
}

// Scenario is one named sensitivity sweep.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Beta and EmployerShare override Defaults when set.
	Beta          *float64 `yaml:"beta"`
	EmployerShare *float64 `yaml:"employer_share"`

	// DeltaRange is the ordered list of ΔSSC values in percentage points.
	DeltaRange DeltaRange `yaml:"delta_range"`
}

// EffectiveBeta returns the scenario beta, or d.Beta when unset.
func (s Scenario) EffectiveBeta(d Defaults) float64 {
	if s.Beta != nil {
		return *s.Beta
	}
	return d.Beta
}

// EffectiveEmployerShare returns the scenario share, or d.EmployerShare when unset.
func (s Scenario) EffectiveEmployerShare(d Defaults) float64 {
	if s.EmployerShare != nil {
		return *s.EmployerShare
	}
	return d.EmployerShare
}

// DeltaRange is an ordered sequence of ΔSSC values.
type DeltaRange []float64

// UnmarshalYAML accepts only a sequence of numbers. A scalar or mapping
// fails as a whole; a non-numeric element fails naming its index.
func (r *DeltaRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return &wagegrowth.InvalidArgumentError{
			Param:  "delta_range",
			Reason: "must be a sequence of numbers",
		}
	}
	out := make(DeltaRange, 0, len(node.Content))
	for i, el := range node.Content {
		var v float64
		if el.Kind != yaml.ScalarNode || el.Decode(&v) != nil {
			return &wagegrowth.InvalidArgumentError{
				Param:  fmt.Sprintf("delta_range[%d]", i),
				Reason: fmt.Sprintf("must be a number, got %q", el.Value),
			}
		}
		out = append(out, v)
	}
	*r = out
	return nil
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario file already held in memory.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Defaults: Defaults{
			Beta:          DefaultBeta,
			EmployerShare: DefaultEmployerShare,
		},
		Output: OutputConfig{Format: DefaultFormat},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case FormatText, FormatJSON, FormatPrometheus:
	default:
		return fmt.Errorf("output.format: unknown format %q", cfg.Output.Format)
	}
	if err := wagegrowth.ValidateParams(cfg.Defaults.Beta, cfg.Defaults.EmployerShare); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	seen := make(map[string]bool, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenarios[%d]: name is required", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenarios[%d]: duplicate name %q", i, sc.Name)
		}
		seen[sc.Name] = true

		beta, share := sc.EffectiveBeta(cfg.Defaults), sc.EffectiveEmployerShare(cfg.Defaults)
		if err := wagegrowth.ValidateParams(beta, share); err != nil {
			return fmt.Errorf("scenarios[%d] %q: %w", i, sc.Name, err)
		}
	}
	return nil
}
