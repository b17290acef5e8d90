package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/payrollwedge/wagegrowth/pkg/wagegrowth"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
defaults:
  beta: 0.8
  employer_share: 60
output:
  format: json
server:
  addr: "127.0.0.1:9000"
scenarios:
  - name: rigid-market
    description: "High pass-through"
    beta: 0.9
    employer_share: 75
    delta_range: [-2, -1, 0, 1, 2]
  - name: baseline
    delta_range: [1]
`
	cfg := loadFromString(t, yaml)

	if cfg.Defaults.Beta != 0.8 {
		t.Errorf("defaults.beta: got %v", cfg.Defaults.Beta)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("output.format: got %q", cfg.Output.Format)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("server.addr: got %q", cfg.Server.Addr)
	}
	if len(cfg.Scenarios) != 2 {
		t.Fatalf("scenarios: got %d, want 2", len(cfg.Scenarios))
	}
	sc := cfg.Scenarios[0]
	if sc.Name != "rigid-market" || sc.Description != "High pass-through" {
		t.Errorf("scenario[0]: got %+v", sc)
	}
	if got := sc.EffectiveBeta(cfg.Defaults); got != 0.9 {
		t.Errorf("effective beta: got %v, want 0.9", got)
	}
	want := DeltaRange{-2, -1, 0, 1, 2}
	if len(sc.DeltaRange) != len(want) {
		t.Fatalf("delta_range: got %v, want %v", sc.DeltaRange, want)
	}
	for i := range want {
		if sc.DeltaRange[i] != want[i] {
			t.Errorf("delta_range[%d]: got %v, want %v", i, sc.DeltaRange[i], want[i])
		}
	}

	base := cfg.Scenarios[1]
	if got := base.EffectiveBeta(cfg.Defaults); got != 0.8 {
		t.Errorf("baseline beta falls back to defaults: got %v", got)
	}
	if got := base.EffectiveEmployerShare(cfg.Defaults); got != 60 {
		t.Errorf("baseline share falls back to defaults: got %v", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	yaml := `
scenarios:
  - name: only
    delta_range: [1, 2]
`
	cfg := loadFromString(t, yaml)

	if cfg.Defaults.Beta != DefaultBeta {
		t.Errorf("default beta: got %v, want %v", cfg.Defaults.Beta, DefaultBeta)
	}
	if cfg.Defaults.EmployerShare != DefaultEmployerShare {
		t.Errorf("default share: got %v, want %v", cfg.Defaults.EmployerShare, DefaultEmployerShare)
	}
	if cfg.Output.Format != DefaultFormat {
		t.Errorf("default format: got %q, want %q", cfg.Output.Format, DefaultFormat)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("default addr: got %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
}

func TestLoad_ExplicitZeroShareOverridesDefault(t *testing.T) {
	yaml := `
scenarios:
  - name: no-employer-share
    employer_share: 0
    delta_range: [1]
`
	cfg := loadFromString(t, yaml)
	if got := cfg.Scenarios[0].EffectiveEmployerShare(cfg.Defaults); got != 0 {
		t.Errorf("effective share: got %v, want 0", got)
	}
}

func TestLoad_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"beta below range", `
scenarios:
  - name: low
    beta: 0.3
    delta_range: [1]
`},
		{"share above range", `
scenarios:
  - name: high
    employer_share: 150
    delta_range: [1]
`},
		{"bad defaults", `
defaults:
  beta: 2
scenarios:
  - name: x
    delta_range: [1]
`},
		{"delta_range not a sequence", `
scenarios:
  - name: scalar
    delta_range: not-an-array
`},
		{"delta_range mapping", `
scenarios:
  - name: mapping
    delta_range: {a: 1}
`},
		{"non-numeric element", `
scenarios:
  - name: mixed
    delta_range: [1, two, 3]
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadStringErr(t, tc.yaml)
			if !errors.Is(err, wagegrowth.ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestLoad_NonNumericElementNamesIndex(t *testing.T) {
	_, err := loadStringErr(t, `
scenarios:
  - name: mixed
    delta_range: [1, two, 3]
`)
	var ia *wagegrowth.InvalidArgumentError
	if !errors.As(err, &ia) {
		t.Fatalf("error = %v, want *InvalidArgumentError", err)
	}
	if ia.Param != "delta_range[1]" {
		t.Errorf("Param = %q, want delta_range[1]", ia.Param)
	}
}

func TestLoad_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no scenarios", `defaults: {beta: 0.7}`},
		{"missing name", `
scenarios:
  - delta_range: [1]
`},
		{"duplicate name", `
scenarios:
  - name: a
    delta_range: [1]
  - name: a
    delta_range: [2]
`},
		{"unknown format", `
output:
  format: xml
scenarios:
  - name: a
    delta_range: [1]
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadStringErr(t, tc.yaml)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}
