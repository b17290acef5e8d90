// Package config loads and watches the scenario file (scenarios.yaml).
//
// Top-level types:
//   - Config{Defaults, Output, Server, Scenarios}: full tree parsed from YAML
//   - Defaults: beta and employer_share applied to scenarios that omit them
//   - Scenario: name, description, optional beta/employer_share, delta_range
//   - DeltaRange: ΔSSC values; its YAML unmarshaler rejects non-sequences
//     and non-numeric elements with wagegrowth.ErrInvalidArgument
//
// Load(path) reads the YAML file, applies defaults (beta 0.7, share 50,
// text output, :8080), then validates names, formats and the effective
// beta/share of every scenario.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. A failed reload keeps the previous
// config and is only logged.
package config
