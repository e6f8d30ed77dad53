package config

import "fmt"

// Builder populates or overlays fields of a Config from one source.
// Builders apply in precedence order; a later builder may overwrite any
// field an earlier one set.
type Builder interface {
	Populate(c *Config) error
}

// BuildToolConfig resolves the standard tool configuration. The precedence
// order, lowest to highest, is
//
//  1. compiled-in defaults
//  2. environment variables
//  3. command-line flags
//
// after which input type and emit action are resolved from the input and
// output file names unless flags fixed them already.
func BuildToolConfig(cli *CLIBuilder, inputName, outputName string) (*Config, error) {
	cfg := New()
	if err := (EnvBuilder{}).Populate(cfg); err != nil {
		return nil, fmt.Errorf("environment configuration: %w", err)
	}
	if err := cli.PopulateWithFiles(cfg, inputName, outputName); err != nil {
		return nil, err
	}
	return cfg, nil
}
