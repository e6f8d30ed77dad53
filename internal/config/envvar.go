package config

import (
	"fmt"
	"os"
	"strconv"

	"fortio.org/safecast"
)

// Environment variables read by EnvBuilder.
const (
	EnvTargetName       = "QEC_TARGET_NAME"
	EnvTargetConfigPath = "QEC_TARGET_CONFIG_PATH"
	EnvVerbosity        = "QEC_VERBOSITY"
	EnvMaxThreads       = "QEC_MAX_THREADS"
)

// EnvBuilder populates a Config from process environment variables. A
// malformed value is a hard error and aborts the whole resolution run;
// unset variables leave the Config untouched.
type EnvBuilder struct{}

// Populate implements Builder.
func (EnvBuilder) Populate(c *Config) error {
	if path, ok := os.LookupEnv(EnvTargetConfigPath); ok {
		c.SetTargetConfigPath(path)
	}
	if name, ok := os.LookupEnv(EnvTargetName); ok {
		c.SetTargetName(name)
	}
	if err := populateVerbosity(c); err != nil {
		return err
	}
	return populateMaxThreads(c)
}

func populateVerbosity(c *Config) error {
	verbosity, ok := os.LookupEnv(EnvVerbosity)
	if !ok {
		return nil
	}
	switch verbosity {
	case "ERROR":
		c.SetVerbosity(VerbosityError)
	case "WARN":
		c.SetVerbosity(VerbosityWarn)
	case "INFO":
		c.SetVerbosity(VerbosityInfo)
	case "DEBUG":
		c.SetVerbosity(VerbosityDebug)
	default:
		return fmt.Errorf("%s level unrecognized got (%s), options are ERROR, WARN, INFO, or DEBUG", EnvVerbosity, verbosity)
	}
	return nil
}

func populateMaxThreads(c *Config) error {
	raw, ok := os.LookupEnv(EnvMaxThreads)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("unable to parse maximum threads from %q", raw)
	}
	maxThreads, err := safecast.Conv[uint32](parsed)
	if err != nil {
		return fmt.Errorf("unable to parse maximum threads from %q: %w", raw, err)
	}
	c.SetMaxThreads(maxThreads)
	return nil
}
