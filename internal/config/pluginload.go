package config

import (
	"fmt"
	"plugin"
)

// PluginLoader loads compiler plugins through the platform loader. The
// toolchain only records what was requested; actual symbol resolution and
// registration is the plugin's own concern once loaded.
type PluginLoader interface {
	LoadPassPlugin(path string) error
	LoadDialectPlugin(path string) error
}

// PlatformLoader is the default PluginLoader backed by the Go plugin
// mechanism of the host platform.
type PlatformLoader struct{}

func (PlatformLoader) LoadPassPlugin(path string) error {
	return platformOpen(path)
}

func (PlatformLoader) LoadDialectPlugin(path string) error {
	return platformOpen(path)
}

func platformOpen(path string) error {
	if _, err := plugin.Open(path); err != nil {
		return fmt.Errorf("open plugin %s: %w", path, err)
	}
	return nil
}
