package version

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Version information for the qec CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// EnvResources overrides the resources directory when set.
const EnvResources = "QEC_RESOURCES"

// ResourcesDir returns the directory holding compiler resources such as
// bundled target configurations. The QEC_RESOURCES environment variable
// takes precedence; otherwise the directory is resolved relative to the
// running executable.
func ResourcesDir() (string, error) {
	if dir, ok := os.LookupEnv(EnvResources); ok && dir != "" {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "..", "share", "qec"), nil
}
