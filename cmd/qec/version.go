package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"qec/internal/version"
)

type versionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	Resources string
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	Resources string `json:"resources,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include build metadata and the resources directory")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show qec build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(versionFormat)
		switch format {
		case "pretty", "json":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := collectVersionInfo(versionShowFull)
		if format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info)
		}
		renderVersionPretty(cmd.OutOrStdout(), info)
		return nil
	},
}

func collectVersionInfo(full bool) versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	info := versionInfo{Version: v}
	if full {
		info.GitCommit = strings.TrimSpace(version.GitCommit)
		info.BuildDate = strings.TrimSpace(version.BuildDate)
		if dir, err := version.ResourcesDir(); err == nil {
			info.Resources = dir
		}
	}
	return info
}

func renderVersionPretty(out io.Writer, info versionInfo) {
	fmt.Fprintf(out, "qec %s\n", info.Version)
	if info.GitCommit != "" {
		fmt.Fprintf(out, "commit:    %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "built:     %s\n", info.BuildDate)
	}
	if info.Resources != "" {
		fmt.Fprintf(out, "resources: %s\n", info.Resources)
	}
}

func renderVersionJSON(out io.Writer, info versionInfo) error {
	payload := versionPayload{
		Tool:      "qec",
		Version:   info.Version,
		GitCommit: info.GitCommit,
		BuildDate: info.BuildDate,
		Resources: info.Resources,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
