package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/verdantsim/verdant/pkg/engine"
)

// versionInfo describes this build.
type versionInfo struct {
	EngineVersion string `json:"engine_version"`
	GoVersion     string `json:"go_version"`
	Platform      string `json:"platform"`
}

func NewVersionCmd() *cobra.Command {
	var jsonOutput bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information for this binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				EngineVersion: engine.Version,
				GoVersion:     runtime.Version(),
				Platform:      runtime.GOOS + "/" + runtime.GOARCH,
			}
			if jsonOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal version info: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Printf("verdant %s (%s, %s)\n", info.EngineVersion, info.GoVersion, info.Platform)
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
	return versionCmd
}
