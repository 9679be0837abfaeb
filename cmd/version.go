package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"

	"github.com/authdog/authdog-go/authdog"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected at link time
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// releaseVersion parses the build version, accepting a leading "v"
func releaseVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("not a release build (version %q): %w", version, err)
	}
	return v, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		display := version
		if v, err := releaseVersion(); err == nil {
			display = v.String()
		} else {
			display += " (development build)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "authdog %s\n", display)
		fmt.Fprintf(out, "Built: %s\n", buildTime)
		fmt.Fprintf(out, "SDK: %s\n", authdog.UserAgent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
