package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "clock25", displayVersion(version))
	},
}

// displayVersion normalizes release tags to canonical semver ("1.2" becomes
// "v1.2.0"). Anything else is printed as a development build.
func displayVersion(v string) string {
	tag := v
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	if !semver.IsValid(tag) {
		return "(devel)"
	}
	return semver.Canonical(tag)
}
