package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is the release of id3, overridden at build time with
// -ldflags "-X main.version=...".
var version = "0.1.0"

func versionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of id3",
		Long:  `Print the version of id3 along with the Go release and platform it was built for`,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id3 v%s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print just the version number")
	return cmd
}
