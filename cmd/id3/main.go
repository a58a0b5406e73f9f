package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to classify categorical data with decision trees",
		Long:  `A tool to grow ID3 decision trees from categorical data, test them, and use them to classify new data`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress information")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", "", "path to a file to write logs to, rotated as it grows (defaults to STDERR)")
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		config.ContextCancelFunc()()
		config.Sync()
	}
	rootCmd.AddCommand(versionCmd(), treeCmd(config), classifyCmd(config), testCmd(config), splitCmd(config), setCmd(config))
	return rootCmd
}
