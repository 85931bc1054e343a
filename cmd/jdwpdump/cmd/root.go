package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jdwpdump",
	Short: "Inspect captured JDWP byte streams",
	Long: `jdwpdump classifies and summarizes a file of raw JDWP bytes
captured off the wire: the initial handshake, if present, followed by
zero or more framed command/reply/event packets, one after another.

It performs no socket I/O and no request/reply correlation; it only
runs the bytes through protocol/jdwp's packet framer.`,
}

// Execute runs the root command, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
