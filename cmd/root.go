package cmd

import (
	"fmt"
	"os"

	"github.com/pg84s/loankv/cmd/client"
	"github.com/pg84s/loankv/cmd/serve"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "loankv",
		Short: "framed-JSON loan calculator and key-value service",
		Long: fmt.Sprintf(`loankv (v%s)

A request/response service over TCP: clients send length-prefixed JSON
commands, the server answers loan amortization requests and key-value
operations against a shared in-memory store, and every exchange is appended
to a JSON Lines audit log.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of loankv",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loankv v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(client.ClientCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
