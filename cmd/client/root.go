package client

import (
	cmdUtil "github.com/pg84s/loankv/cmd/util"
	"github.com/pg84s/loankv/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcClient *client.Client

	// ClientCommands represents the client command group. Without a
	// subcommand it drops into the interactive prompt.
	ClientCommands = &cobra.Command{
		Use:               "client",
		Short:             "Send requests to a loankv server",
		PersistentPreRunE: setupClient,
		RunE:              runInteractive,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// Add common connection flags to the client command
	cmdUtil.SetupClientFlags(ClientCommands)

	// Add subcommands
	ClientCommands.AddCommand(pingCmd)
	ClientCommands.AddCommand(loanCmd)
	ClientCommands.AddCommand(getCmd)
	ClientCommands.AddCommand(setCmd)
	ClientCommands.AddCommand(delCmd)
	ClientCommands.AddCommand(keysCmd)
	ClientCommands.AddCommand(clearCmd)
}

// setupClient initializes the client from flags and environment
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	rpcClient = client.New(*cmdUtil.GetClientConfig())
	return nil
}
