package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pg84s/loankv/rpc/common"
	"github.com/spf13/cobra"
)

var (
	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Checks that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rpcClient.Ping()
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	loanCmd = &cobra.Command{
		Use:   "loan [username] [amount] [years] [rate]",
		Short: "Requests a loan amortization calculation",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("amount must be a number: %w", err)
			}
			years, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("years must be a number: %w", err)
			}
			rate, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("rate must be a number: %w", err)
			}
			resp, err := rpcClient.Loan(args[0], amount, years, rate)
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rpcClient.Get(args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the string value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rpcClient.SetString(args[0], args[1])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key value pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rpcClient.Del(args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	keysCmd = &cobra.Command{
		Use:   "keys",
		Short: "Lists all keys in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rpcClient.Keys()
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Removes every entry from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rpcClient.Clear()
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
)

// printResponse pretty-prints a response as indented JSON
func printResponse(resp *common.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
