package client

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pg84s/loankv/rpc/common"
	"github.com/spf13/cobra"
)

// runInteractive reads commands line by line, builds one request per line and
// prints the server's response.
func runInteractive(_ *cobra.Command, _ []string) error {
	fmt.Println("Commands: PING | LOAN <username> <amount> <years> <rate> | SET <k> <v...> | GET <k> | DEL <k> | KEYS | CLEAR | EXIT")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToUpper(parts[0])
		if cmd == "EXIT" || cmd == "QUIT" {
			fmt.Println("bye")
			return nil
		}

		resp, err := issue(cmd, parts)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if resp == nil {
			fmt.Println("Unknown/invalid command.")
			continue
		}
		if err := printResponse(resp); err != nil {
			return err
		}
	}
}

// issue builds and sends the request for one prompt line. A nil response with
// a nil error means the line did not parse as a command.
func issue(cmd string, parts []string) (*common.Response, error) {
	switch {
	case cmd == "PING" && len(parts) == 1:
		return rpcClient.Ping()

	case cmd == "LOAN" && len(parts) == 5:
		amount, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("amount must be a number: %w", err)
		}
		years, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("years must be a number: %w", err)
		}
		rate, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return nil, fmt.Errorf("rate must be a number: %w", err)
		}
		return rpcClient.Loan(parts[1], amount, years, rate)

	case cmd == "SET" && len(parts) >= 3:
		// everything after the key is one string value
		return rpcClient.SetString(parts[1], strings.Join(parts[2:], " "))

	case cmd == "GET" && len(parts) == 2:
		return rpcClient.Get(parts[1])

	case cmd == "DEL" && len(parts) == 2:
		return rpcClient.Del(parts[1])

	case cmd == "KEYS" && len(parts) == 1:
		return rpcClient.Keys()

	case cmd == "CLEAR" && len(parts) == 1:
		return rpcClient.Clear()

	default:
		return nil, nil
	}
}
