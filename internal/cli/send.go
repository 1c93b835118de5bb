package cli

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/beanbocchi/courier/pkg/client"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Send a GET request with params encoded into the query string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cmd.Flags().GetStringArray("data")
			if err != nil {
				return fmt.Errorf("failed to parse --data flag: %w", err)
			}
			return runSend("GET", args[0], data)
		},
	}
	cmd.Flags().StringArrayP("data", "d", nil, "request parameter as key=value (repeatable)")
	return cmd
}

func newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post URL",
		Short: "Send a POST request with params form-encoded into the body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cmd.Flags().GetStringArray("data")
			if err != nil {
				return fmt.Errorf("failed to parse --data flag: %w", err)
			}
			return runSend("POST", args[0], data)
		},
	}
	cmd.Flags().StringArrayP("data", "d", nil, "request parameter as key=value (repeatable)")
	return cmd
}

func runSend(method, rawURL string, data []string) error {
	params, err := parseData(data)
	if err != nil {
		return err
	}

	c := newClient()
	started := time.Now()

	var call *client.Call
	if method == "GET" {
		call = c.SendGet(rawURL, params)
	} else {
		call = c.SendPost(rawURL, params)
	}

	result, err := call.Result()
	record(method, rawURL, call, started, err)
	if err != nil {
		return err
	}

	return printResult(result)
}

func printResult(result map[string]any) error {
	out, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
