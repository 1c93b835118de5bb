package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload URL FILE",
		Short: "Upload a file as multipart form data, printing progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cmd.Flags().GetStringArray("data")
			if err != nil {
				return fmt.Errorf("failed to parse --data flag: %w", err)
			}
			params, err := parseData(data)
			if err != nil {
				return err
			}

			rawURL, filePath := args[0], args[1]
			c := newClient()
			started := time.Now()

			call := c.UploadImage(rawURL, filePath, params)
			for fraction := range call.Progress() {
				fmt.Printf("\ruploading %3.0f%%", fraction*100)
			}

			result, err := call.Result()
			fmt.Println()
			record("UPLOAD", rawURL, call, started, err)
			if err != nil {
				return err
			}

			if checksum := call.Checksum(); checksum != "" {
				fmt.Printf("checksum: %s\n", checksum)
			}
			return printResult(result)
		},
	}
	cmd.Flags().StringArrayP("data", "d", nil, "extra form field as key=value (repeatable)")
	return cmd
}
