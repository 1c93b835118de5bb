package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/courier/config"
	"github.com/beanbocchi/courier/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:          "courier",
	Short:        "Send GET/POST requests and multipart uploads from the command line",
	SilenceUsage: true,
}

func Execute() error {
	rootCmd.AddCommand(newGetCmd(), newPostCmd(), newUploadCmd(), newHistoryCmd())
	return rootCmd.Execute()
}

func newClient() *client.Client {
	cfg := config.GetConfig()

	var opts []client.Option
	if cfg.HTTP.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.HTTP.Timeout))
	}
	return client.New(opts...)
}

// parseData turns repeated --data key=value flags into request params.
func parseData(pairs []string) (client.Params, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := client.Params{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid data pair %q; use key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}
