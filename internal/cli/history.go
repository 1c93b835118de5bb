package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanbocchi/courier/config"
	"github.com/beanbocchi/courier/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to parse --limit flag: %w", err)
			}

			cfg := config.GetConfig()
			if limit <= 0 {
				limit = cfg.History.Limit
			}

			storage, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer storage.Close()

			entries, err := storage.ListEntries(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("no requests recorded")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-7s %-8s %4dms  %s",
					e.CreatedAt.Format("2006-01-02 15:04:05"), e.Method, e.Outcome, e.DurationMs, e.URL)
				if e.ErrorMessage.Valid {
					line += fmt.Sprintf("  (%s)", e.ErrorMessage.String)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 0, "maximum entries to show (default from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			storage, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer storage.Close()

			n, err := storage.Clear(context.Background())
			if err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Printf("cleared %d entries\n", n)
			return nil
		},
	})

	return cmd
}
