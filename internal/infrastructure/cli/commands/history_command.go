package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/fontset/internal/app"
	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect previous fontset runs",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryPathCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int
	var absolute bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New(ErrHistoryStoreUnavailable)
			}
			return listHistoryEntries(cmd.OutOrStdout(), container.HistoryStore, limit, absolute, time.Now())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show (0 for all)")
	cmd.Flags().BoolVar(&absolute, "absolute", false, "Show absolute timestamps")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New(ErrHistoryStoreUnavailable)
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

// newHistoryPathCommand creates the 'history path' subcommand
func newHistoryPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the history database location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New(ErrHistoryStoreUnavailable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.HistoryStore.Path())
			return nil
		},
	}
}

// listHistoryEntries prints one line per run
func listHistoryEntries(out io.Writer, store ports.HistoryRepository, limit int, absolute bool, now time.Time) error {
	records, err := store.Records(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		when := humanize.RelTime(rec.Timestamp, now, "ago", "from now")
		if absolute {
			when = rec.Timestamp.Local().Format(TimestampFormat)
		}
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			when,
			describeSetting(rec),
			strings.Join(rec.Apps, ","),
			describeStatus(rec))
	}
	return nil
}

func describeSetting(rec domain.HistoryRecord) string {
	var parts []string
	if rec.Font != "" {
		parts = append(parts, fmt.Sprintf("font=%q", rec.Font))
	}
	if rec.Ligatures != "" {
		parts = append(parts, "ligatures="+rec.Ligatures)
	}
	return strings.Join(parts, " ")
}

func describeStatus(rec domain.HistoryRecord) string {
	if rec.Success {
		return fmt.Sprintf("ok (%dms)", rec.DurationMS)
	}
	return fmt.Sprintf("failed: %s (%dms)", strings.Join(rec.FailedApps, ","), rec.DurationMS)
}
