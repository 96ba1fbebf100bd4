package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SuyashSrivastava1/ReadAble/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect stored simplification history",
	Long:  "Inspect and prune the history saved for signed-in API users. Requires DATABASE_URL.",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's most recent simplifications",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the history schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History schema is up to date")
		return nil
	},
}

var (
	historyUser  string
	historyLimit int
	historyJSON  bool
)

func init() {
	historyCmd.PersistentFlags().StringVarP(&historyUser, "user", "u", "", "User id (required)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.MaxHistory, "Maximum entries to show")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "Print entries as JSON")

	if err := historyCmd.MarkPersistentFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	historyCmd.AddCommand(historyListCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd, migrateCmd)
}

// openStore opens the configured history store, applying migrations
func openStore(ctx context.Context) (db.HistoryStore, error) {
	if appConfig.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required (postgres:// or sqlite:// URL)")
	}
	return db.Open(ctx, appConfig.DatabaseURL)
}

func parseUser() (uuid.UUID, error) {
	userID, err := uuid.Parse(historyUser)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", historyUser, err)
	}
	return userID, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	userID, err := parseUser()
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.ListHistory(cmd.Context(), userID, historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		return writeJSON(cmd.OutOrStdout(), [][]db.HistoryEntry{entries})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCREATED\tPROFILE\tLEVEL\tTEXT")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.ReadingProfile, e.ReadingLevel, preview(e.OriginalText, 40))
	}
	return w.Flush()
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	userID, err := parseUser()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid history id %q", args[0])
	}

	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.DeleteHistory(cmd.Context(), userID, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

// preview shortens text to n characters on one line
func preview(text string, n int) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' || r == '\t' {
			runes[i] = ' '
		}
	}
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-3]) + "..."
}
