// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/word2md/internal/history"
	"github.com/pdiddy/word2md/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or export the conversion history",
	Long: `History reads the SQLite ledger of past conversions kept in
<output-dir>/history.db. Use subcommands to list entries or export them.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list [document-id]",
	Short: "List recent conversions, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.List(context.Background(), historyOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(results, jsonOutput)
}

func formatHistoryOutput(results []types.Conversion, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-24s  %-8s  %-6s  %s\n",
		"Converted", "Status", "Document", "Headings", "Images", "Title")
	for _, r := range results {
		id := r.ID
		if len(id) > 24 {
			id = id[:21] + "..."
		}
		title := r.Title
		if r.Status == types.ConversionFailed {
			title = r.Error
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-24s  %-8d  %-6s  %s\n",
			r.ConvertedAt.Local().Format("2006-01-02 15:04:05"), r.Status, id,
			r.Headings, fmt.Sprintf("%d/%d", r.Images, r.ImagesExtracted), title)
	}

	fmt.Fprintf(os.Stdout, "\n%d conversions\n", len(results))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export [document-id]",
	Short: "Export the conversion history to YAML or JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := historyOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// --- shared helpers ---

func openHistory() (*history.Store, error) {
	cfg := configFrom(viper.GetViper())
	return history.NewStore(cfg.History)
}

func historyOptsFromFlags(cmd *cobra.Command, args []string) history.QueryOptions {
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := history.QueryOptions{
		Status: types.ConversionStatus(status),
		Limit:  limit,
	}
	if len(args) > 0 {
		opts.DocumentID = args[0]
	}
	return opts
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("output-dir", "", "base directory holding history.db (default generate_data)")
	historyCmd.PersistentFlags().String("status", "", "filter by status: converted or failed")
	viper.BindPFlag(keyHistoryDir, historyCmd.PersistentFlags().Lookup("output-dir"))

	historyListCmd.Flags().Int("limit", 0, "maximum entries (0 = configured history.limit)")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().Int("limit", 0, "maximum entries to export (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
