package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/word2md/internal/convert"
	"github.com/pdiddy/word2md/internal/history"
	"github.com/pdiddy/word2md/internal/picker"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert .docx files to Markdown",
	Long: `Convert transforms each .docx file into <output-dir>/<name>/output.md,
extracting embedded images into <output-dir>/<name>/Images/. Files are
processed one after another; a file that fails is reported and the rest
of the batch continues.

With no file arguments a file dialog opens to select the documents.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("output-dir", "", "base directory for converted documents (default generate_data)")
	convertCmd.Flags().Bool("outline", false, "also write outline.yaml listing the inferred headings")
	convertCmd.Flags().Bool("no-history", false, "do not record conversions in the history database")

	viper.BindPFlag(keyOutputDir, convertCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag(keyOutline, convertCmd.Flags().Lookup("outline"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var pick picker.Picker = picker.Paths(args)
	if len(args) == 0 {
		pick = picker.NewDialog("")
	}
	paths, err := pick.Pick(ctx)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stdout, "no files selected")
		return nil
	}

	cfg := configFrom(viper.GetViper())
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Enabled = false
	}

	var opts []convert.Option
	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, convert.WithHistory(store))
	}

	conv := convert.New(cfg.Conversion, opts...)
	result := conv.ConvertBatch(ctx, paths, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return ctx.Err()
}
