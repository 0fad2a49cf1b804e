package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spreadkit/spreadbook/parse"
)

var parseDryRun bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse pasted fill text and store the trades",
	Long: `Parse multi-line fill text, one fill per line. Fields may be separated by
tabs, runs of two or more spaces, or commas; column order is detected per
line. Bad lines are reported and skipped — they never abort the batch.

Reads from stdin when no file is given:

  pbpaste | spreadbook parse
  spreadbook parse fills.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseDryRun, "dry-run", "n", false, "parse and report without storing")
}

func runParse(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res := parse.ParseBatch(string(text))

	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "line %d: %s (%q)\n", e.Line, e.Reason, e.Content)
	}

	if !parseDryRun && len(res.Trades) > 0 {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		j, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer j.Close()

		if err := j.SaveTrades(res.Trades); err != nil {
			return fmt.Errorf("store trades: %w", err)
		}
	}

	for _, t := range res.Trades {
		fmt.Println(t)
	}
	fmt.Printf("%d trades parsed, %d lines failed\n", len(res.Trades), len(res.Errors))
	return nil
}
