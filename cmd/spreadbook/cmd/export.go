package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/journal"
	"github.com/spreadkit/spreadbook/structure"
)

var (
	exportFormat string
	exportOut    string
	exportWhat   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trade log or matches",
	Long: `Export trades or realized matches as CSV, or the full trade log plus
derived books as JSON.

Examples:
  spreadbook export --format csv --what trades --out trades.csv
  spreadbook export --format csv --what matches --out matches.csv
  spreadbook export --format json --out book.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: stdout)")
	exportCmd.Flags().StringVarP(&exportWhat, "what", "w", "trades", "trades or matches (csv only)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "csv":
		if exportWhat == "trades" {
			return journal.WriteTradesCSV(out, trades)
		}
		table, err := newCostTable(j)
		if err != nil {
			return err
		}
		var matches []fifo.Match
		for _, g := range structure.GroupTrades(trades) {
			book := fifo.Compute(g.Trades, g.Name, cfg.Pricing, table)
			matches = append(matches, book.Matches...)
		}
		return journal.WriteMatchesCSV(out, matches)

	case "json":
		table, err := newCostTable(j)
		if err != nil {
			return err
		}
		exp := journal.Export{Trades: trades}
		for _, g := range structure.GroupTrades(trades) {
			exp.Books = append(exp.Books, fifo.Compute(g.Trades, g.Name, cfg.Pricing, table))
		}
		return journal.WriteJSON(out, exp)

	default:
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}
}
