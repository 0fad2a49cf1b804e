package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/report"
	"github.com/spreadkit/spreadbook/structure"
)

var pnlStructure string

var pnlCmd = &cobra.Command{
	Use:   "pnl",
	Short: "Compute FIFO books per structure",
	Long: `Group the trade log by normalized structure name and run FIFO matching
over each group, in the order the fills were logged. Prints one book per
structure: open position, realized matches and cost-adjusted P&L.`,
	Args: cobra.NoArgs,
	RunE: runPnl,
}

func init() {
	rootCmd.AddCommand(pnlCmd)
	pnlCmd.Flags().StringVarP(&pnlStructure, "structure", "s", "", "only this structure")
}

func runPnl(cmd *cobra.Command, args []string) error {
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
	table, err := newCostTable(j)
	if err != nil {
		return err
	}

	groups := structure.GroupTrades(trades)

	// One table snapshot prices the whole run.
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	legsByName := table.Snapshot(names)

	printed := 0
	for _, g := range groups {
		if pnlStructure != "" && g.Name != pnlStructure {
			continue
		}
		book := fifo.Compute(g.Trades, g.Name, cfg.Pricing, fifo.Legs(legsByName[g.Name]))
		if printed > 0 {
			fmt.Println()
		}
		report.PrintBook(os.Stdout, g.Meta, book)
		printed++
	}

	if printed == 0 {
		fmt.Println("no matching trades")
	}
	return nil
}
