package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/report"
	"github.com/spreadkit/spreadbook/stats"
	"github.com/spreadkit/spreadbook/structure"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Performance statistics over all realized matches",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	legsByName := table.Snapshot(names)

	var matches []fifo.Match
	for _, g := range groups {
		book := fifo.Compute(g.Trades, g.Name, cfg.Pricing, fifo.Legs(legsByName[g.Name]))
		matches = append(matches, book.Matches...)
	}

	report.PrintStats(os.Stdout, stats.Compute(matches, cfg.Pricing))
	return nil
}
