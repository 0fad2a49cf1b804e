package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spreadkit/spreadbook/parse"
	"github.com/spreadkit/spreadbook/structure"
	"github.com/spreadkit/spreadbook/trade"
)

var addEntry trade.ManualEntry

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Manually enter one fill",
	Long: `Add a single fill without going through the text parser. Structure, side
and quantity are required; an unparseable or missing date defaults to now and
the exchange defaults to MANUAL.

Example:
  spreadbook add --structure "SON Sep26 D-Fly" --side B --qty 1 --price -0.025`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addEntry.Structure, "structure", "", "structure name (required)")
	addCmd.Flags().StringVar(&addEntry.Side, "side", "", "B/BUY or S/SELL (required)")
	addCmd.Flags().IntVar(&addEntry.Quantity, "qty", 0, "lot count (required)")
	addCmd.Flags().Float64Var(&addEntry.Price, "price", 0, "fill price")
	addCmd.Flags().StringVar(&addEntry.Date, "date", "", "fill date (default: today)")
	addCmd.Flags().StringVar(&addEntry.Time, "time", "", "fill time HH:MM[:SS]")
	addCmd.Flags().StringVar(&addEntry.Exchange, "exchange", "", "venue code (default: MANUAL)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	at := time.Now()
	if addEntry.Date != "" {
		if d, ok := parse.ParseDate(addEntry.Date); ok {
			at = parse.ApplyTime(d, addEntry.Time)
		}
	}

	t, err := trade.NewManual(addEntry, at)
	if err != nil {
		return err
	}
	t.Structure = structure.Normalize(t.OriginalStructure)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.SaveTrade(t); err != nil {
		return fmt.Errorf("store trade: %w", err)
	}
	fmt.Println(t)
	return nil
}
