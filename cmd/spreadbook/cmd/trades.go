package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List the trade log",
	Args:  cobra.NoArgs,
	RunE:  runTrades,
}

var tradesRmCmd = &cobra.Command{
	Use:   "rm <trade-id>",
	Short: "Delete one trade from the log",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesRm,
}

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(tradesRmCmd)
}

func runTrades(cmd *cobra.Command, args []string) error {
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
	for _, t := range trades {
		fmt.Printf("%s  %s\n", t.ID, t)
	}
	fmt.Printf("%d trades\n", len(trades))
	return nil
}

func runTradesRm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
