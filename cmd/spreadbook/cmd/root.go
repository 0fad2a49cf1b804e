package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spreadkit/spreadbook/config"
	"github.com/spreadkit/spreadbook/journal"
	"github.com/spreadkit/spreadbook/structure"
)

var rootCmd = &cobra.Command{
	Use:   "spreadbook",
	Short: "A futures-spread trade log with FIFO P&L accounting",
	Long: `Spreadbook ingests loosely formatted fill text, normalizes it into trade
records and computes realized P&L with FIFO position matching.

It provides tools for:
  - Parsing pasted fill text (tabs, spaces or commas, any column order)
  - Manual trade entry
  - Per-structure FIFO books with round-trip cost accounting
  - Performance statistics (win rate, profit factor, Sharpe/Sortino, streaks)
  - CSV and JSON export of the trade log and matches`,
}

var (
	cfgPath string
	dbPath  string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to journal DB (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig resolves the effective configuration: file if given, defaults
// otherwise, --db flag on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}
	return cfg, nil
}

// openJournal opens the SQLite journal and overlays any persisted pricing
// constants onto the config.
func openJournal(cfg *config.Config) (*journal.SQLite, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	p, ok, err := j.LoadPricing()
	if err != nil {
		_ = j.Close()
		return nil, fmt.Errorf("load pricing: %w", err)
	}
	if ok {
		cfg.Pricing = p
	}
	return j, nil
}

// newCostTable loads the custom overlay from the journal and wires it for
// write-through persistence.
func newCostTable(j *journal.SQLite) (*structure.CostTable, error) {
	custom, err := j.ListCosts()
	if err != nil {
		return nil, fmt.Errorf("load structure costs: %w", err)
	}
	return structure.NewCostTable(custom, j, newLogger()), nil
}

func newLogger() *zap.Logger {
	var log *zap.Logger
	var err error
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		return zap.NewNop()
	}
	return log
}
