package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	setTickValue  float64
	setTickSize   float64
	setCostPerLeg float64
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show or set the trading constants",
	Long: `The three knobs every dollar figure depends on: tick dollar value, tick
price size and cost per leg per lot. Set values persist in the journal DB and
override the config file on later runs.

Examples:
  spreadbook pricing
  spreadbook pricing set --tick-value 12.50 --tick-size 0.005 --cost-per-leg 1.65`,
	Args: cobra.NoArgs,
	RunE: runPricingShow,
}

var pricingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the trading constants",
	Args:  cobra.NoArgs,
	RunE:  runPricingSet,
}

func init() {
	rootCmd.AddCommand(pricingCmd)
	pricingCmd.AddCommand(pricingSetCmd)

	pricingSetCmd.Flags().Float64Var(&setTickValue, "tick-value", 0, "dollars per tick per lot")
	pricingSetCmd.Flags().Float64Var(&setTickSize, "tick-size", 0, "minimum price increment")
	pricingSetCmd.Flags().Float64Var(&setCostPerLeg, "cost-per-leg", -1, "dollars per leg per lot")
}

func runPricingShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	fmt.Printf("Tick Value:   %.4f\n", cfg.Pricing.TickValue)
	fmt.Printf("Tick Size:    %.4f\n", cfg.Pricing.TickSize)
	fmt.Printf("Cost per Leg: %.4f\n", cfg.Pricing.CostPerLeg)
	return nil
}

func runPricingSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	p := cfg.Pricing
	if cmd.Flags().Changed("tick-value") {
		p.TickValue = setTickValue
	}
	if cmd.Flags().Changed("tick-size") {
		p.TickSize = setTickSize
	}
	if cmd.Flags().Changed("cost-per-leg") {
		p.CostPerLeg = setCostPerLeg
	}

	check := *cfg
	check.Pricing = p
	if err := check.Validate(); err != nil {
		return err
	}

	if err := j.SavePricing(p); err != nil {
		return fmt.Errorf("persist pricing: %w", err)
	}
	fmt.Printf("Tick Value:   %.4f\nTick Size:    %.4f\nCost per Leg: %.4f\n",
		p.TickValue, p.TickSize, p.CostPerLeg)
	return nil
}
