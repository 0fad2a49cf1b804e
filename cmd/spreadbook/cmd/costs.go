package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spreadkit/spreadbook/structure"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Manage the structure-cost table",
	Long: `List, set or remove round-trip leg counts for structures. Built-in
entries cover the common structure types; custom entries override them and
persist in the journal DB.

Examples:
  spreadbook costs
  spreadbook costs set "SON Sep26 D-Fly" 4
  spreadbook costs rm "SON Sep26 D-Fly"`,
	Args: cobra.NoArgs,
	RunE: runCostsList,
}

var costsSetCmd = &cobra.Command{
	Use:   "set <structure> <legs>",
	Short: "Set a custom leg count",
	Args:  cobra.ExactArgs(2),
	RunE:  runCostsSet,
}

var costsRmCmd = &cobra.Command{
	Use:   "rm <structure>",
	Short: "Remove a custom leg count",
	Args:  cobra.ExactArgs(1),
	RunE:  runCostsRm,
}

func init() {
	rootCmd.AddCommand(costsCmd)
	costsCmd.AddCommand(costsSetCmd)
	costsCmd.AddCommand(costsRmCmd)
}

func runCostsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	table, err := newCostTable(j)
	if err != nil {
		return err
	}

	fmt.Println("Built-in:")
	printCosts(structure.Builtin())
	custom := table.Custom()
	if len(custom) > 0 {
		fmt.Println("Custom:")
		printCosts(custom)
	}
	return nil
}

func printCosts(m map[string]int) {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-20s %d legs\n", n, m[n])
	}
}

func runCostsSet(cmd *cobra.Command, args []string) error {
	legs, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("legs must be an integer: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	table, err := newCostTable(j)
	if err != nil {
		return err
	}
	if err := table.Add(args[0], legs); err != nil {
		return err
	}
	fmt.Printf("%s = %d legs\n", args[0], legs)
	return nil
}

func runCostsRm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	table, err := newCostTable(j)
	if err != nil {
		return err
	}
	if err := table.Remove(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}
