package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse SET...",
	Short: "Print the canonical form of each set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := resolveSets(args)
		if err != nil {
			return err
		}
		for _, s := range sets {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains SET SET",
	Short: "Report whether the first set contains every point of the second",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := resolveSets(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sets[0].ContainsSet(sets[1]))
		return nil
	},
}

var disjointCmd = &cobra.Command{
	Use:   "disjoint SET SET",
	Short: "Report whether the two sets share no point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := resolveSets(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sets[0].IsDisjoint(sets[1]))
		return nil
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size SET",
	Short: "Print the total measure of the set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSet(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd, containsCmd, disjointCmd, sizeCmd)
}
