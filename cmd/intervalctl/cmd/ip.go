package cmd

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/ipinterval"
	"github.com/spf13/cobra"
	"go4.org/netipx"
)

var ipCmd = &cobra.Command{
	Use:   "ip RANGE...",
	Short: "Print IPv4 addresses, prefixes or ranges as a set of address values",
	Long: `Print IPv4 addresses, prefixes ("10.0.0.0/24") or ranges
("10.0.0.1-10.0.0.9") as a set of 32-bit address values, followed by the
merged address ranges.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var b netipx.IPSetBuilder
		for _, arg := range args {
			r, err := ipinterval.ParseRange(arg)
			if err != nil {
				return err
			}
			b.AddRange(r)
		}
		ipset, err := b.IPSet()
		if err != nil {
			return err
		}
		s, err := ipinterval.FromIPSet(ipset)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		for _, r := range ipset.Ranges() {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ipCmd)
}
