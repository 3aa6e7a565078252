package cmd

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/multiset"
	"github.com/spf13/cobra"
)

func newOpCmd(use, short string, op multiset.Op, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use + " SET SET...",
		Short:   short,
		Aliases: aliases,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := resolveSets(args)
			if err != nil {
				return err
			}
			out, err := fold(op, sets)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// fold applies op from left to right over sets.
func fold(op multiset.Op, sets []multiset.MultiSet) (multiset.MultiSet, error) {
	out := sets[0]
	for _, s := range sets[1:] {
		next, err := multiset.Apply(op, out, s)
		if err != nil {
			return multiset.MultiSet{}, err
		}
		log.Debugf("%s %s %s = %s", out, op, s, next)
		out = next
	}
	return out, nil
}

var complementCmd = &cobra.Command{
	Use:   "complement SET",
	Short: "Print the points of [-inf, inf] not in SET",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSet(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Complement())
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply OP SET SET...",
	Short: "Apply the named operation (union, and, -, xor, ...) left to right",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := multiset.ParseOp(args[0])
		if err != nil {
			return err
		}
		sets, err := resolveSets(args[1:])
		if err != nil {
			return err
		}
		out, err := fold(op, sets)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		newOpCmd("union", "Print the union of the sets", multiset.OpUnion, "or"),
		newOpCmd("intersect", "Print the intersection of the sets", multiset.OpIntersection, "and"),
		newOpCmd("diff", "Print the points of the first set not in the others", multiset.OpDifference),
		newOpCmd("xor", "Print the symmetric difference of the sets", multiset.OpSymmetricDifference),
		complementCmd,
		applyCmd,
	)
}
