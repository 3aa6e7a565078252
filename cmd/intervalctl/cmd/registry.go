package cmd

import (
	"fmt"
	"strings"

	"github.com/henderiw/intervalset/pkg/multiset"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

var setLabels string

var setCmd = &cobra.Command{
	Use:   "set NAME SET",
	Short: "Store a set under NAME for the rest of the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := labels.ConvertSelectorToLabelsMap(setLabels)
		if err != nil {
			return fmt.Errorf("invalid labels %q: %w", setLabels, err)
		}
		s, err := resolveSet(args[1])
		if err != nil {
			return err
		}
		if registry.Has(args[0]) {
			err = registry.Update(args[0], s)
		} else {
			err = registry.Claim(args[0], s, l)
		}
		if err != nil {
			return err
		}
		log.Debugf("stored %s = %s labels %v", args[0], s, l)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], s)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get NAME...",
	Short: "Print stored sets, all of them when no name is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			iter := registry.Iterate()
			for iter.Next() {
				printEntry(cmd, iter.Name(), iter.Value().Set(), iter.Value().Labels())
			}
			return nil
		}
		for _, name := range args {
			e, err := registry.Get(name)
			if err != nil {
				return err
			}
			printEntry(cmd, e.Name(), e.Set(), e.Labels())
		}
		return nil
	},
}

var releaseCmd = &cobra.Command{
	Use:     "release NAME",
	Short:   "Remove a stored set",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return registry.Release(args[0])
	},
}

var selectOp string

var selectCmd = &cobra.Command{
	Use:   "select SELECTOR",
	Short: "Combine the stored sets whose labels match SELECTOR",
	Long: `Combine the stored sets whose labels match a label selector such as
"kind=shift" or "site in (a, b)". --op chooses union or intersection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, err := labels.Parse(args[0])
		if err != nil {
			return err
		}
		op, err := multiset.ParseOp(selectOp)
		if err != nil {
			return err
		}
		switch op {
		case multiset.OpUnion:
			fmt.Fprintln(cmd.OutOrStdout(), registry.UnionByLabel(selector))
		case multiset.OpIntersection:
			fmt.Fprintln(cmd.OutOrStdout(), registry.IntersectionByLabel(selector))
		default:
			return fmt.Errorf("select supports union and intersection, got %q", selectOp)
		}
		return nil
	},
}

func printEntry(cmd *cobra.Command, name string, s multiset.MultiSet, l labels.Set) {
	if len(l) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, s)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s [%s]\n", name, s, strings.TrimSpace(l.String()))
}

func init() {
	setCmd.Flags().StringVarP(&setLabels, "labels", "l", "", "comma separated key=value labels")
	selectCmd.Flags().StringVar(&selectOp, "op", "union", "union or intersection")
	rootCmd.AddCommand(setCmd, getCmd, releaseCmd, selectCmd)
}
