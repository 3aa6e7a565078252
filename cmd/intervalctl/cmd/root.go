package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/henderiw/intervalset/pkg/multiset"
	"github.com/henderiw/intervalset/pkg/settable"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

const logFormat = "%{color}%{time:15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"

var log = logging.MustGetLogger("intervalctl")

var (
	verbose bool
	// registry holds the named sets, shared by all commands of a session
	registry settable.Table
)

var rootCmd = &cobra.Command{
	Use:   "intervalctl",
	Short: "Evaluate interval set expressions",
	Long: `intervalctl evaluates set algebra over real intervals.

Sets are written in interval notation, for example "{[0, 1), (1, 3], 5}", or
as "@name" to refer to a set stored with the set command. Bare numbers are
single points.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLog()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	var err error
	registry, err = settable.NewTable(nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug information")
}

func initLog() {
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0),
			logging.MustStringFormatter(logFormat),
		),
	)
	if verbose {
		backend.SetLevel(logging.DEBUG, "")
	} else {
		backend.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(backend)
}

// resolveSet reads a set argument: "@name" for a stored set, otherwise
// the text form accepted by multiset.ParseText.
func resolveSet(arg string) (multiset.MultiSet, error) {
	if strings.HasPrefix(arg, "@") {
		e, err := registry.Get(arg[1:])
		if err != nil {
			return multiset.MultiSet{}, err
		}
		return e.Set(), nil
	}
	s, err := multiset.ParseText(arg)
	if err != nil {
		return multiset.MultiSet{}, err
	}
	log.Debugf("parsed %q as %s", arg, s)
	return s, nil
}

func resolveSets(args []string) ([]multiset.MultiSet, error) {
	out := make([]multiset.MultiSet, 0, len(args))
	for _, arg := range args {
		s, err := resolveSet(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
