package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Commands are entered at the prompt
without the program name, and stored sets live until the session ends.
Type 'exit' or 'quit' to leave.`,
	Aliases: []string{"i", "shell"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(in io.Reader, out, errOut io.Writer) error {
	fmt.Fprintln(out, "Type 'help' for available commands or 'exit' to quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		if err := executeLine(input, out, errOut); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// executeLine runs one line of input through the root command.
func executeLine(input string, out, errOut io.Writer) error {
	args, err := shellwords.NewParser().Parse(input)
	if err != nil {
		return fmt.Errorf("parsing command: %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	if args[0] == "interactive" || args[0] == "i" || args[0] == "shell" {
		return fmt.Errorf("already in an interactive session")
	}

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SilenceErrors = true
	defer func() {
		rootCmd.SetArgs(os.Args[1:])
		rootCmd.SilenceErrors = false
		resetFlags()
	}()
	return rootCmd.Execute()
}

// resetFlags restores flag defaults so values do not leak between lines.
func resetFlags() {
	verbose = false
	setLabels = ""
	selectOp = "union"
}
