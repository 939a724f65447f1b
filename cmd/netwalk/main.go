// netwalk runs one traversal over an input document and prints the
// first-hit step count.
//
// Usage:
//
//	netwalk [--mode single|multi] [--max-steps N] <input-file>
//
// In single mode one token walks from AAA until it reaches ZZZ. In
// multi mode every ID ending in 'A' starts a token, every ID ending in
// 'Z' is accepting, and the synchronized (LCM) step count is printed.
// The mode falls back to $NETWALK_MODE, then to single. On any error
// the command reports it and exits nonzero — it never substitutes a
// default answer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netwalk/core"
	"github.com/katalvlaran/netwalk/parse"
	"github.com/katalvlaran/netwalk/walk"
)

const modeEnv = "NETWALK_MODE"

// Fixed population selectors of the input format.
const (
	singleStart       = core.NodeID("AAA")
	singleTarget      = core.NodeID("ZZZ")
	startMarker  byte = 'A'
	targetMarker byte = 'Z'
)

var (
	flagMode     string
	flagMaxSteps int
)

var rootCmd = &cobra.Command{
	Use:   "netwalk [input-file]",
	Short: "Walk a two-way network and print the first-hit step count",
	Long: `netwalk parses a two-section input document (an L/R instruction line,
a blank line, then "ID = (LEFT, RIGHT)" node lines) and walks it:

  single  one token from AAA until ZZZ
  multi   all IDs ending in A, synchronized against all IDs ending in Z`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", "",
		"traversal mode: single or multi (default $NETWALK_MODE, then single)")
	rootCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 0,
		"step bound per walk (0 = no bound; unset = engine default)")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	instructions, nw, err := parse.Document(string(data))
	if err != nil {
		return err
	}

	mode := flagMode
	if mode == "" {
		mode = os.Getenv(modeEnv)
	}
	if mode == "" {
		mode = "single"
	}

	var opts []walk.Option
	if cmd.Flags().Changed("max-steps") {
		opts = append(opts, walk.WithMaxSteps(flagMaxSteps))
	}

	var steps uint64
	switch mode {
	case "single":
		res, werr := walk.Walk(nw, singleStart, core.NewTargetSet(singleTarget), instructions, opts...)
		if werr != nil {
			return werr
		}
		steps = res.Steps
	case "multi":
		starts := nw.NodesEndingIn(startMarker)
		targets := core.NewTargetSet(nw.NodesEndingIn(targetMarker)...)
		combined, werr := walk.SynchronizedSteps(nw, starts, targets, instructions, opts...)
		if werr != nil {
			return werr
		}
		steps = combined
	default:
		return fmt.Errorf("unknown mode %q (want single or multi)", mode)
	}

	fmt.Fprintln(cmd.OutOrStdout(), steps)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
