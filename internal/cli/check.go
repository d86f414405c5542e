package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
	"github.com/SeamusWaldron/cubetrainer/internal/render"
	"github.com/SeamusWaldron/cubetrainer/internal/solvecheck"
	"github.com/SeamusWaldron/cubetrainer/internal/stickering"
)

var (
	checkSolved string
	checkCase   bool
	checkMask   bool
	checkPlain  bool
)

var checkCmd = &cobra.Command{
	Use:   "check <moves>",
	Short: "Apply moves to a solved cube and report what is solved",
	Long: `Apply moves to a solved cube and print the resulting net, the solved
regions and whether a target solved state holds.

With --case the moves are treated as an algorithm: the cube is set up with
its inverse, as the trainer would present it.

Examples:
  cubetrainer check "R U R' U'"
  cubetrainer check --case --solved F2L --mask "R U R' U' R' F R F'"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkSolved, "solved", "", "Target solved state, e.g. \"F2L | UEDGEFACES\" (default FULL)")
	checkCmd.Flags().BoolVar(&checkCase, "case", false, "Set up the inverse of the moves")
	checkCmd.Flags().BoolVar(&checkMask, "mask", false, "Hide stickers the target does not care about")
	checkCmd.Flags().BoolVar(&checkPlain, "plain", false, "Print letters without colour")
}

func runCheck(cmd *cobra.Command, args []string) error {
	alg, err := cubetrainer.ParseAlg(args[0])
	if err != nil {
		return err
	}
	target, err := cubetrainer.ParseSolvedState(checkSolved)
	if err != nil {
		return err
	}
	if checkCase {
		alg = alg.Invert()
	}

	puzzle := cube.New()
	pat, err := puzzle.DefaultPattern().ApplyAlg(alg)
	if err != nil {
		return err
	}
	satisfied, err := solvecheck.Satisfied(pat)
	if err != nil {
		return err
	}
	solved, err := solvecheck.IsSolved(pat, target)
	if err != nil {
		return err
	}
	reid, err := solvecheck.ReidString(pat)
	if err != nil {
		return err
	}
	misplaced, err := solvecheck.Misplaced(pat)
	if err != nil {
		return err
	}

	var mask stickering.Mask
	if checkMask {
		mask = stickering.Generate(pat, target)
	}
	var opts []render.Option
	if checkPlain {
		opts = append(opts, render.WithPlain())
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.New(puzzle, opts...).Net(pat, mask))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves:     %s\n", alg)
	fmt.Fprintf(out, "Pieces:    %s\n", reid)
	fmt.Fprintf(out, "Misplaced: %s\n", placementList(misplaced))
	fmt.Fprintf(out, "Solved:    %s\n", satisfiedList(satisfied))
	fmt.Fprintf(out, "%-10s %v\n", target.String()+":", solved)
	return nil
}

func placementList(ps []solvecheck.Placement) string {
	if len(ps) == 0 {
		return "none"
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

// satisfiedList names each flag separately so partial progress stays
// readable.
func satisfiedList(s cubetrainer.SolvedState) string {
	var names []string
	for _, f := range cubetrainer.Flags {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return "nothing"
	}
	return strings.Join(names, " ")
}
