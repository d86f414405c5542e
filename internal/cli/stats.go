package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/analysis"
	"github.com/SeamusWaldron/cubetrainer/internal/storage"
)

var (
	statsListLimit      int
	statsPauseThreshold time.Duration
	statsExportDir      string
	statsExportOut      string
	statsClearYes       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Inspect recorded solves",
}

var statsSummaryCmd = &cobra.Command{
	Use:   "summary <set>",
	Short: "Best time, rolling averages and slowest cases",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsSummary,
}

var statsListCmd = &cobra.Command{
	Use:   "list <set>",
	Short: "List solves, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsList,
}

var statsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsDelete,
}

var statsClearCmd = &cobra.Command{
	Use:   "clear <set>",
	Short: "Delete every solve of a set",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsClear,
}

var statsExportCmd = &cobra.Command{
	Use:   "export <set>",
	Short: "Export solves as CSV",
	Long: `Export every solve of a set as CSV. The file is named after the set and
the current time, e.g. PLL-stats-2024-05-02-09-30-00.csv. Use -o - for stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatsExport,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsSummaryCmd, statsListCmd, statsDeleteCmd, statsClearCmd, statsExportCmd)

	statsListCmd.Flags().IntVarP(&statsListLimit, "limit", "n", 20, "Number of solves to show (0 for all)")
	statsListCmd.Flags().DurationVar(&statsPauseThreshold, "pause", time.Second, "Gap between moves counted as a pause")
	statsExportCmd.Flags().StringVar(&statsExportDir, "dir", ".", "Directory to write the export to")
	statsExportCmd.Flags().StringVarP(&statsExportOut, "output", "o", "", "Output file (- for stdout)")
	statsClearCmd.Flags().BoolVarP(&statsClearYes, "yes", "y", false, "Do not ask for confirmation")
}

func listStats(cmd *cobra.Command, set string) ([]cubetrainer.SolveStat, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return storage.NewStatRepository(db).List(cmd.Context(), set)
}

func runStatsSummary(cmd *cobra.Command, args []string) error {
	stats, err := listStats(cmd, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintf(out, "No solves recorded for %q\n", args[0])
		return nil
	}
	writeSummary(out, analysis.Summarize(stats))

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tSOLVES\tBEST\tMEAN\tRECOGNITION")
	for _, c := range analysis.ByCase(stats) {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", c.Name, c.Count,
			analysis.Seconds(c.Best), analysis.Seconds(c.MeanExecution), analysis.Seconds(c.MeanRecognition))
	}
	return w.Flush()
}

func writeSummary(out io.Writer, s analysis.Summary) {
	fmt.Fprintf(out, "Solves: %d\n", s.N)
	best := "-"
	if s.HasBest {
		best = analysis.Seconds(s.Best)
	}
	fmt.Fprintf(out, "Best:   %s\n", best)
	for _, a := range s.Averages {
		fmt.Fprintf(out, "ao%-4d %s\n", a.Size, analysis.FormatAverage(a))
	}
}

func runStatsList(cmd *cobra.Command, args []string) error {
	stats, err := listStats(cmd, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(stats) == 0 {
		fmt.Fprintf(out, "No solves recorded for %q\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASE\tWHEN\tEXEC\tRECOG\tMOVES\tTPS\tPAUSES\tLONGEST\tSETUP")
	shown := 0
	for i := len(stats) - 1; i >= 0; i-- {
		if statsListLimit > 0 && shown == statsListLimit {
			break
		}
		s := stats[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%.2f\t%d\t%s\t%s\n",
			s.ID, s.Name, s.TimeOfSolve.Local().Format("2006-01-02 15:04:05"),
			analysis.Seconds(s.Execution), analysis.Seconds(s.Recognition),
			len(s.Moves), analysis.TPS(s),
			len(analysis.Pauses(s.Moves, statsPauseThreshold)),
			analysis.Seconds(analysis.LongestPause(s.Moves)),
			setupDescription(s))
		shown++
	}
	return w.Flush()
}

// setupDescription names the random variation a solve was shown with.
func setupDescription(s cubetrainer.SolveStat) string {
	desc := analysis.MoveName("U", s.AUFs)
	if y := analysis.MoveName("y", s.Ys); y != "" {
		desc = joinNonEmpty(desc, y)
	}
	if s.MirroredOverM {
		desc = joinNonEmpty(desc, "mirror M")
	}
	if s.MirroredOverS {
		desc = joinNonEmpty(desc, "mirror S")
	}
	if desc == "" {
		return "-"
	}
	return desc
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	return a + ", " + b
}

func runStatsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewStatRepository(db).Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted solve %s\n", args[0])
	return nil
}

func runStatsClear(cmd *cobra.Command, args []string) error {
	if !statsClearYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete all solves of %q? [y/N] ", args[0])
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := storage.NewStatRepository(db).DeleteAll(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d solves\n", n)
	return nil
}

func runStatsExport(cmd *cobra.Command, args []string) error {
	stats, err := listStats(cmd, args[0])
	if err != nil {
		return err
	}

	if statsExportOut == "-" {
		return analysis.WriteCSV(cmd.OutOrStdout(), stats)
	}
	path := statsExportOut
	if path == "" {
		path = filepath.Join(statsExportDir, analysis.ExportFilename(args[0], time.Now()))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := analysis.WriteCSV(f, stats); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d solves to %s\n", len(stats), path)
	return nil
}
