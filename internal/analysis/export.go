package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SeamusWaldron/cubetrainer"
)

var csvHeader = []string{
	"name", "timeOfSolve", "moves", "executionTime", "recognitionTime",
	"AUFs", "Ys", "mirroredOverM", "mirroredOverS",
}

// WriteCSV exports stats with one row per solve. Times are milliseconds and
// the moves column holds the move count.
func WriteCSV(w io.Writer, stats []cubetrainer.SolveStat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range stats {
		row := []string{
			s.Name,
			s.TimeOfSolve.UTC().Format(time.RFC3339Nano),
			strconv.Itoa(len(s.Moves)),
			strconv.FormatInt(s.Execution.Milliseconds(), 10),
			strconv.FormatInt(s.Recognition.Milliseconds(), 10),
			strconv.Itoa(s.AUFs),
			strconv.Itoa(s.Ys),
			strconv.FormatBool(s.MirroredOverM),
			strconv.FormatBool(s.MirroredOverS),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename names an export of set taken at t.
// Example: PLL-stats-2024-05-02-09-30-00.csv
func ExportFilename(set string, t time.Time) string {
	return fmt.Sprintf("%s-stats-%s.csv", set, t.Format("2006-01-02-15-04-05"))
}
