package analysis

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/SeamusWaldron/cubetrainer"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func execs(times ...int) []cubetrainer.SolveStat {
	stats := make([]cubetrainer.SolveStat, len(times))
	for i, t := range times {
		stats[i] = cubetrainer.SolveStat{Name: "T", Execution: ms(t)}
	}
	return stats
}

func TestSummarize(t *testing.T) {
	s := Summarize(execs(3000, 1000, 2000, 2000, 2000, 4000))
	if s.N != 6 {
		t.Errorf("N = %d, want 6", s.N)
	}
	if !s.HasBest || s.Best != ms(1000) {
		t.Errorf("best = %v, want 1s", s.Best)
	}
	want := []Average{
		{Size: 5, Value: ms(2200), OK: true},
		{Size: 12},
		{Size: 50},
		{Size: 100},
	}
	if diff := cmp.Diff(want, s.Averages); diff != "" {
		t.Errorf("averages mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.N != 0 || s.HasBest {
		t.Errorf("Summarize(nil) = %+v", s)
	}
	for _, a := range s.Averages {
		if FormatAverage(a) != "-" {
			t.Errorf("ao%d = %q, want -", a.Size, FormatAverage(a))
		}
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00"},
		{ms(1234), "1.24"},
		{ms(1230), "1.23"},
		{ms(999), "1.00"},
		{ms(61005), "61.01"},
	}
	for _, tt := range tests {
		if got := Seconds(tt.d); got != tt.want {
			t.Errorf("Seconds(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestMoveName(t *testing.T) {
	got := []string{MoveName("U", 0), MoveName("U", 1), MoveName("U", 2), MoveName("y", 3), MoveName("y", 4)}
	want := []string{"", "U", "U2", "y'", "?"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MoveName mismatch (-want +got):\n%s", diff)
	}
}

func TestByCase(t *testing.T) {
	stats := []cubetrainer.SolveStat{
		{Name: "T", Execution: ms(1000), Recognition: ms(400)},
		{Name: "H", Execution: ms(3000), Recognition: ms(200)},
		{Name: "T", Execution: ms(2000), Recognition: ms(600)},
	}
	got := ByCase(stats)
	want := []CaseStats{
		{Name: "H", Count: 1, Best: ms(3000), MeanExecution: ms(3000), MeanRecognition: ms(200)},
		{Name: "T", Count: 2, Best: ms(1000), MeanExecution: ms(1500), MeanRecognition: ms(500)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ByCase mismatch (-want +got):\n%s", diff)
	}
}

func timed(offsets ...int) []cubetrainer.TimedMove {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	moves := make([]cubetrainer.TimedMove, len(offsets))
	for i, o := range offsets {
		moves[i] = cubetrainer.TimedMove{Move: cubetrainer.U, Time: base.Add(ms(o))}
	}
	return moves
}

func TestPauses(t *testing.T) {
	moves := timed(0, 100, 1700, 1800, 4000)
	got := Pauses(moves, ms(1500))
	want := []Pause{{AfterMoveIndex: 1, Duration: ms(1600)}, {AfterMoveIndex: 3, Duration: ms(2200)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pauses mismatch (-want +got):\n%s", diff)
	}
	if got := LongestPause(moves); got != ms(2200) {
		t.Errorf("LongestPause = %v, want 2.2s", got)
	}
}

func TestTPS(t *testing.T) {
	s := cubetrainer.SolveStat{Moves: timed(0, 250, 500, 750, 1000), Execution: ms(1000)}
	if got := TPS(s); got != 5 {
		t.Errorf("TPS = %v, want 5", got)
	}
	if got := TPS(cubetrainer.SolveStat{}); got != 0 {
		t.Errorf("TPS of empty = %v, want 0", got)
	}
}

func TestWriteCSV(t *testing.T) {
	stats := []cubetrainer.SolveStat{{
		Name:          "Ja",
		TimeOfSolve:   time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC),
		Moves:         timed(0, 100, 200),
		Execution:     ms(200),
		Recognition:   ms(1500),
		AUFs:          2,
		MirroredOverS: true,
	}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, stats); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"name,timeOfSolve,moves,executionTime,recognitionTime,AUFs,Ys,mirroredOverM,mirroredOverS",
		"Ja,2024-05-02T09:30:00Z,3,200,1500,2,0,false,true",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename("PLL", time.Date(2024, 5, 2, 9, 3, 7, 0, time.UTC))
	if got != "PLL-stats-2024-05-02-09-03-07.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
