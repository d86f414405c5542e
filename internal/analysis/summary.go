// Package analysis summarises solve statistics: best times, rolling
// averages, per-case breakdowns and pacing within a solve.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/SeamusWaldron/cubetrainer"
)

// AverageSizes are the rolling windows shown in summaries.
var AverageSizes = []int{5, 12, 50, 100}

// Average is the plain mean execution time of the last Size solves.
type Average struct {
	Size  int
	Value time.Duration
	OK    bool // false when fewer than Size solves exist
}

// Summary collects the headline numbers for one alg set.
type Summary struct {
	N        int
	Best     time.Duration
	HasBest  bool
	Averages []Average
}

// Summarize computes best and rolling averages over stats, oldest first.
func Summarize(stats []cubetrainer.SolveStat) Summary {
	s := Summary{N: len(stats)}
	for i, st := range stats {
		if i == 0 || st.Execution < s.Best {
			s.Best = st.Execution
		}
	}
	s.HasBest = len(stats) > 0
	for _, n := range AverageSizes {
		s.Averages = append(s.Averages, averageOfLast(stats, n))
	}
	return s
}

func averageOfLast(stats []cubetrainer.SolveStat, n int) Average {
	avg := Average{Size: n}
	if n <= 0 || len(stats) < n {
		return avg
	}
	var total time.Duration
	for _, st := range stats[len(stats)-n:] {
		total += st.Execution
	}
	avg.Value = total / time.Duration(n)
	avg.OK = true
	return avg
}

// CaseStats is the breakdown for one entry of a set.
type CaseStats struct {
	Name            string
	Count           int
	Best            time.Duration
	MeanExecution   time.Duration
	MeanRecognition time.Duration
}

// ByCase groups stats by entry name, slowest mean execution first.
func ByCase(stats []cubetrainer.SolveStat) []CaseStats {
	byName := make(map[string]*CaseStats)
	totals := make(map[string][2]time.Duration)
	for _, st := range stats {
		c, ok := byName[st.Name]
		if !ok {
			c = &CaseStats{Name: st.Name, Best: st.Execution}
			byName[st.Name] = c
		}
		c.Count++
		if st.Execution < c.Best {
			c.Best = st.Execution
		}
		t := totals[st.Name]
		totals[st.Name] = [2]time.Duration{t[0] + st.Execution, t[1] + st.Recognition}
	}

	out := make([]CaseStats, 0, len(byName))
	for name, c := range byName {
		t := totals[name]
		c.MeanExecution = t[0] / time.Duration(c.Count)
		c.MeanRecognition = t[1] / time.Duration(c.Count)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanExecution != out[j].MeanExecution {
			return out[i].MeanExecution > out[j].MeanExecution
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Seconds formats d as seconds with two decimals, rounding up to the next
// hundredth. Example: 1234ms is "1.24".
func Seconds(d time.Duration) string {
	cs := (d.Milliseconds() + 9) / 10
	return fmt.Sprintf("%d.%02d", cs/100, cs%100)
}

// FormatAverage renders an average, or "-" when there are too few solves.
func FormatAverage(a Average) string {
	if !a.OK {
		return "-"
	}
	return Seconds(a.Value)
}

// MoveName renders n quarter turns of base: "", "U", "U2", "U'".
func MoveName(base string, n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return base
	case 2:
		return base + "2"
	case 3:
		return base + "'"
	default:
		return "?"
	}
}

// TPS returns turns per second over the execution of stat.
func TPS(stat cubetrainer.SolveStat) float64 {
	if stat.Execution <= 0 {
		return 0
	}
	return float64(len(stat.Moves)) / stat.Execution.Seconds()
}

// Pause is a gap between two consecutive moves.
type Pause struct {
	AfterMoveIndex int
	Duration       time.Duration
}

// Pauses finds every gap of at least threshold in moves.
func Pauses(moves []cubetrainer.TimedMove, threshold time.Duration) []Pause {
	var pauses []Pause
	for i := 1; i < len(moves); i++ {
		gap := moves[i].Time.Sub(moves[i-1].Time)
		if gap >= threshold {
			pauses = append(pauses, Pause{AfterMoveIndex: i - 1, Duration: gap})
		}
	}
	return pauses
}

// LongestPause returns the largest gap between consecutive moves.
func LongestPause(moves []cubetrainer.TimedMove) time.Duration {
	var longest time.Duration
	for i := 1; i < len(moves); i++ {
		if gap := moves[i].Time.Sub(moves[i-1].Time); gap > longest {
			longest = gap
		}
	}
	return longest
}
