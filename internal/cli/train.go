package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
	"github.com/SeamusWaldron/cubetrainer/internal/device"
	"github.com/SeamusWaldron/cubetrainer/internal/logging"
	"github.com/SeamusWaldron/cubetrainer/internal/metrics"
	"github.com/SeamusWaldron/cubetrainer/internal/storage"
	"github.com/SeamusWaldron/cubetrainer/internal/trainer"
)

var (
	trainSim         bool
	trainDevice      string
	trainMetricsAddr string
)

var trainCmd = &cobra.Command{
	Use:   "train <set>",
	Short: "Drill an alg set on the cube",
	Long: `Start the interactive trainer on an alg set. Each case is shown by its
setup: turn the cube into the displayed state, then solve it. Recognition
time runs from the case appearing to your first turn, execution time from
the first turn to the solve.

A preset name (PLL, OLL, F2L, Advanced F2L) is imported on first use.

Keys:
  ctrl+n  - Skip the current case
  ctrl+r  - Restart the playlist
  ctrl+p  - Cycle playlist mode (ordered, shuffle, random)
  ctrl+l  - Cycle loop mode (no loop, loop, loop1)
  esc     - Quit

With --sim, type moves into the prompt and press enter.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().BoolVar(&trainSim, "sim", false, "Use a simulated cube driven from the keyboard")
	trainCmd.Flags().StringVar(&trainDevice, "device", "", "GoCube address to connect to (default: first found)")
	trainCmd.Flags().StringVar(&trainMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
}

func runTrain(cmd *cobra.Command, args []string) error {
	settings, settingsFile, err := loadSettings()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI from here on.
	logFile, err := logging.OpenFile(filepath.Join(filepath.Dir(settingsFile), "logs"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.Init(logging.Level(verbose), logFormat, logFile)
	logger := logging.New("cli")

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	set, err := resolveSet(cmd, storage.NewAlgSetRepository(db), args[0])
	if err != nil {
		return err
	}
	statRepo := storage.NewStatRepository(db)
	history, err := statRepo.List(cmd.Context(), set.Name)
	if err != nil {
		return err
	}

	rec := metrics.New()
	machine, err := trainer.New(set, settings,
		trainer.WithStatsStore(statRepo),
		trainer.WithMetrics(rec),
	)
	if err != nil {
		return err
	}

	var source device.Source
	var sim *device.Simulator
	if trainSim {
		sim = device.NewSimulator()
		source = sim
	} else {
		gc, err := device.NewGoCube(trainDevice)
		if err != nil {
			return fmt.Errorf("BLE not available (try --sim): %w", err)
		}
		source = gc
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan trainer.Event, 64)

	model := newTrainModel(set.Name, machine.State(), history, sim)
	program := tea.NewProgram(model, tea.WithAltScreen())
	model.dispatch = func(ev trainer.Event) { sendEvent(ctx, events, ev) }
	model.saveSettings = func(s config.Settings) error { return config.Save(settingsFile, s) }

	// The machine never waits on the UI; a burst of moves collapses into
	// the newest state.
	states := newMailbox[trainer.State]()
	solved := newMailbox[cubetrainer.SolveStat]()
	machine.OnChange(states.Put)
	machine.OnSolve(solved.Put)
	g.Go(func() error { return states.deliver(ctx, func(s trainer.State) { program.Send(stateMsg(s)) }) })
	g.Go(func() error { return solved.deliver(ctx, func(s cubetrainer.SolveStat) { program.Send(solvedMsg(s)) }) })

	g.Go(func() error { return machine.Run(ctx, events) })

	devEvents := make(chan device.Event, 64)
	g.Go(func() error {
		err := source.Run(ctx, devEvents)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("device stopped", "source", source.Name(), "error", err)
			program.Send(deviceErrMsg{err: err})
		}
		return nil
	})
	notices := newMailbox[tea.Msg]()
	g.Go(func() error { return notices.deliver(ctx, program.Send) })
	g.Go(func() error { return pumpDevice(ctx, devEvents, events, notices.Put) })

	changes := make(chan config.Change)
	g.Go(func() error {
		if err := config.NewWatcher(settingsFile, settings, logging.New("config")).Run(ctx, changes); err != nil {
			logger.Warn("settings watcher stopped", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case c := <-changes:
				if !sendEvent(ctx, events, trainer.SettingsChanged{Settings: c.Settings, Fields: c.Fields}) {
					return nil
				}
			}
		}
	})

	if trainMetricsAddr != "" {
		g.Go(func() error {
			logger.Info("serving metrics", "addr", trainMetricsAddr)
			return rec.Serve(ctx, trainMetricsAddr)
		})
	}

	// Building the move table takes a moment; the first case is selected
	// straight away and drawn once the puzzle is ready.
	g.Go(func() error {
		if !sendEvent(ctx, events, trainer.SelectEntry{Index: -1, At: time.Now()}) {
			return nil
		}
		sendEvent(ctx, events, trainer.PuzzleReady{Puzzle: cube.New()})
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		program.Quit()
		return nil
	})

	_, runErr := program.Run()
	cancel()
	if sim != nil {
		sim.Close()
	}
	err = g.Wait()
	machine.Wait()

	if runErr != nil {
		return runErr
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pumpDevice converts device events into trainer events. Battery reports go
// straight to the UI.
func pumpDevice(ctx context.Context, in <-chan device.Event, out chan<- trainer.Event, ui func(tea.Msg)) error {
	for {
		var ev device.Event
		select {
		case <-ctx.Done():
			return nil
		case ev = <-in:
		}

		var te trainer.Event
		switch ev.Kind {
		case device.KindMove:
			te = trainer.MoveReceived{Move: ev.Move, At: ev.At}
		case device.KindConnected:
			te = trainer.DeviceConnected{}
		case device.KindDisconnected:
			te = trainer.DeviceDisconnected{}
		case device.KindBattery:
			ui(batteryMsg(ev.Battery))
			continue
		default:
			continue
		}
		if !sendEvent(ctx, out, te) {
			return nil
		}
	}
}

func sendEvent(ctx context.Context, out chan<- trainer.Event, ev trainer.Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
