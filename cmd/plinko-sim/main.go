// Command plinko-sim drops balls headlessly and compares observed bins and return with the odds table
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/logger"
	"github.com/lixenwraith/plinko/outcome"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/render"
	"github.com/lixenwraith/plinko/round"
	"github.com/lixenwraith/plinko/status"
)

// Options controls one simulation run
type Options struct {
	Balls int
	Batch int
	Bet   int
	Seed  uint64
}

// Report is the outcome of a simulation run
type Report struct {
	Multipliers   []float64
	Probabilities []float64
	Targets       []int // Balls aimed at each bin
	Landed        []int // Balls that exited over each bin
	Settled       int
	Misses        int // Exit bin differs from target
	MaxTicks      int
	Expected      float64
	Observed      float64
	Metrics       map[string]int64
}

// tally records settlements
type tally struct {
	round.NopListener
	layout *board.Layout
	report *Report
}

func (t *tally) BallSettled(b *physics.Ball, _ round.Outcome) {
	r := t.report
	r.Settled++
	r.MaxTicks = max(r.MaxTicks, b.Ticks)
	if b.TargetBin >= 0 && b.TargetBin < len(r.Targets) {
		r.Targets[b.TargetBin]++
	}
	bin, ok := t.layout.BinAt(b.Pos.X)
	if ok {
		r.Landed[bin]++
	}
	if !ok || bin != b.TargetBin {
		r.Misses++
	}
}

// Simulate runs opts.Balls wagers through the full physics and settles them all
func Simulate(cfg *config.Config, opts Options, log *zap.Logger) (*Report, error) {
	if opts.Balls < 1 || opts.Batch < 1 || opts.Bet < 1 {
		return nil, errors.New("balls, batch and bet must be positive")
	}

	// Fund every wager up front so none is rejected
	cfg.Wallet.StartingBalance = opts.Balls * opts.Bet
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metrics := status.NewRegistry()
	ctrl := round.New(cfg, outcome.NewSeededSource(opts.Seed), log, metrics)
	bins := ctrl.Layout().BinCount()

	report := &Report{
		Multipliers:   ctrl.Layout().Multipliers(),
		Probabilities: outcome.Probabilities(bins, cfg.Payout.DecayRate),
		Targets:       make([]int, bins),
		Landed:        make([]int, bins),
	}
	ctrl.AddListener(&tally{layout: ctrl.Layout(), report: report})

	for dropped := 0; dropped < opts.Balls; {
		n := min(opts.Batch, opts.Balls-dropped)
		for i := 0; i < n; i++ {
			if _, ok := ctrl.PlaceWager(opts.Bet); !ok {
				return nil, fmt.Errorf("wager %d rejected at balance %d", dropped+i, ctrl.Balance())
			}
		}
		dropped += n

		for ticks := 0; ctrl.ActiveCount() > 0; ticks++ {
			if ticks > parameter.MaxFlightTicks {
				return nil, fmt.Errorf("%d balls still in flight after %d ticks", ctrl.ActiveCount(), ticks)
			}
			ctrl.Advance(parameter.FrameUpdateInterval)
		}
	}

	report.Expected = outcome.ExpectedReturn(report.Probabilities, report.Multipliers)
	report.Observed = metrics.ReturnToPlayer()
	report.Metrics = metrics.IntSnapshot()
	return report, nil
}

// Print writes the per-bin table and totals
func (r *Report) Print(out io.Writer) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "bin\tmultiplier\texpected\ttargeted\tlanded\t")
	for i, m := range r.Multipliers {
		freq := 0.0
		if r.Settled > 0 {
			freq = float64(r.Targets[i]) / float64(r.Settled)
		}
		fmt.Fprintf(tw, "%d\t%s\t%.5f\t%.5f\t%d\t\n", i, render.FormatMultiplier(m), r.Probabilities[i], freq, r.Landed[i])
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "settled      %d\n", r.Settled)
	fmt.Fprintf(out, "misses       %d\n", r.Misses)
	fmt.Fprintf(out, "max ticks    %d / %d\n", r.MaxTicks, parameter.MaxFlightTicks)
	fmt.Fprintf(out, "expected RTP %.4f\n", r.Expected)
	fmt.Fprintf(out, "observed RTP %.4f\n", r.Observed)

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, k := range []string{
		status.BallsDropped, status.BallsSettled, status.WagerTotal,
		status.PayoutTotal, status.WagerRejected, status.PinHits, status.TicksMax,
	} {
		fmt.Fprintf(tw, "%s\t%d\n", k, r.Metrics[k])
	}
	tw.Flush()
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
		os.Exit(1)
	}

	var (
		opts       Options
		configPath string
		debugLog   bool
		logDir     string
	)
	flag.StringVar(&configPath, "config", config.EnvString(config.EnvConfig, ""), "YAML config file, built-in defaults when empty")
	flag.IntVar(&opts.Balls, "n", 10000, "Balls to drop")
	flag.IntVar(&opts.Batch, "batch", 50, "Balls in flight at once")
	flag.IntVar(&opts.Bet, "bet", 1, "Wager per ball")
	flag.Uint64Var(&opts.Seed, "seed", config.EnvUint64(config.EnvSeed, 1), "Outcome seed")
	flag.BoolVar(&debugLog, "debug", config.EnvBool(config.EnvDebug, false), "Write a debug log to -logdir")
	flag.StringVar(&logDir, "logdir", config.EnvString(config.EnvLogDir, "logs"), "Debug log directory")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := logger.New(debugLog, logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	report, err := Simulate(cfg, opts, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	report.Print(os.Stdout)
}
