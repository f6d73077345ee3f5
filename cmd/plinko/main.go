package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/game"
	"github.com/lixenwraith/plinko/logger"
	"github.com/lixenwraith/plinko/outcome"
	"github.com/lixenwraith/plinko/round"
	"github.com/lixenwraith/plinko/status"
)

// options are the command line settings, defaulted from PLINKO_* variables and .env
type options struct {
	configPath string
	seed       uint64
	debug      bool
	logDir     string
	mute       bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", config.EnvString(config.EnvConfig, ""), "YAML config file, built-in defaults when empty")
	flag.Uint64Var(&o.seed, "seed", config.EnvUint64(config.EnvSeed, 0), "Outcome seed, 0 seeds from the system")
	flag.BoolVar(&o.debug, "debug", config.EnvBool(config.EnvDebug, false), "Write a debug log to -logdir")
	flag.StringVar(&o.logDir, "logdir", config.EnvString(config.EnvLogDir, "logs"), "Debug log directory")
	flag.BoolVar(&o.mute, "mute", config.EnvBool(config.EnvMute, false), "Start muted, 'm' toggles")
	flag.Parse()
	return o
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(parseFlags()))
}

func run(opts options) (code int) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, closeLog, err := logger.New(opts.debug, opts.logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer closeLog()

	src := outcome.NewSource()
	if opts.seed != 0 {
		src = outcome.NewSeededSource(opts.seed)
	}
	metrics := status.NewRegistry()
	ctrl := round.New(cfg, src, log, metrics)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: restore the terminal, then let the remaining defers flush the log
	defer recoverCrash(&code, screen, log, os.Stderr)

	clock := engine.NewTimeProvider()

	// Audio is optional, the game runs silently without a device
	sounds := audio.NewSoundManager(nil, clock, log)
	if err := sounds.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sounds.Cleanup()
	sounds.SetMuted(opts.mute)
	ctrl.AddListener(sounds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := game.New(screen, ctrl, sounds, clock, log).Run(ctx)
	screen.Fini()

	if runErr != nil {
		log.Error("game loop failed", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "Game loop failed: %v\n", runErr)
		return 1
	}

	fmt.Printf("Final balance $%d after %d balls (session RTP %.1f%%)\n",
		ctrl.Balance(),
		metrics.Ints.Get(status.BallsSettled).Load(),
		metrics.ReturnToPlayer()*100,
	)
	return 0
}

// recoverCrash turns a panic into exit code 1 after restoring the terminal and logging the stack
// Must be deferred directly so recover sees the panic
func recoverCrash(code *int, screen tcell.Screen, log *zap.Logger, stderr io.Writer) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()
	screen.Fini()
	log.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", stack))
	fmt.Fprintf(stderr, "\n\x1b[31mPLINKO CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\n%s\n", stack)
	*code = 1
}
