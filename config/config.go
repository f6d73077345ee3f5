// Package config assembles the board, physics, payout and wallet settings
// Defaults are compiled in; a YAML file may override any subset
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
)

// Config is the complete game configuration
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Physics PhysicsConfig `yaml:"physics"`
	Payout  PayoutConfig  `yaml:"payout"`
	Wallet  WalletConfig  `yaml:"wallet"`
	Display DisplayConfig `yaml:"display"`
}

type BoardConfig struct {
	Width        float64 `yaml:"width" validate:"gt=0"`
	Rows         int     `yaml:"rows" validate:"min=1"`
	PinBaseCount int     `yaml:"pin_base_count" validate:"min=1"`
	PinRadius    float64 `yaml:"pin_radius" validate:"gte=0"`
	PinSpacingX  float64 `yaml:"pin_spacing_x" validate:"gt=0"`
	PinSpacingY  float64 `yaml:"pin_spacing_y" validate:"gt=0"`
	StartY       float64 `yaml:"start_y"`
	DropTop      float64 `yaml:"drop_top"`
	ExitMargin   float64 `yaml:"exit_margin" validate:"gte=0"`
}

type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	BallRadius       float64 `yaml:"ball_radius" validate:"gt=0"`
	Friction         float64 `yaml:"friction" validate:"gt=0,lte=1"`
	BounceDamping    float64 `yaml:"bounce_damping" validate:"gt=0,lte=1"`
	GuidanceStrength float64 `yaml:"guidance_strength" validate:"gte=0"`
	GuidanceExponent float64 `yaml:"guidance_exponent" validate:"gte=0"`
	GuidanceDamping  float64 `yaml:"guidance_damping" validate:"gte=0,lt=1"`
	SpawnJitter      float64 `yaml:"spawn_jitter" validate:"gte=0"`
}

type PayoutConfig struct {
	Multipliers []float64 `yaml:"multipliers" validate:"min=1,dive,gte=0"`
	DecayRate   float64   `yaml:"decay_rate" validate:"gte=0"`
}

type WalletConfig struct {
	StartingBalance int   `yaml:"starting_balance" validate:"gte=0"`
	BetLadder       []int `yaml:"bet_ladder" validate:"min=1,dive,gt=0"`
	BetIndex        int   `yaml:"bet_index"`
}

type DisplayConfig struct {
	ResultDuration time.Duration `yaml:"result_duration" validate:"gt=0"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:        parameter.BoardWidth,
			Rows:         parameter.PinRows,
			PinBaseCount: parameter.PinBaseCount,
			PinRadius:    parameter.PinRadius,
			PinSpacingX:  parameter.PinSpacingX,
			PinSpacingY:  parameter.PinSpacingY,
			StartY:       parameter.PinStartY,
			DropTop:      parameter.DropTopY,
			ExitMargin:   parameter.ExitMargin,
		},
		Physics: PhysicsConfig{
			Gravity:          parameter.Gravity,
			BallRadius:       parameter.BallRadius,
			Friction:         parameter.Friction,
			BounceDamping:    parameter.BounceDamping,
			GuidanceStrength: parameter.GuidanceStrength,
			GuidanceExponent: parameter.GuidanceExponent,
			GuidanceDamping:  parameter.GuidanceDamping,
			SpawnJitter:      parameter.SpawnJitter,
		},
		Payout: PayoutConfig{
			Multipliers: append([]float64(nil), parameter.PrizeMultipliers...),
			DecayRate:   parameter.OutcomeDecayRate,
		},
		Wallet: WalletConfig{
			StartingBalance: parameter.StartingBalance,
			BetLadder:       append([]int(nil), parameter.BetLadder...),
			BetIndex:        parameter.DefaultBetIndex,
		},
		Display: DisplayConfig{
			ResultDuration: parameter.ResultDisplayDuration,
		},
	}
}

// Load reads a YAML override file on top of Default and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting, joined
// Field ranges come from the validate tags; ladder order and the start index are checked here
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			add("%s must satisfy %s, got %v", fieldPath(fe), rule(fe), fe.Value())
		}
	}

	w := c.Wallet
	for i := 1; i < len(w.BetLadder); i++ {
		if w.BetLadder[i] <= w.BetLadder[i-1] {
			add("wallet.bet_ladder must be strictly increasing at index %d", i)
		}
	}
	if w.BetIndex < 0 || w.BetIndex >= len(w.BetLadder) {
		add("wallet.bet_index %d out of range", w.BetIndex)
	}

	return errors.Join(errs...)
}

// Geometry returns the board geometry
func (c *Config) Geometry() board.Geometry {
	b := c.Board
	return board.Geometry{
		Width:      b.Width,
		StartY:     b.StartY,
		DropTop:    b.DropTop,
		SpacingX:   b.PinSpacingX,
		SpacingY:   b.PinSpacingY,
		PinRadius:  b.PinRadius,
		ExitMargin: b.ExitMargin,
		BaseCount:  b.PinBaseCount,
	}
}

// Layout builds the board described by the configuration
func (c *Config) Layout() *board.Layout {
	return board.NewLayout(c.Geometry(), c.Board.Rows, c.Payout.Multipliers)
}

// Profile returns the physics profile for the simulator
func (c *Config) Profile() physics.Profile {
	p := c.Physics
	return physics.Profile{
		Gravity:          p.Gravity,
		BallRadius:       p.BallRadius,
		Friction:         p.Friction,
		BounceDamping:    p.BounceDamping,
		GuidanceStrength: p.GuidanceStrength,
		GuidanceExponent: p.GuidanceExponent,
		GuidanceDamping:  p.GuidanceDamping,
	}
}
