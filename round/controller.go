// Package round runs wagers: outcome draw, ball spawn, per-tick simulation and settlement
package round

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/outcome"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/status"
	"github.com/lixenwraith/plinko/vmath"
)

// Controller owns the session state and drives every ball from spawn to settlement
// Not safe for concurrent use; the frame loop is the only caller
type Controller struct {
	layout   *board.Layout
	sim      *physics.Simulator
	selector *outcome.Selector
	src      outcome.RandomSource
	jitter   float64

	state     State
	result    ResultDisplay
	listeners []Listener
	log       *zap.Logger

	// Cached metric pointers
	dropped  *atomic.Int64
	settled  *atomic.Int64
	inFlight *atomic.Int64
	wagered  *atomic.Int64
	wagerSet *atomic.Int64
	paid     *atomic.Int64
	rejected *atomic.Int64
	ticksMax *atomic.Int64
	pinHits  *atomic.Int64
	rtp      *status.AtomicFloat
	metrics  *status.Registry
}

// New creates a controller from a validated configuration
// src is shared by outcome draws and spawn jitter; log and metrics may be nil
func New(cfg *config.Config, src outcome.RandomSource, log *zap.Logger, metrics *status.Registry) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	layout := cfg.Layout()
	c := &Controller{
		layout:   layout,
		sim:      physics.NewSimulator(layout, cfg.Profile()),
		selector: outcome.NewSelector(cfg.Payout.DecayRate, src),
		src:      src,
		jitter:   cfg.Physics.SpawnJitter,
		state: State{
			Balance:  cfg.Wallet.StartingBalance,
			BetIndex: cfg.Wallet.BetIndex,
			Ladder:   append([]int(nil), cfg.Wallet.BetLadder...),
		},
		result:  newResultDisplay(cfg.Display.ResultDuration),
		log:     log.Named("round"),
		metrics: metrics,

		dropped:  metrics.Ints.Get(status.BallsDropped),
		settled:  metrics.Ints.Get(status.BallsSettled),
		inFlight: metrics.Ints.Get(status.BallsInFlight),
		wagered:  metrics.Ints.Get(status.WagerTotal),
		wagerSet: metrics.Ints.Get(status.WagerSettled),
		paid:     metrics.Ints.Get(status.PayoutTotal),
		rejected: metrics.Ints.Get(status.WagerRejected),
		ticksMax: metrics.Ints.Get(status.TicksMax),
		pinHits:  metrics.Ints.Get(status.PinHits),
		rtp:      metrics.Floats.Get(status.SessionReturn),
	}
	return c
}

// AddListener registers an observer for ball events
func (c *Controller) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// PlaceWager debits amount and drops a ball with a freshly drawn target bin
// Returns false with no state change when amount is not positive or exceeds the balance
func (c *Controller) PlaceWager(amount int) (*physics.Ball, bool) {
	if !c.accept(amount) {
		return nil, false
	}
	bin := c.selector.SelectBin(c.layout.BinCount())
	return c.spawn(amount, bin), true
}

// SpawnWithTarget is PlaceWager with a forced target bin, for replays and tests
func (c *Controller) SpawnWithTarget(amount, bin int) (*physics.Ball, bool) {
	if !c.accept(amount) {
		return nil, false
	}
	return c.spawn(amount, bin), true
}

// accept checks the wager against the balance, reporting rejections
func (c *Controller) accept(amount int) bool {
	if amount > 0 && amount <= c.state.Balance {
		return true
	}
	c.rejected.Add(1)
	c.log.Debug("wager rejected",
		zap.Int("amount", amount),
		zap.Int("balance", c.state.Balance),
	)
	for _, l := range c.listeners {
		l.WagerRejected(amount, c.state.Balance)
	}
	return false
}

// spawn debits the wager and adds a ball aimed at bin
func (c *Controller) spawn(amount, bin int) *physics.Ball {
	c.state.Balance -= amount

	var multiplier float64
	if b, ok := c.layout.Bin(bin); ok {
		multiplier = b.Multiplier
	}

	ball := &physics.Ball{
		Kinetic: physics.Kinetic{
			Pos: vmath.Vec2{
				X: c.layout.Geometry.CenterX() + outcome.Symmetric(c.src, c.jitter),
				Y: c.layout.DropTop,
			},
		},
		ID:        uuid.New(),
		Active:    true,
		TargetBin: bin,
		Wager:     amount,
		Payout:    Payout(amount, multiplier),
	}
	c.state.Balls = append(c.state.Balls, ball)

	c.dropped.Add(1)
	c.wagered.Add(int64(amount))
	c.inFlight.Store(int64(len(c.state.Balls)))
	c.log.Debug("ball dropped",
		zap.Stringer("ball", ball.ID),
		zap.Int("wager", amount),
		zap.Int("target_bin", bin),
		zap.Int("payout", ball.Payout),
		zap.Int("balance", c.state.Balance),
	)
	for _, l := range c.listeners {
		l.BallDropped(ball)
	}
	return ball
}

// Payout returns floor(wager * multiplier)
func Payout(wager int, multiplier float64) int {
	return int(math.Floor(float64(wager) * multiplier))
}

// Tick steps every ball once, settling those that leave the board
func (c *Controller) Tick() {
	if len(c.state.Balls) == 0 {
		return
	}

	kept := c.state.Balls[:0]
	for _, b := range c.state.Balls {
		res := c.sim.Step(b)
		if res.Contacts > 0 {
			c.pinHits.Add(int64(res.Contacts))
			for _, l := range c.listeners {
				l.PinHit(b, res.Contacts)
			}
		}
		if res.Result == physics.Settled {
			c.settle(b)
			continue
		}
		kept = append(kept, b)
	}
	// Release settled balls held by the tail of the backing array
	for i := len(kept); i < len(c.state.Balls); i++ {
		c.state.Balls[i] = nil
	}
	c.state.Balls = kept
	c.inFlight.Store(int64(len(kept)))
}

// settle credits the payout exactly once and publishes the result
func (c *Controller) settle(b *physics.Ball) {
	c.state.Balance += b.Payout
	c.result.Show(b.Payout, b.Wager, b.TargetBin)
	o := Classify(b.Payout, b.Wager)

	c.settled.Add(1)
	c.wagerSet.Add(int64(b.Wager))
	c.paid.Add(int64(b.Payout))
	status.StoreMax(c.ticksMax, int64(b.Ticks))
	c.rtp.Set(c.metrics.ReturnToPlayer())

	c.log.Debug("ball settled",
		zap.Stringer("ball", b.ID),
		zap.Int("target_bin", b.TargetBin),
		zap.Float64("exit_x", b.Pos.X),
		zap.Int("ticks", b.Ticks),
		zap.Int("payout", b.Payout),
		zap.Stringer("outcome", o),
		zap.Int("balance", c.state.Balance),
	)
	for _, l := range c.listeners {
		l.BallSettled(b, o)
	}
}

// ChangeBet moves along the bet ladder by direction's sign, clamped at both ends
func (c *Controller) ChangeBet(direction int) {
	if c.state.MoveBet(direction) {
		c.log.Debug("bet changed", zap.Int("bet", c.state.CurrentBet()))
	}
}

// RequestDrop wagers the current bet
func (c *Controller) RequestDrop() bool {
	_, ok := c.PlaceWager(c.state.CurrentBet())
	return ok
}

func (c *Controller) IncreaseBet() { c.ChangeBet(1) }
func (c *Controller) DecreaseBet() { c.ChangeBet(-1) }

// Advance runs one frame: result timer decay, then one tick for every ball
func (c *Controller) Advance(elapsed time.Duration) {
	c.result.Decay(elapsed)
	c.Tick()
}

func (c *Controller) Balance() int { return c.state.Balance }
func (c *Controller) CurrentBet() int { return c.state.CurrentBet() }
func (c *Controller) CanAfford() bool { return c.state.CurrentBet() <= c.state.Balance }
func (c *Controller) Result() ResultDisplay { return c.result }
func (c *Controller) Layout() *board.Layout { return c.layout }
func (c *Controller) Stats() *status.Registry { return c.metrics }
func (c *Controller) Balls() []*physics.Ball { return c.state.Balls }
func (c *Controller) ActiveCount() int { return len(c.state.Balls) }
func (c *Controller) BetLadder() (index int, ladder []int) {
	return c.state.BetIndex, c.state.Ladder
}
