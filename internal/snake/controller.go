package snake

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Observer receives every state the Controller publishes. Observers run with
// the controller lock held and must not call back into the Controller.
type Observer func(State)

// Options configures a Controller. Zero values select defaults.
type Options struct {
	// Clock drives the tick. Defaults to the real clock.
	Clock clockwork.Clock

	// Rand supplies food placement. Defaults to a source seeded from Clock.
	Rand *rand.Rand

	// Logger receives lifecycle events. Defaults to a discarding logger.
	Logger *log.Logger
}

// Controller owns the authoritative State of one game session and advances
// it on a fixed tick. All methods are safe for concurrent use; control calls
// and tick callbacks are serialised so they never interleave.
type Controller struct {
	mu     sync.Mutex
	cfg    config.GameConfig
	clock  clockwork.Clock
	rng    *rand.Rand
	logger *log.Logger
	state  State

	// armed is set once the session has been started; a reset re-arms the
	// tick only for started sessions.
	armed bool

	// At most one ticker is active. gen identifies it so that a tick already
	// in flight when the ticker is replaced is dropped.
	ticker clockwork.Ticker
	done   chan struct{}
	gen    uint64

	observers map[int]Observer
	nextObsID int
}

// NewController validates cfg and builds a controller holding a fresh
// initial state. The game is PLAYING but the tick stays inactive until Start.
func NewController(cfg config.GameConfig, opts Options) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	c := &Controller{
		cfg:       cfg,
		clock:     opts.Clock,
		rng:       opts.Rand,
		logger:    opts.Logger,
		observers: make(map[int]Observer),
	}
	c.state = NewState(cfg, c.rng)
	return c, nil
}

// Subscribe registers an observer and returns a function that removes it.
func (c *Controller) Subscribe(o Observer) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextObsID
	c.nextObsID++
	c.observers[id] = o

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Start begins or continues play. A running game is left alone, a paused
// game resumes, and a finished game is replaced by a new one first.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.Status {
	case StatusPlaying:
		if c.ticker != nil {
			return
		}
		c.logger.Info("game started", "board", c.cfg.BoardSize, "tick", c.cfg.TickInterval)
	case StatusPaused:
		c.state.Status = StatusPlaying
		c.logger.Info("game resumed", "score", c.state.Score)
	case StatusGameOver:
		c.state = NewState(c.cfg, c.rng)
		c.logger.Info("game restarted", "board", c.cfg.BoardSize)
	}

	c.armed = true
	c.startTicking()
	c.publish()
}

// TogglePause pauses a running game or resumes a paused one.
// It does nothing once the game is over.
func (c *Controller) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.Status {
	case StatusPlaying:
		c.pause()
	case StatusPaused:
		c.resume()
	case StatusGameOver:
	}
}

// Pause freezes a running game.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status == StatusPlaying {
		c.pause()
	}
}

// Resume continues a paused game.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status == StatusPaused {
		c.resume()
	}
}

func (c *Controller) pause() {
	c.stopTicking()
	c.state.Status = StatusPaused
	c.logger.Info("game paused", "score", c.state.Score)
	c.publish()
}

func (c *Controller) resume() {
	c.state.Status = StatusPlaying
	c.armed = true
	c.startTicking()
	c.logger.Info("game resumed", "score", c.state.Score)
	c.publish()
}

// Reset discards the current game, cancelling any pending tick, and replaces
// it with a fresh initial state. A started session keeps ticking with the
// new game.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTicking()
	c.state = NewState(c.cfg, c.rng)
	c.logger.Info("game reset")
	if c.armed {
		c.startTicking()
	}
	c.publish()
}

// ChangeDirection steers the snake for the next tick. It is ignored unless
// the game is playing and d is not a reversal of the current heading.
// The last accepted request before a tick wins.
func (c *Controller) ChangeDirection(d core.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := ChangeDirection(c.state, d)
	if next.Direction == c.state.Direction {
		return
	}
	c.state = next
	c.publish()
}

// Stop cancels the tick. The state is kept; Start begins ticking again.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armed = false
	c.stopTicking()
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.GameConfig {
	return c.cfg
}

// Running reports whether the game is playing.
func (c *Controller) Running() bool {
	return c.State().Status == StatusPlaying
}

// Paused reports whether the game is paused.
func (c *Controller) Paused() bool {
	return c.State().Status == StatusPaused
}

// GameOver reports whether the game has ended, by a collision or a win.
func (c *Controller) GameOver() bool {
	return c.State().Status == StatusGameOver
}

// Ticking reports whether a tick is currently scheduled.
func (c *Controller) Ticking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticker != nil
}

// startTicking installs a new ticker, cancelling the previous one first.
// Must be called with mu held.
func (c *Controller) startTicking() {
	c.stopTicking()

	c.gen++
	c.ticker = c.clock.NewTicker(c.cfg.TickInterval)
	c.done = make(chan struct{})
	go c.loop(c.gen, c.ticker, c.done)
}

// stopTicking cancels the active ticker, if any. Must be called with mu held.
func (c *Controller) stopTicking() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}

func (c *Controller) loop(gen uint64, ticker clockwork.Ticker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.Chan():
			c.tick(gen)
		}
	}
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A stale generation means the ticker was cancelled after this tick fired.
	if gen != c.gen || c.ticker == nil || c.state.Status != StatusPlaying {
		return
	}

	c.state = Update(c.state, c.cfg, c.rng)
	if c.state.Status == StatusGameOver {
		c.stopTicking()
		c.logger.Info("game over",
			"score", c.state.Score,
			"length", len(c.state.Snake),
			"won", c.state.Won(c.cfg.MaxScore),
		)
	}
	c.publish()
}

// publish hands the current state to every observer. Must be called with mu held.
func (c *Controller) publish() {
	for _, o := range c.observers {
		o(c.state)
	}
}
