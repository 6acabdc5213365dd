package overlay

import (
	"context"
	"time"

	"statoverlay/internal/apperrors"
	"statoverlay/internal/logging"
	"statoverlay/internal/system"
)

// Metrics is the OS metrics provider.
type Metrics interface {
	Snapshot() (*system.Sample, error)
	IdleDuration() (time.Duration, error)
}

// Window is the on-screen surface the controller drives.
type Window interface {
	SetPassthrough(enabled bool)
	SetVisible(visible bool)
	Position() (x, y int)
	Move(x, y int)
}

// PositionStore persists the window origin.
type PositionStore interface {
	SavePosition(x, y int) error
}

// Options configures a Controller.
type Options struct {
	Interval  time.Duration
	IdleAfter time.Duration
	QueueSize int          // Defaults to 64
	NewTimer  TimerFactory // Defaults to NewTickerTimer
}

// Controller owns the UI state and reacts to queued events.
type Controller struct {
	opts    Options
	metrics Metrics
	window  Window
	store   PositionStore
	log     logging.Logger

	state  State
	labels Labels
	prev   *system.Sample

	sampling  Timer
	idleCheck Timer
	queue     chan Event

	dragging bool
	dragDX   int
	dragDY   int
}

// New builds a controller in the initial state. Timers do not run until
// Start.
func New(opts Options, metrics Metrics, window Window, store PositionStore, log logging.Logger) *Controller {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.NewTimer == nil {
		opts.NewTimer = NewTickerTimer
	}
	c := &Controller{
		opts:    opts,
		metrics: metrics,
		window:  window,
		store:   store,
		log:     log,
		state:   Initial,
		labels:  Labels{Status: StatusInitializing},
		queue:   make(chan Event, opts.QueueSize),
	}
	post := func(ev Event) { c.Post(ev) }
	c.sampling = opts.NewTimer(TickSample, opts.Interval, post)
	c.idleCheck = opts.NewTimer(TickIdle, opts.Interval, post)
	return c
}

// Start puts the window in click-through mode, starts both timers and
// clears the initializing status.
func (c *Controller) Start() {
	c.window.SetPassthrough(true)
	c.sampling.Start()
	c.idleCheck.Start()
	c.labels.Status = ""
	c.log.Info("overlay started",
		logging.Duration("interval", c.opts.Interval),
		logging.Duration("idle_after", c.opts.IdleAfter))
}

// Stop halts both timers.
func (c *Controller) Stop() {
	c.sampling.Stop()
	c.idleCheck.Stop()
}

// State returns the current UI state.
func (c *Controller) State() State { return c.state }

// Labels returns the current label text.
func (c *Controller) Labels() Labels { return c.labels }

// Post enqueues ev without blocking. It reports false if the queue was
// full and the event was dropped. Safe for concurrent use.
func (c *Controller) Post(ev Event) bool {
	select {
	case c.queue <- ev:
		return true
	default:
		c.log.Warn("event queue full, dropping event")
		return false
	}
}

// Pump handles every queued event without blocking.
func (c *Controller) Pump() error {
	for {
		select {
		case ev := <-c.queue:
			if err := c.Handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Run handles events until ctx is done or a handler fails.
func (c *Controller) Run(ctx context.Context) error {
	defer c.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-c.queue:
			if err := c.Handle(ev); err != nil {
				return err
			}
		}
	}
}

// Handle processes a single event. Errors are fatal to the overlay.
func (c *Controller) Handle(ev Event) error {
	switch ev := ev.(type) {
	case Tick:
		return c.handleTick(ev)
	case Hotkey:
		c.handleHotkey(ev)
	case Mouse:
		c.handleMouse(ev)
	}
	return nil
}

func (c *Controller) handleTick(ev Tick) error {
	switch ev.Kind {
	case TickSample:
		// Ticks queued before the timer stopped are stale.
		if !c.sampling.Running() {
			return nil
		}
		return c.sample()
	case TickIdle:
		if !c.idleCheck.Running() {
			return nil
		}
		return c.checkIdle()
	}
	return nil
}

func (c *Controller) sample() error {
	cur, err := c.metrics.Snapshot()
	if err != nil {
		return apperrors.NewPlatformError("sample metrics", err)
	}
	c.labels.CPU = FormatCPU(cur)
	c.labels.Memory = FormatMemory(cur)
	c.labels.Disk = FormatDisk(c.prev, cur, c.opts.Interval)
	c.prev = cur
	return nil
}

func (c *Controller) checkIdle() error {
	idle, err := c.metrics.IdleDuration()
	if err != nil {
		return apperrors.NewPlatformError("read idle duration", err)
	}
	wasIdle := c.state.Idle()
	if idle > c.opts.IdleAfter {
		c.apply(InputIdleSeen)
	} else {
		c.apply(InputActiveSeen)
	}
	if c.state.Idle() != wasIdle {
		c.log.Info("idle state changed",
			logging.Bool("idle", c.state.Idle()),
			logging.Duration("idle_for", idle))
	}
	return nil
}

func (c *Controller) handleHotkey(ev Hotkey) {
	switch ev.Action {
	case ActionToggleDrag:
		c.apply(InputToggleDrag)
		if !c.state.Draggable() {
			c.dragging = false
		}
	case ActionToggleHide:
		c.apply(InputToggleHide)
	}
	c.log.Debug("hotkey", logging.String("action", ev.Action.String()), logging.String("state", c.state.String()))
}

func (c *Controller) handleMouse(ev Mouse) {
	if !c.state.Draggable() || !ev.Left {
		return
	}
	switch ev.Kind {
	case MousePress:
		x, y := c.window.Position()
		c.dragging = true
		c.dragDX, c.dragDY = ev.X-x, ev.Y-y
	case MouseMove:
		if c.dragging {
			c.window.Move(ev.X-c.dragDX, ev.Y-c.dragDY)
		}
	case MouseRelease:
		c.dragging = false
		x, y := c.window.Position()
		if err := c.store.SavePosition(x, y); err != nil {
			c.log.Error("failed to save window position", err, logging.Int("x", x), logging.Int("y", y))
			return
		}
		c.log.Info("window position saved", logging.Int("x", x), logging.Int("y", y))
	}
}

// apply runs a transition and performs its effects.
func (c *Controller) apply(in Input) {
	next, fx := c.state.Apply(in)
	c.state = next

	runTimerOp(c.sampling, fx.Sampling)
	runTimerOp(c.idleCheck, fx.IdleCheck)
	if fx.SetStatus {
		c.labels.Status = fx.Status
	}
	if fx.SetPassthrough {
		c.window.SetPassthrough(fx.Passthrough)
	}
	if fx.SetVisible {
		c.window.SetVisible(fx.Visible)
	}
}

func runTimerOp(t Timer, op TimerOp) {
	switch op {
	case TimerStart:
		t.Start()
	case TimerStop:
		t.Stop()
	}
}
