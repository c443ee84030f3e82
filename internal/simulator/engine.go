package simulator

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stigoleg/key-presser/internal/platform"
	"github.com/stigoleg/key-presser/internal/schedule"
)

type timerSlot int

const (
	pressSlot timerSlot = iota
	releaseSlot
	elapsedSlot
	runForSlot
	numSlots
)

// armed is a pending callback. A callback only runs if its token still
// matches the slot's token when it acquires the engine lock.
type armed struct {
	handle schedule.Handle
	token  uint64
}

// Engine runs simulation sessions. All handlers and public methods are
// serialized by the engine's mutex.
type Engine struct {
	mu      sync.Mutex
	sched   schedule.Scheduler
	inj     platform.Injector
	display Display
	draw    *drawer
	newID   func() string

	cfg      Config
	state    SessionState
	interval time.Duration
	done     chan struct{}

	seq   uint64
	slots [numSlots]armed
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for key, interval and hold draws.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.draw = newDrawer(rnd)
	}
}

// WithIDGenerator overrides how session IDs are created.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// New creates a stopped engine. A nil display discards notifications.
func New(sched schedule.Scheduler, inj platform.Injector, display Display, opts ...Option) *Engine {
	if display == nil {
		display = NopDisplay{}
	}
	e := &Engine{
		sched:   sched,
		inj:     inj,
		display: display,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.draw == nil {
		e.draw = newDrawer(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return e
}

// Start begins a session with cfg. An invalid cfg is rejected with an error
// wrapping ErrInvalidConfiguration and leaves the engine untouched.
func (e *Engine) Start(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Running {
		return ErrAlreadyRunning
	}

	e.cfg = cfg.clone()
	e.state = SessionState{
		ID:        e.newID(),
		Running:   true,
		StartTime: e.sched.Now(),
	}
	e.done = make(chan struct{})

	e.interval = e.draw.duration(e.cfg.Interval)
	e.armLocked(pressSlot, e.interval, e.onPressLocked)
	e.armLocked(elapsedSlot, time.Second, e.onElapsedLocked)
	if e.cfg.RunFor > 0 {
		e.armLocked(runForSlot, e.cfg.RunFor, e.onRunForLocked)
	}

	log.Printf("engine: session %s started keys=[%s] interval=%s hold=%s run_for=%s",
		e.state.ID, e.cfg.KeyList(), e.cfg.Interval, e.cfg.Hold, e.cfg.RunFor)

	e.display.Status(StatusText(e.cfg))
	e.display.Counter(0)
	e.display.Elapsed(formatElapsed(e.state))
	return nil
}

// Stop ends the running session, cancelling every pending schedule and
// releasing the configured keys if one is held. Calling Stop on a stopped
// engine does nothing.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked(StatusStopped)
}

// Running reports whether a session is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Running
}

// State returns a snapshot of the current or last session.
func (e *Engine) State() SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Config returns the configuration of the current or last session.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.clone()
}

// Done returns a channel that is closed when the current session ends. It
// is already closed when no session has been started.
func (e *Engine) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return e.done
}

func (e *Engine) stopLocked(status string) {
	if !e.state.Running {
		return
	}

	e.state.Running = false
	for slot := timerSlot(0); slot < numSlots; slot++ {
		e.cancelLocked(slot)
	}
	if e.state.KeyHeld {
		e.releaseAllLocked()
	}
	e.state.Elapsed = e.sched.Now().Sub(e.state.StartTime)
	close(e.done)

	log.Printf("engine: session %s %s after %s presses=%d",
		e.state.ID, status, formatElapsed(e.state), e.state.PressCount)

	e.display.Elapsed(formatElapsed(e.state))
	e.display.Status(status)
}

// onPressLocked presses one random key and schedules both its release and
// the next press. A tick that arrives while a key is still held only re-arms
// itself with the current interval.
func (e *Engine) onPressLocked() {
	if !e.state.Running {
		return
	}
	if e.state.KeyHeld {
		e.armLocked(pressSlot, e.interval, e.onPressLocked)
		return
	}

	key := e.draw.key(e.cfg.Keys)
	e.inj.Press(key)
	e.state.KeyHeld = true
	e.state.LastKey = key

	e.armLocked(releaseSlot, e.draw.duration(e.cfg.Hold), e.onReleaseLocked)

	e.interval = e.draw.duration(e.cfg.Interval)
	e.armLocked(pressSlot, e.interval, e.onPressLocked)

	e.state.PressCount++
	e.display.Counter(e.state.PressCount)
}

func (e *Engine) onReleaseLocked() {
	if e.state.KeyHeld {
		e.releaseAllLocked()
	}
}

func (e *Engine) onElapsedLocked() {
	if !e.state.Running {
		return
	}
	e.state.Elapsed = e.sched.Now().Sub(e.state.StartTime)
	e.display.Elapsed(formatElapsed(e.state))

	next := time.Second - e.state.Elapsed%time.Second
	e.armLocked(elapsedSlot, next, e.onElapsedLocked)
}

func (e *Engine) onRunForLocked() {
	e.stopLocked(StatusFinished)
}

// releaseAllLocked issues a key-up for every configured key, not only the one
// that was pressed.
func (e *Engine) releaseAllLocked() {
	for _, k := range e.cfg.Keys {
		e.inj.Release(k)
	}
	e.state.KeyHeld = false
}

func (e *Engine) armLocked(slot timerSlot, delay time.Duration, fn func()) {
	e.cancelLocked(slot)

	e.seq++
	token := e.seq
	h := e.sched.ScheduleOnce(delay, func() {
		e.fire(slot, token, fn)
	})
	e.slots[slot] = armed{handle: h, token: token}
}

func (e *Engine) cancelLocked(slot timerSlot) {
	if e.slots[slot].token == 0 {
		return
	}
	e.sched.Cancel(e.slots[slot].handle)
	e.slots[slot] = armed{}
}

func (e *Engine) fire(slot timerSlot, token uint64, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.slots[slot].token != token {
		return
	}
	e.slots[slot] = armed{}
	fn()
}
