package simulator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultCleanupTimeout bounds how long shutdown waits for cleanup steps.
const DefaultCleanupTimeout = 5 * time.Second

type cleanupStep struct {
	name string
	fn   func() error
}

// Cleanup runs shutdown steps once, in registration order, within a timeout.
// It makes sure a held key is released even when the process exits on a
// signal.
type Cleanup struct {
	mu      sync.Mutex
	steps   []cleanupStep
	timeout time.Duration
	once    sync.Once
	err     error
}

// NewCleanup creates a Cleanup. A non-positive timeout uses DefaultCleanupTimeout.
func NewCleanup(timeout time.Duration) *Cleanup {
	if timeout <= 0 {
		timeout = DefaultCleanupTimeout
	}
	return &Cleanup{timeout: timeout}
}

// Add registers a named step.
func (c *Cleanup) Add(name string, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = append(c.steps, cleanupStep{name: name, fn: fn})
}

// AddEngine registers stopping e, which releases any held key.
func (c *Cleanup) AddEngine(e *Engine) {
	c.Add("engine", func() error {
		e.Stop()
		return nil
	})
}

// Run executes every step the first time it is called and returns the joined
// step errors. Later calls return the same result.
func (c *Cleanup) Run() error {
	c.once.Do(func() {
		c.err = c.run()
	})
	return c.err
}

func (c *Cleanup) run() error {
	c.mu.Lock()
	steps := make([]cleanupStep, len(c.steps))
	copy(steps, c.steps)
	c.mu.Unlock()

	if len(steps) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
	)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for _, step := range steps {
			err := runStep(step)
			if err != nil {
				log.Printf("cleanup: error cleaning up %s: %v", step.name, err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
				mu.Unlock()
				continue
			}
			log.Printf("cleanup: successfully cleaned up %s", step.name)
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("cleanup: timeout after %v, some resources may not have been cleaned up", c.timeout)
		mu.Lock()
		errs = append(errs, errors.New("cleanup timeout exceeded"))
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}

func runStep(step cleanupStep) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("cleanup: panic cleaning up %s: %v", step.name, r)
			err = fmt.Errorf("panic during cleanup: %v", r)
		}
	}()
	return step.fn()
}
