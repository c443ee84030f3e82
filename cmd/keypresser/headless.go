package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/stigoleg/key-presser/internal/simulator"
)

// lineDisplay prints session status changes as plain lines for runs without
// a terminal UI. Counter and elapsed values are only printed with the final
// status.
type lineDisplay struct {
	mu      sync.Mutex
	out     io.Writer
	count   int
	elapsed string
}

func newLineDisplay(out io.Writer) *lineDisplay {
	return &lineDisplay{out: out}
}

func (d *lineDisplay) Status(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintln(d.out, text)
	if text == simulator.StatusStopped || text == simulator.StatusFinished {
		fmt.Fprintf(d.out, "%s, %s\n", simulator.CounterText(d.count), simulator.ElapsedText(d.elapsed))
	}
}

func (d *lineDisplay) Counter(count int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.count = count
}

func (d *lineDisplay) Elapsed(clock string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elapsed = clock
}
