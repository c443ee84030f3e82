package simulator

import (
	"math/rand"
	"time"
)

// drawer makes the engine's random choices from a single source.
type drawer struct {
	rnd *rand.Rand
}

func newDrawer(rnd *rand.Rand) *drawer {
	return &drawer{rnd: rnd}
}

// duration draws uniformly from r in whole milliseconds, bounds included.
func (d *drawer) duration(r Range) time.Duration {
	lo := r.Min.Milliseconds()
	hi := r.Max.Milliseconds()
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}
	return time.Duration(lo+d.rnd.Int63n(hi-lo+1)) * time.Millisecond
}

// key picks one of keys uniformly.
func (d *drawer) key(keys []rune) rune {
	return keys[d.rnd.Intn(len(keys))]
}
