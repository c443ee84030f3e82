package simulator

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/key-presser/internal/schedule"
)

func TestStartThenStopLeavesEngineStopped(t *testing.T) {
	advances := []time.Duration{0, 500 * time.Millisecond, 1000 * time.Millisecond, 1300 * time.Millisecond, 5 * time.Second}

	for _, adv := range advances {
		t.Run(adv.String(), func(t *testing.T) {
			h := newHarness(t, 1)
			require.NoError(t, h.engine.Start(wasd()))

			h.sched.Advance(adv)
			h.engine.Stop()

			st := h.engine.State()
			assert.False(t, st.Running)
			assert.False(t, st.KeyHeld)
			assert.Equal(t, PhaseStopped, st.Phase())
			assert.Equal(t, 0, h.sched.Pending(), "no schedule may survive Stop")
		})
	}
}

func TestDrawsStayWithinBounds(t *testing.T) {
	sched := schedule.NewManual(epoch)
	inj := &clockInjector{sched: sched}
	e := New(sched, inj, nil, WithRand(rand.New(rand.NewSource(7))))

	cfg := Config{Keys: []rune{'A'}, Interval: MsRange(800, 1200), Hold: MsRange(200, 500)}
	require.NoError(t, e.Start(cfg))

	for e.State().PressCount < 500 {
		require.True(t, sched.AdvanceToNext())
	}
	e.Stop()

	var prevPress time.Duration
	var down time.Duration
	for _, ev := range inj.events {
		if ev.down {
			gap := ev.at - prevPress
			assert.GreaterOrEqual(t, gap, cfg.Interval.Min, "interval below minimum")
			assert.LessOrEqual(t, gap, cfg.Interval.Max, "interval above maximum")
			prevPress = ev.at
			down = ev.at
			continue
		}
		if ev.at == sched.Now().Sub(epoch) {
			// released by Stop
			continue
		}
		hold := ev.at - down
		assert.GreaterOrEqual(t, hold, cfg.Hold.Min, "hold below minimum")
		assert.LessOrEqual(t, hold, cfg.Hold.Max, "hold above maximum")
	}
}

func TestNoOverlappingPresses(t *testing.T) {
	h := newHarness(t, 3)
	cfg := Config{Keys: []rune("QE"), Interval: MsRange(200, 300), Hold: MsRange(900, 2000)}
	require.NoError(t, h.engine.Start(cfg))

	h.sched.Advance(30 * time.Second)
	h.engine.Stop()

	held := false
	for _, ev := range h.rec.Events() {
		if ev.Down {
			require.False(t, held, "press while a key was still held")
			held = true
			continue
		}
		held = false
	}
	assert.Greater(t, h.engine.State().PressCount, 10)
}

func TestSkippedTickRearmsWithCurrentInterval(t *testing.T) {
	h := newHarness(t, 5)
	cfg := Config{Keys: []rune{'X'}, Interval: MsRange(200, 200), Hold: MsRange(1000, 1000)}
	require.NoError(t, h.engine.Start(cfg))

	h.sched.Advance(200 * time.Millisecond)
	require.Equal(t, 1, h.engine.State().PressCount)

	// Ticks at 400..1000 find the key held and only re-arm.
	h.sched.Advance(800 * time.Millisecond)
	assert.Equal(t, 1, h.engine.State().PressCount)

	// Release at 1200 runs before the re-armed press due at the same instant.
	h.sched.Advance(200 * time.Millisecond)
	assert.Equal(t, 2, h.engine.State().PressCount)
	assert.True(t, h.engine.State().KeyHeld)
}

func TestPressCountIncrementsByOne(t *testing.T) {
	h := newHarness(t, 11)
	require.NoError(t, h.engine.Start(wasd()))
	h.runPresses(t, 25)
	h.engine.Stop()

	require.Len(t, h.display.counters, 26, "initial zero plus one per press")
	for i, c := range h.display.counters {
		assert.Equal(t, i, c)
	}
	assert.Len(t, h.rec.Presses(), 25)
}

func TestStopIsIdempotent(t *testing.T) {
	h := newHarness(t, 2)
	cfg := Config{Keys: []rune("WASD"), Interval: MsRange(1000, 1000), Hold: MsRange(500, 500)}
	require.NoError(t, h.engine.Start(cfg))
	h.sched.Advance(1200 * time.Millisecond)
	require.True(t, h.engine.State().KeyHeld)

	h.engine.Stop()
	once := h.engine.State()
	events := len(h.rec.Events())
	statuses := len(h.display.statuses)

	h.engine.Stop()
	assert.Equal(t, once, h.engine.State())
	assert.Len(t, h.rec.Events(), events)
	assert.Len(t, h.display.statuses, statuses)
	assert.Equal(t, StatusStopped, h.display.lastStatus())
}

func TestKeySelectionIsUniform(t *testing.T) {
	h := newHarness(t, 42)
	cfg := Config{Keys: []rune("WASD"), Interval: MsRange(200, 200), Hold: MsRange(10, 10)}
	require.NoError(t, h.engine.Start(cfg))

	const n = 8000
	h.sched.Advance(n * 200 * time.Millisecond)
	h.engine.Stop()

	presses := h.rec.Presses()
	require.Len(t, presses, n)

	counts := map[rune]int{}
	for _, k := range presses {
		counts[k]++
	}
	expected := float64(n) / float64(len(cfg.Keys))
	var chi2 float64
	for _, k := range cfg.Keys {
		diff := float64(counts[k]) - expected
		chi2 += diff * diff / expected
	}

	// 16.27 is the 0.999 quantile of chi-square with 3 degrees of freedom.
	assert.Less(t, chi2, 16.27, "counts %v", counts)
}

func TestWASDScenario(t *testing.T) {
	h := newHarness(t, 2024)
	require.NoError(t, h.engine.Start(wasd()))
	h.runPresses(t, 10)

	st := h.engine.State()
	assert.Equal(t, 10, st.PressCount)
	for _, k := range h.rec.Presses() {
		assert.Contains(t, "WASD", string(k))
	}
	assert.Equal(t, "Simulating keys: [W, A, S, D] - Interval: 800-1200ms, Hold: 200-500ms", h.display.statuses[0])
}

func TestInvertedIntervalIsRejected(t *testing.T) {
	h := newHarness(t, 1)
	cfg := wasd()
	cfg.Interval = MsRange(1000, 500)

	err := h.engine.Start(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.False(t, h.engine.Running())
	assert.Equal(t, 0, h.sched.Pending())
	assert.Empty(t, h.display.statuses)
}

func TestStopBeforeFirstTickMakesNoInjectorCalls(t *testing.T) {
	h := newHarness(t, 1)
	require.NoError(t, h.engine.Start(wasd()))
	h.sched.Advance(799 * time.Millisecond)
	h.engine.Stop()

	h.sched.Advance(time.Minute)
	assert.Empty(t, h.rec.Events())
}

func TestStopWhileHeldReleasesEveryKeyOnce(t *testing.T) {
	h := newHarness(t, 9)
	cfg := Config{Keys: []rune("WASD"), Interval: MsRange(1000, 1000), Hold: MsRange(500, 500)}
	require.NoError(t, h.engine.Start(cfg))

	h.sched.Advance(1000 * time.Millisecond)
	require.Len(t, h.rec.Presses(), 1)
	require.True(t, h.engine.State().KeyHeld)

	h.engine.Stop()
	h.sched.Advance(time.Minute)

	releases := h.rec.Releases()
	assert.ElementsMatch(t, []rune("WASD"), releases)
	assert.False(t, h.engine.State().KeyHeld)
}

func TestReleaseTickReleasesAllConfiguredKeys(t *testing.T) {
	h := newHarness(t, 4)
	cfg := Config{Keys: []rune("12 "), Interval: MsRange(1000, 1000), Hold: MsRange(300, 300)}
	require.NoError(t, h.engine.Start(cfg))

	h.sched.Advance(1300 * time.Millisecond)
	assert.ElementsMatch(t, []rune("12 "), h.rec.Releases())
	assert.False(t, h.engine.State().KeyHeld)
	assert.Equal(t, PhaseKeyUp, h.engine.State().Phase())
}

func TestElapsedTicksEverySecond(t *testing.T) {
	h := newHarness(t, 1)
	require.NoError(t, h.engine.Start(wasd()))
	h.sched.Advance(3 * time.Second)

	assert.Equal(t, []string{"00:00:00", "00:00:01", "00:00:02", "00:00:03"}, h.display.elapsed)
	assert.Equal(t, 3*time.Second, h.engine.State().Elapsed)
}

func TestRunForStopsAutomatically(t *testing.T) {
	h := newHarness(t, 6)
	cfg := wasd()
	cfg.RunFor = 5 * time.Second
	require.NoError(t, h.engine.Start(cfg))

	done := h.engine.Done()
	h.sched.Advance(4 * time.Second)
	require.True(t, h.engine.Running())

	h.sched.Advance(time.Second)
	assert.False(t, h.engine.Running())
	assert.False(t, h.engine.State().KeyHeld)
	assert.Equal(t, StatusFinished, h.display.lastStatus())
	assert.Equal(t, 0, h.sched.Pending())

	select {
	case <-done:
	default:
		t.Fatal("Done channel not closed after run-for elapsed")
	}
}

func TestStartWhileRunning(t *testing.T) {
	h := newHarness(t, 1)
	require.NoError(t, h.engine.Start(wasd()))
	assert.ErrorIs(t, h.engine.Start(wasd()), ErrAlreadyRunning)
}

func TestRestartResetsSession(t *testing.T) {
	h := newHarness(t, 8)
	require.NoError(t, h.engine.Start(wasd()))
	h.runPresses(t, 3)
	h.engine.Stop()

	require.NoError(t, h.engine.Start(wasd()))
	st := h.engine.State()
	assert.Equal(t, 0, st.PressCount)
	assert.Equal(t, time.Duration(0), st.Elapsed)
	assert.Equal(t, h.sched.Now(), st.StartTime)
	assert.Equal(t, "test-session", st.ID)
}

func TestConfigIsCopied(t *testing.T) {
	h := newHarness(t, 1)
	cfg := wasd()
	require.NoError(t, h.engine.Start(cfg))

	cfg.Keys[0] = 'Z'
	got := h.engine.Config()
	got.Keys[1] = 'Z'

	assert.Equal(t, []rune("WASD"), h.engine.Config().Keys)
}

func TestDoneBeforeStart(t *testing.T) {
	h := newHarness(t, 1)
	select {
	case <-h.engine.Done():
	default:
		t.Fatal("Done should be closed before any session")
	}
}
