package integration

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/key-presser/internal/simulator"
)

// Exit codes reported by TestSignalHelper.
const (
	helperOK        = 0
	helperStartFail = 3
	helperKeyHeld   = 4
)

// TestCleanupOnSignal runs a session in a child process, signals it and
// expects a clean exit with no key left down.
func TestCleanupOnSignal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cleanup test in short mode")
	}
	if len(terminationSignals) == 0 {
		t.Skip("signals cannot be sent to another process on this platform")
	}

	names := make([]string, 0, len(terminationSignals))
	for name := range terminationSignals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sig := terminationSignals[name]
		t.Run(name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=TestSignalHelper")
			cmd.Env = append(os.Environ(), "TEST_SIGNAL_HELPER=1")
			err := cmd.Start()
			require.NoError(t, err, "helper process should start")

			// Let it press a few keys
			time.Sleep(time.Second)

			err = cmd.Process.Signal(sig)
			require.NoError(t, err, "should send %s", name)

			done := make(chan error, 1)
			go func() {
				done <- cmd.Wait()
			}()

			select {
			case err := <-done:
				assert.NoError(t, err, "process should exit cleanly after %s", name)
			case <-time.After(5 * time.Second):
				cmd.Process.Kill()
				t.Fatal("process did not exit within timeout")
			}
		})
	}
}

// TestSignalHelper is the child process for TestCleanupOnSignal.
func TestSignalHelper(t *testing.T) {
	if os.Getenv("TEST_SIGNAL_HELPER") != "1" {
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getUnixSignals()...)

	s := newSession(time.Now().UnixNano())
	if err := s.engine.Start(fastConfig()); err != nil {
		os.Exit(helperStartFail)
	}

	<-sigChan

	if err := s.cleanup.Run(); err != nil {
		os.Exit(helperStartFail)
	}
	if len(heldKeys(s.recorder.Events())) > 0 {
		os.Exit(helperKeyHeld)
	}
	os.Exit(helperOK)
}

// TestCleanupTimeout verifies a stuck step does not block shutdown.
func TestCleanupTimeout(t *testing.T) {
	s := newSession(4)
	require.NoError(t, s.engine.Start(fastConfig()))

	c := simulator.NewCleanup(100 * time.Millisecond)
	c.AddEngine(s.engine)
	c.Add("stuck", func() error {
		time.Sleep(2 * time.Second)
		return nil
	})

	start := time.Now()
	err := c.Run()
	assert.Less(t, time.Since(start), time.Second, "cleanup should give up after its timeout")
	assert.Error(t, err, "timeout should be reported")
	assert.False(t, s.engine.Running(), "engine step runs before the stuck step")
	assert.Empty(t, heldKeys(s.recorder.Events()))
}

// TestConcurrentStops verifies that repeated stops are harmless.
func TestConcurrentStops(t *testing.T) {
	s := newSession(5)
	require.NoError(t, s.engine.Start(fastConfig()))
	time.Sleep(300 * time.Millisecond)

	done := make(chan struct{}, 5)
	for i := 0; i < 5; i++ {
		go func() {
			s.engine.Stop()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("stop did not return within timeout")
		}
	}

	assert.False(t, s.engine.Running())
	assert.Empty(t, heldKeys(s.recorder.Events()))

	errs := []error{s.cleanup.Run(), s.cleanup.Run()}
	assert.NoError(t, errors.Join(errs...), "cleanup after stop should succeed")
}
