//go:build windows

package integration

import (
	"os"
	"syscall"
)

func getUnixSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}

// Windows cannot deliver signals to another process, so the signal tests skip.
var terminationSignals = map[string]os.Signal{}
