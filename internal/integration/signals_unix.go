//go:build !windows

package integration

import (
	"os"
	"syscall"
)

func getUnixSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGTSTP,
	}
}

// terminationSignals are the signals the helper process is asked to handle.
var terminationSignals = map[string]os.Signal{
	"SIGINT":  syscall.SIGINT,
	"SIGTERM": syscall.SIGTERM,
	"SIGQUIT": syscall.SIGQUIT,
	"SIGTSTP": syscall.SIGTSTP,
}
