//go:build !windows

package main

import (
	"os"
	"syscall"
)

// getSignalsForPlatform lists the signals that end a session. SIGTSTP is
// included so a suspended process never leaves a key held down.
func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
		syscall.SIGTSTP,
	}
}

func isSIGTSTPForPlatform(sig os.Signal) bool {
	return sig == syscall.SIGTSTP
}
