//go:build windows

package main

import (
	"os"
	"syscall"
)

// getSignalsForPlatform lists the signals that end a session.
func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}

func isSIGTSTPForPlatform(os.Signal) bool {
	return false
}
