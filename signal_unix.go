//go:build unix

package pulselog

import (
	"os"
	"syscall"
)

// DefaultToggleSignal is the conventional "reconfigure" signal.
var DefaultToggleSignal os.Signal = syscall.SIGUSR1
