//go:build !unix

package pulselog

import "os"

// DefaultToggleSignal is nil where SIGUSR1 does not exist; no toggle is bound.
var DefaultToggleSignal os.Signal
