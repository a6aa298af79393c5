//go:build unix

package pulselog

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestRegisterAsyncTrigger_DeliversSignal(t *testing.T) {
	fired := make(chan struct{}, 1)
	stop := RegisterAsyncTrigger(syscall.SIGUSR2, func() { fired <- struct{}{} })
	defer stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR2); err != nil {
		t.Fatalf("kill: %v", err)
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("trigger not invoked")
	}

	stop()
	stop() // idempotent
}

func TestWithToggleSignal_TogglesLogger(t *testing.T) {
	sink := &stubSink{}
	l, err := NewBuilder().WithSink(sink).WithToggleSignal(syscall.SIGUSR1).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	defer l.Close()

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for l.Threshold() != LevelDebug {
		if time.Now().After(deadline) {
			t.Fatalf("threshold still %s", l.Threshold())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
