package pulselog

import (
	"os"
	"os/signal"
	"sync"
)

// RegisterAsyncTrigger runs fn on a dedicated goroutine each time sig is
// delivered to the process. fn may run concurrently with any in-flight log
// call. The returned stop function unregisters the handler and waits for the
// goroutine to exit; it is safe to call more than once.
func RegisterAsyncTrigger(sig os.Signal, fn func()) (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sig)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ch:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			wg.Wait()
		})
	}
}
