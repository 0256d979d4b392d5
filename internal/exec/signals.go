package exec

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ForwardSignals starts a goroutine that relays SIGINT, SIGTERM, and
// SIGHUP to the given child process, so the launched tool sees the same
// interrupts the user sends the parent. Returns a cleanup function that
// stops relaying and must be called once the child has exited.
func ForwardSignals(ctx context.Context, process *os.Process) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})

	go func() {
		for {
			select {
			case sig := <-sigChan:
				_ = process.Signal(sig)
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
