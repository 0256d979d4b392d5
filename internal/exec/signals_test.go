package exec

import (
	"context"
	"os/exec"
	"testing"
)

func startSleeper(t *testing.T) *exec.Cmd {
	t.Helper()

	cmd := exec.Command("sleep", "10")
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start sleep process: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	return cmd
}

func TestForwardSignals_cleanup(t *testing.T) {
	cmd := startSleeper(t)

	cleanup := ForwardSignals(context.Background(), cmd.Process)

	// Cleanup must stop the relay without panicking even though the
	// child is still alive.
	cleanup()
}

func TestForwardSignals_contextCancellation(t *testing.T) {
	cmd := startSleeper(t)

	ctx, cancel := context.WithCancel(context.Background())
	cleanup := ForwardSignals(ctx, cmd.Process)
	defer cleanup()

	cancel()
}
