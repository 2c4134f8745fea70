package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/daemon"
	"github.com/thenoetrevino/quoteboard/internal/remote"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

// GetTestSocketPath generates a unique temporary socket path for testing.
func GetTestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test-quoteboard.sock")
}

// SetupTestDaemon serves r on a temporary socket and waits for it to be
// ready. Cleanup is automatic via t.Cleanup().
func SetupTestDaemon(t *testing.T, r remote.Remote) (*daemon.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)

	server, err := daemon.NewServer(socketPath, r)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	// Register cleanup FIRST, before starting server
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: daemon shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(socketPath); err == nil {
			return server, socketPath
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("Timeout waiting for daemon socket to be created")
	return nil, ""
}

// SetupTestClient creates an rpc client for socketPath, closed on cleanup
func SetupTestClient(t *testing.T, socketPath string) *rpc.Client {
	t.Helper()

	client := rpc.NewClient(socketPath, rpc.WithDialTimeout(time.Second))
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// WaitForCondition waits for a condition to become true within the timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for condition: %s", description)
	return false
}
