package console

import (
	"syscall"
	"testing"
)

func TestSignalRegistryDispatch(t *testing.T) {
	r := NewSignalRegistry()
	defer r.Close()

	calls := 0
	r.Register(syscall.SIGUSR1, func() { calls++ })

	r.Dispatch(syscall.SIGUSR1)
	r.Dispatch(syscall.SIGUSR1)
	if calls != 2 {
		t.Errorf("Expected 2 callback invocations, got %d", calls)
	}

	// Unregistered signal is a no-op
	r.Dispatch(syscall.SIGUSR2)
	if calls != 2 {
		t.Errorf("Expected unregistered dispatch to be ignored, got %d calls", calls)
	}
}

func TestSignalRegistryUnregister(t *testing.T) {
	r := NewSignalRegistry()
	defer r.Close()

	calls := 0
	r.Register(syscall.SIGUSR1, func() { calls++ })
	r.Unregister(syscall.SIGUSR1)

	r.Dispatch(syscall.SIGUSR1)
	if calls != 0 {
		t.Errorf("Expected no calls after unregister, got %d", calls)
	}
}

func TestSignalRegistryCloseIdempotent(t *testing.T) {
	r := NewSignalRegistry()
	r.Close()
	r.Close()
}
