// Package platform holds OS-facing helpers for the desktop app.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another stopwatch already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minPort = 20000
	maxPort = 39999
)

// InstanceGuard keeps a localhost port bound for the lifetime of the process,
// so only one stopwatch window runs per user session.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the port derived from appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFor(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the bound address, or "" once released.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

func portFor(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
