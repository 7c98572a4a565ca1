package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another client instance already holds the
// lock. Two instances would fight over the audio device and the
// settings file.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock: a bound localhost port
// derived from the app name. The kernel releases it even on a crash.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance takes the lock or reports a running instance.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	const minPort, portRange = 20000, 20000

	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	port := minPort + int(hash.Sum32())%portRange

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}
