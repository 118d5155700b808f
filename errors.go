package xproc

import "fmt"

// SpawnError reports that the operating system could not create a process:
// the executable was not found, permission was denied, or resources were
// exhausted. No handle exists when a SpawnError is returned.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure while draining a captured stream. The
// handle's pid and the other stream remain valid afterwards.
type ReadError struct {
	Stream string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Stream, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// KillError reports a failed termination request: either the kill facility
// ran and exited non-zero (pid not found, permission denied), or it could not
// be invoked at all. The handle remains usable afterwards.
type KillError struct {
	Pid uint32
	Err error
}

func (e *KillError) Error() string {
	return fmt.Sprintf("kill pid %d: %v", e.Pid, e.Err)
}

func (e *KillError) Unwrap() error { return e.Err }
