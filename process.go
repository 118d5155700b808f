package xproc

import (
	"io"
	"os/exec"
	"strconv"
)

// killCommand is the external termination facility. Termination requests are
// delegated to it rather than issued as in-process signals, so they work
// against any pid the facility can address, at the cost of requiring the
// executable on PATH.
const killCommand = "kill"

// Process is an owned reference to one spawned OS process. A handle
// corresponds to exactly one spawn attempt. It is not safe for concurrent
// use; callers that share a handle across goroutines must synchronize access
// themselves.
type Process struct {
	pid    uint32
	stdout io.ReadCloser
	stderr io.ReadCloser
}

// Option configures how a process is spawned.
type Option func(*spawnConfig)

type spawnConfig struct {
	capture bool
}

// WithCapture pipes the child's stdout and stderr back to the handle so they
// can each be read once via Stdout and Stderr. Without it both streams are
// discarded.
func WithCapture() Option {
	return func(cfg *spawnConfig) {
		cfg.capture = true
	}
}

// Spawn launches command with no arguments. The executable is resolved via
// the standard PATH lookup and started in its own session with stdin
// connected to the null device.
func Spawn(command string, opts ...Option) (*Process, error) {
	return SpawnWithArgs(command, nil, opts...)
}

// SpawnWithArgs launches command with the given argument vector. The child
// runs concurrently with the caller from the moment this returns; no exit
// status is ever collected.
func SpawnWithArgs(command string, args []string, opts ...Option) (*Process, error) {
	var cfg spawnConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	cmd := exec.Command(command, args...)
	detachSession(cmd)

	var stdout, stderr io.ReadCloser
	if cfg.capture {
		var err error
		if stdout, err = cmd.StdoutPipe(); err != nil {
			return nil, &SpawnError{Command: command, Err: err}
		}
		if stderr, err = cmd.StderrPipe(); err != nil {
			return nil, &SpawnError{Command: command, Err: err}
		}
	}

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Command: command, Err: err}
	}

	return &Process{
		pid:    uint32(cmd.Process.Pid),
		stdout: stdout,
		stderr: stderr,
	}, nil
}

// Pid returns the OS-assigned identifier of the spawned process. The value is
// fixed at spawn time; the OS may reuse it after the process exits.
func (p *Process) Pid() uint32 {
	return p.pid
}

// Stdout blocks until the child closes its stdout descriptor and returns
// everything it wrote. The stream is consumed by the first call; subsequent
// calls return an empty string, as do handles spawned without WithCapture.
// Bytes are returned verbatim, invalid UTF-8 included.
func (p *Process) Stdout() (string, error) {
	out, err := drain(&p.stdout)
	if err != nil {
		return "", &ReadError{Stream: "stdout", Err: err}
	}
	return out, nil
}

// Stderr is the stderr counterpart of Stdout, with identical semantics.
func (p *Process) Stderr() (string, error) {
	out, err := drain(&p.stderr)
	if err != nil {
		return "", &ReadError{Stream: "stderr", Err: err}
	}
	return out, nil
}

// drain marks the stream consumed before reading, so a failed read still
// counts as the one permitted access.
func drain(stream *io.ReadCloser) (string, error) {
	r := *stream
	if r == nil {
		return "", nil
	}
	*stream = nil
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Kill requests termination of the spawned process. Success means the kill
// facility accepted the request, not that the process has exited; killing a
// process that already vanished typically fails with "no such process".
func (p *Process) Kill() error {
	return Kill(p.pid)
}

// Kill delivers the default termination signal to pid by invoking the
// external kill facility. The facility's exit status is the sole success
// signal; the target's actual state is never inspected, and no retries are
// performed.
func Kill(pid uint32) error {
	if err := exec.Command(killCommand, strconv.FormatUint(uint64(pid), 10)).Run(); err != nil {
		return &KillError{Pid: pid, Err: err}
	}
	return nil
}
