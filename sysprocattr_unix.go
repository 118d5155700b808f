//go:build !windows

package xproc

import (
	"os/exec"
	"syscall"
)

// detachSession arranges for the child to call setsid(2) after fork and
// before exec, making it the leader of a new session with no controlling
// terminal. The syscall has to run in that window: a process can only change
// its own session, and once the target program has replaced the image there
// is nothing left to issue the call.
func detachSession(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
