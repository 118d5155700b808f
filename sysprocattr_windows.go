//go:build windows

package xproc

import (
	"os/exec"
	"syscall"
)

// detachSession places the child in a new process group. Windows has no
// equivalent of POSIX sessions, so detachment is best-effort: the child stops
// receiving console Ctrl-C events but is not otherwise isolated.
func detachSession(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
