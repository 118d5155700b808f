// Package xproc spawns child operating-system processes detached from the
// caller's terminal session, with optional one-shot capture of their output.
//
// Every child is started as the leader of a new session: on POSIX systems the
// child calls setsid(2) between fork and exec, the only window in which a
// session can be created before the target program runs. A detached child is
// not a member of the launcher's process group and does not receive
// terminal-originated signals such as Ctrl-C, so it survives the launcher's
// terminal session. Full session detachment is only available on POSIX
// systems; on Windows the package offers best-effort semantics, placing the
// child in a new process group without further isolation.
//
// Output capture is read-to-completion, not streaming. Stdout and Stderr
// block until the child closes the corresponding descriptor, so a child that
// holds a captured stream open forever blocks the caller forever; no timeout
// is provided. Each captured stream can be drained exactly once.
package xproc
