//go:build unix

package clipset

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// executable resolves the path of the running binary. Stubbed in tests to
// force spawn failure.
var executable = os.Executable

// detach re-execs the current binary as the hidden wait subcommand and
// returns without waiting on it. The child gets its own session so it
// survives the parent's exit, and inherits stderr so clipboard failures stay
// visible. No clipboard handle exists in this process at this point; the
// child initialises its own.
//
// This is a single spawn and disown, not a full double-fork daemonisation —
// the child only has to outlive the parent, not detach from the terminal.
func detach(text string) error {
	exe, err := executable()
	if err != nil {
		return fmt.Errorf("spawn clipboard waiter: %w", err)
	}
	cmd := exec.Command(exe, WaitCommand)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn clipboard waiter: %w", err)
	}
	// No Wait: the child is disowned and reaped by init.
	return nil
}
