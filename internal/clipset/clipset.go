// Package clipset sets the system clipboard and manages the lifetime of the
// owning process.
//
// On X11 the process that sets the clipboard must stay alive to answer paste
// requests. The package offers three strategies: return immediately (NoWait),
// block until another program overwrites the clipboard (Foreground), or hand
// the blocking duty to a detached child process (Background).
//
// Invariant for Background mode: no clipboard handle may exist in the parent.
// golang.design/x/clipboard spawns a worker thread on Init, and the detached
// child must own its handle from a clean process. Set therefore spawns the
// child before any Init call and lets the child initialise the clipboard
// itself.
package clipset

import (
	"fmt"

	"golang.design/x/clipboard"
)

// WaitCommand is the hidden subcommand name the Background child is spawned
// with. The binary must route it to a Foreground Set of the text on stdin.
const WaitCommand = "__clipboard-wait"

// WaitMode selects how Set blocks relative to clipboard ownership.
type WaitMode int

const (
	// NoWait sets the clipboard and returns immediately. Appropriate when a
	// desktop clipboard manager takes over the data on its own.
	NoWait WaitMode = iota

	// Foreground sets the clipboard and blocks until another program
	// overwrites it.
	Foreground

	// Background detaches a child process that performs the Foreground
	// behaviour and returns immediately.
	Background
)

func (m WaitMode) String() string {
	switch m {
	case NoWait:
		return "no-wait"
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	default:
		return fmt.Sprintf("WaitMode(%d)", int(m))
	}
}

// Set places text on the system clipboard using the given wait mode.
//
// In Background mode the returned error covers spawn failure only. Clipboard
// errors inside the detached child appear on the child's stderr and in its
// exit code, never in the parent.
func Set(text string, mode WaitMode) error {
	switch mode {
	case Foreground:
		return set(text, true)
	case Background:
		return detach(text)
	default:
		return set(text, false)
	}
}

// set initialises the clipboard handle and writes text, blocking until the
// clipboard is overwritten when wait is true. Runs in the invoking process
// for NoWait and Foreground, and in the detached child for Background.
func set(text string, wait bool) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard init: %w", err)
	}
	changed := clipboard.Write(clipboard.FmtText, []byte(text))
	if wait {
		<-changed
	}
	return nil
}
