package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/zenkaku/internal/clipset"
)

// newWaitCmd is the hidden command run in the detached background process.
// It reads the rendered text from stdin, takes clipboard ownership, and
// blocks until another program overwrites the clipboard, so paste keeps
// working after the parent zenkaku process has exited.
func newWaitCmd() *cobra.Command {
	return &cobra.Command{
		Use:    clipset.WaitCommand,
		Hidden: true,
		Short:  "Internal: hold the clipboard until overwritten (do not call directly)",
		Args:   cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			text, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return clipset.Set(string(text), clipset.Foreground)
		},
	}
}
