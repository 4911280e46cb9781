package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/zenkaku/internal/clipset"
	"go.klb.dev/zenkaku/internal/fullwidth"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "zenkaku [text...]",
		Short: "Convert text to fullwidth glyphs",
		Long: `zenkaku converts ASCII text to fullwidth glyphs (ｌｉｋｅ　ｔｈｉｓ), prints
the result, and copies it to the system clipboard.

Arguments are joined with the ideographic space (U+3000). With no arguments,
stdin is read instead and a single trailing newline is stripped.

On X11 the clipboard owner must stay alive to answer paste requests. Outside a
desktop session zenkaku therefore detaches a background process that holds the
clipboard until another program overwrites it; inside a desktop session the
session's clipboard manager takes over and zenkaku exits immediately. Use
--no-wait or --foreground-wait to override, --no-clipboard to skip the
clipboard entirely. Without DISPLAY the clipboard is always skipped.

Text that collides with a subcommand name can be forced positional with --,
e.g. "zenkaku -- version".

All flags can be set via ZENKAKU_<FLAG> env vars.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			setupLogging(v)
			return runRoot(v, args)
		},
	}

	f := cmd.Flags()
	f.BoolP("no-clipboard", "n", false, "don't copy the output to the system clipboard")
	f.BoolP("no-wait", "W", false, "don't wait for the clipboard to be overwritten before exiting (default inside a desktop session)")
	f.BoolP("foreground-wait", "F", false, "wait for the clipboard in the foreground instead of detaching")
	cmd.MarkFlagsMutuallyExclusive("no-clipboard", "no-wait", "foreground-wait")
	addLoggingFlags(cmd)

	return cmd
}

func runRoot(v *viper.Viper, args []string) error {
	text, err := inputText(args, os.Stdin)
	if err != nil {
		return err
	}

	// Output first: the print must succeed for the user even if the
	// clipboard step fails afterwards.
	fmt.Println(text)

	opts := resolveOptions(v, os.Getenv)
	if opts.skipClipboard {
		slog.Debug("clipboard skipped")
		return nil
	}
	slog.Debug("setting clipboard", "mode", opts.mode)
	return clipset.Set(text, opts.mode)
}

// inputText renders the fullwidth text from positional args, or from stdin
// when there are none.
func inputText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return fullwidth.Join(args), nil
	}
	input, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	// strings.Map would rewrite invalid bytes to U+FFFD; refuse them instead.
	if !utf8.Valid(input) {
		return "", errors.New("read stdin: input is not valid UTF-8")
	}
	return fullwidth.String(strings.TrimSuffix(string(input), "\n")), nil
}
