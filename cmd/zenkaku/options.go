package main

import (
	"github.com/spf13/viper"

	"go.klb.dev/zenkaku/internal/clipset"
)

// options is the clipboard behaviour for one invocation, resolved once from
// flags and environment so nothing downstream consults either again.
type options struct {
	skipClipboard bool
	mode          clipset.WaitMode
}

// resolveOptions derives the clipboard options from flags and environment.
// getenv is injected for tests.
//
// Without DISPLAY there is no clipboard to set. Inside a desktop session the
// session's clipboard manager picks the data up on its own, so NoWait is the
// default there; XDG_CURRENT_DESKTOP is a best-effort signal for that, always
// overridable with --no-wait / --foreground-wait.
func resolveOptions(v *viper.Viper, getenv func(string) string) options {
	if v.GetBool("no-clipboard") || getenv("DISPLAY") == "" {
		return options{skipClipboard: true}
	}
	switch {
	case v.GetBool("no-wait"):
		return options{mode: clipset.NoWait}
	case v.GetBool("foreground-wait"):
		return options{mode: clipset.Foreground}
	case getenv("XDG_CURRENT_DESKTOP") != "":
		return options{mode: clipset.NoWait}
	default:
		return options{mode: clipset.Background}
	}
}
