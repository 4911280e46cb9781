//go:build unix

package clipset

import (
	"errors"
	"strings"
	"testing"
)

// A Background set whose child cannot be spawned must fail with the spawn
// error and never get as far as the clipboard: the error carries the spawn
// wrap, not the clipboard-init one.
func TestSetBackgroundSpawnFailure(t *testing.T) {
	tests := []struct {
		name string
		exe  func() (string, error)
	}{
		{
			name: "executable path unresolvable",
			exe:  func() (string, error) { return "", errors.New("readlink /proc/self/exe: permission denied") },
		},
		{
			name: "spawn of missing binary fails",
			exe:  func() (string, error) { return "/nonexistent/zenkaku", nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := executable
			executable = tt.exe
			defer func() { executable = orig }()

			err := Set("text", Background)
			if err == nil {
				t.Fatal("Set(Background) error = nil, want spawn failure")
			}
			if !strings.Contains(err.Error(), "spawn clipboard waiter") {
				t.Errorf("Set(Background) error = %q, want the spawn wrap", err)
			}
		})
	}
}
