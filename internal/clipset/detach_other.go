//go:build !unix

package clipset

// detach is unavailable without setsid. The platforms in this branch retain
// clipboard contents after the writing process exits, so Background degrades
// to a plain set without waiting.
func detach(text string) error {
	return set(text, false)
}
