package fullwidth

import "testing"

func TestRunePrintableRange(t *testing.T) {
	for c := '!'; c <= '~'; c++ {
		want := c + 0xFEE0
		if got := Rune(c); got != want {
			t.Errorf("Rune(%q) = %q, want %q", c, got, want)
		}
	}
	if got := Rune(' '); got != WideSpace {
		t.Errorf("Rune(' ') = %q, want %q", got, WideSpace)
	}
}

func TestRunePassThrough(t *testing.T) {
	for _, r := range []rune{'\n', '\t', '\r', 0x00, 0x1f, 'é', '日', WideSpace, 'ａ'} {
		if got := Rune(r); got != r {
			t.Errorf("Rune(%q) = %q, want unchanged", r, got)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letters", "abc", "ａｂｃ"},
		{"words with space", "hello world", "ｈｅｌｌｏ　ｗｏｒｌｄ"},
		{"punctuation", "foo! bar~", "ｆｏｏ！　ｂａｒ～"},
		{"interior newline preserved", "line1\nline2", "ｌｉｎｅ１\nｌｉｎｅ２"},
		{"empty", "", ""},
		{"non-ascii untouched", "日本語", "日本語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Fullwidth output is outside the transformable range, so a second
// application must leave the text unchanged.
func TestStringSecondApplicationIsNoop(t *testing.T) {
	for _, s := range []string{"hello world", "a\nb", "x!~z", ""} {
		once := String(s)
		if twice := String(once); twice != once {
			t.Errorf("String(String(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"two words", []string{"hello", "world"}, "ｈｅｌｌｏ　ｗｏｒｌｄ"},
		{"single word no separator", []string{"hello"}, "ｈｅｌｌｏ"},
		{"empty slice", nil, ""},
		{"empty word keeps separators", []string{"a", "", "b"}, "ａ　　ｂ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.words); got != tt.want {
				t.Errorf("Join(%q) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}
