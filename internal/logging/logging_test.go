package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelWarning)

	SetLevel(LevelWarning)
	Debug("debug %d", 1)
	Info("info %d", 2)
	Warning("warning %d", 3)
	Error("error %d", 4)

	s := buf.String()
	if strings.Contains(s, "debug 1") || strings.Contains(s, "info 2") {
		t.Errorf("messages below the level were written: %q", s)
	}
	if !strings.Contains(s, "warning 3") || !strings.Contains(s, "error 4") {
		t.Errorf("expected warning and error messages, got %q", s)
	}

	buf.Reset()
	SetLevel(LevelNone)
	Error("silent")
	if buf.Len() != 0 {
		t.Errorf("LevelNone should discard everything, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarning,
		"warn":    LevelWarning,
		" error ": LevelError,
		"bogus":   LevelNone,
	}
	for name, want := range cases {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
