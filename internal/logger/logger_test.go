package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// capture redirects the global logger into a buffer at the given level
// and restores the defaults when the test ends.
func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(LevelWarn)
	})
	return &buf
}

func TestInit(t *testing.T) {
	defer SetLevel(LevelWarn)

	Init(false)
	if got := GetLevel(); got != LevelWarn {
		t.Errorf("Init(false) set level %v, want %v", got, LevelWarn)
	}

	Init(true)
	if got := GetLevel(); got != LevelDebug {
		t.Errorf("Init(true) set level %v, want %v", got, LevelDebug)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFunc func(string, ...interface{})
		want    bool
	}{
		{"debug at debug level", LevelDebug, Debug, true},
		{"info at debug level", LevelDebug, Info, true},
		{"debug at info level", LevelInfo, Debug, false},
		{"info at info level", LevelInfo, Info, true},
		{"debug at warn level", LevelWarn, Debug, false},
		{"info at warn level", LevelWarn, Info, false},
		{"warn at warn level", LevelWarn, Warn, true},
		{"error at warn level", LevelWarn, Error, true},
		{"warn at error level", LevelError, Warn, false},
		{"error at error level", LevelError, Error, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.level)

			tt.logFunc("scan message")

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("got output=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineFormat(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("found %s for %d.%d", "e1000", 6, 1)
	line := strings.TrimSpace(buf.String())

	if !strings.HasPrefix(line, "[DEBUG] ") {
		t.Errorf("missing level prefix: %q", line)
	}
	if !strings.HasSuffix(line, " found e1000 for 6.1") {
		t.Errorf("missing formatted message: %q", line)
	}
}

func TestFields(t *testing.T) {
	t.Run("appended sorted", func(t *testing.T) {
		buf := capture(t, LevelDebug)

		DebugFields("scan complete", Fields{
			"versions": 4,
			"driver":   "igb",
			"subdir":   "igb",
		})
		line := strings.TrimSpace(buf.String())

		if !strings.HasSuffix(line, "scan complete driver=igb subdir=igb versions=4") {
			t.Errorf("fields missing or unsorted: %q", line)
		}
	})

	t.Run("nil fields", func(t *testing.T) {
		buf := capture(t, LevelDebug)

		DebugFields("no fields", nil)
		line := strings.TrimRight(buf.String(), "\n")

		if !strings.HasSuffix(line, "no fields") {
			t.Errorf("message should end the line: %q", line)
		}
	})

	t.Run("all levels", func(t *testing.T) {
		buf := capture(t, LevelDebug)

		InfoFields("info", Fields{"n": 1})
		WarnFields("warn", Fields{"n": 2})
		ErrorFields("error", Fields{"n": 3})
		out := buf.String()

		for _, want := range []string{"[INFO]", "[WARN]", "[ERROR]", "n=1", "n=2", "n=3"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestConcurrentLogging(t *testing.T) {
	buf := capture(t, LevelDebug)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("goroutine %d", n)
			DebugFields("fields", Fields{"n": n})
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 200 {
		t.Fatalf("expected 200 log lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "[DEBUG]") {
			t.Errorf("line %d may be interleaved: %q", i, line)
		}
	}
}
