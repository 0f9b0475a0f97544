package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   log.Level
		emit    log.Level
		wantLog bool
	}{
		{log.InfoLevel, log.InfoLevel, true},
		{log.InfoLevel, log.DebugLevel, false},
		{log.DebugLevel, log.DebugLevel, true},
		{log.WarnLevel, log.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.emit.String(), func(t *testing.T) {
			var buf bytes.Buffer
			newLogger(&buf, tt.level).Log(tt.emit, "solve")
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(2 * time.Millisecond)
	prog.done("solved", "tiles", 7)

	out := buf.String()
	for _, want := range []string{"solved", "tiles=7", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress.done() output = %q, missing %q", out, want)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("debug not logged after SetLogLevel(LogDebug)")
	}
}
