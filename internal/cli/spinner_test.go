package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func captureSpinner(t *testing.T) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	old := spinnerOut
	spinnerOut = buf
	t.Cleanup(func() { spinnerOut = old })
	return buf
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestSpinnerDraws(t *testing.T) {
	buf := captureSpinner(t)
	s := newSpinner(context.Background(), "Rendering png")
	s.delay = 0
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering png") {
		t.Errorf("spinner output = %q, want message", out)
	}
	if !strings.Contains(out, "Rendering png 0.") {
		t.Errorf("spinner output = %q, want elapsed seconds", out)
	}
}

func TestSpinnerDelay(t *testing.T) {
	buf := captureSpinner(t)
	s := newSpinner(context.Background(), "quick")
	s.Start()
	s.Stop()

	if buf.String() != "" {
		t.Errorf("spinner drew %q before its delay elapsed", buf.String())
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	captureSpinner(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "cancel me")
	s.delay = 0
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStop(t *testing.T) {
	captureSpinner(t)

	// Stop before Start must not block.
	done := make(chan struct{})
	go func() {
		s := newSpinner(context.Background(), "never started")
		s.Stop()
		s.Start()
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start blocked")
	}

	s := newSpinner(context.Background(), "idempotent")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopMessages(t *testing.T) {
	captureSpinner(t)
	out := captureStdout(t)

	s := newSpinner(context.Background(), "ok")
	s.Start()
	s.StopWithSuccess("Rendered %d tiles", 4)

	s = newSpinner(context.Background(), "fail")
	s.Start()
	s.StopWithError("Render failed")

	got := out.String()
	if !strings.Contains(got, "Rendered 4 tiles") || !strings.Contains(got, "Render failed") {
		t.Errorf("stdout = %q, want both messages", got)
	}
}
