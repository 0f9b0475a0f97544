package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerOut receives spinner frames; status output goes to stdout so the
// two never interleave in a pipe.
var spinnerOut io.Writer = os.Stderr

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	spinnerTick = 80 * time.Millisecond
	// spinnerDelay keeps fast renders (SVG, JSON, cache hits) from
	// flashing a spinner.
	spinnerDelay = 150 * time.Millisecond
)

// Spinner animates a status line with the elapsed time while PNG or PDF
// conversion runs. It stops drawing when ctx is cancelled.
type Spinner struct {
	ctx     context.Context
	message string
	delay   time.Duration

	start   sync.Once
	stop    sync.Once
	quit    chan struct{}
	stopped chan struct{}

	mu    sync.Mutex
	width int
}

func newSpinner(ctx context.Context, message string) *Spinner {
	return &Spinner{
		ctx:     ctx,
		message: message,
		delay:   spinnerDelay,
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation after a short delay.
func (s *Spinner) Start() {
	s.start.Do(func() { go s.run(time.Now()) })
}

func (s *Spinner) run(began time.Time) {
	defer close(s.stopped)

	select {
	case <-time.After(s.delay):
	case <-s.quit:
		return
	case <-s.ctx.Done():
		return
	}

	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()
	for i := 0; ; i++ {
		s.draw(spinnerFrames[i%len(spinnerFrames)], time.Since(began))
		select {
		case <-s.quit:
			return
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
		}
	}
}

func (s *Spinner) draw(frame string, elapsed time.Duration) {
	text := fmt.Sprintf("%s %.1fs", s.message, elapsed.Seconds())
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(spinnerOut, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
	s.width = max(s.width, len(text)+4)
}

// Stop halts the animation and clears the line. It may be called more than
// once, and before Start.
func (s *Spinner) Stop() {
	s.stop.Do(func() { close(s.quit) })
	s.start.Do(func() { close(s.stopped) })
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(spinnerOut, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(format, args...)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(format, args...)
}
