package cli

import (
	"os"

	"golang.org/x/term"
)

// Fallback terminal size when stdout is not a terminal.
const (
	fallbackTermWidth  = 80
	fallbackTermHeight = 24
)

// terminalSize reports the size of the terminal attached to stdout.
func terminalSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackTermWidth, fallbackTermHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackTermWidth, fallbackTermHeight
	}
	return w, h
}

func terminalWidth() int {
	w, _ := terminalSize()
	return w
}
