package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const spinnerFrames = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

// Spinner is a progress indicator shown while a slow operation runs,
// like downloading the images referenced by a layout.
type Spinner struct {
	mu         sync.Mutex
	writer     io.Writer
	delay      time.Duration
	message    string
	lastOutput string
	running    bool
	stop       chan struct{}
	done       chan struct{}

	// StopMsg is printed in place of the spinner once it stops.
	StopMsg string
}

// NewSpinner returns a spinner writing to stderr. It stays silent
// when stderr is not a terminal.
func NewSpinner(msg string, d time.Duration) *Spinner {
	s := &Spinner{
		delay:   d,
		message: msg,
		writer:  io.Discard,
	}
	if IsTerminal(os.Stderr) {
		s.writer = os.Stderr
	}
	return s
}

// Start starts the progress indicator. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	if runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25l")
	}

	go func() {
		defer close(s.done)
		for {
			for _, r := range spinnerFrames {
				select {
				case <-s.stop:
					return
				default:
				}
				s.mu.Lock()
				s.lastOutput = fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
				fmt.Fprint(s.writer, s.lastOutput)
				s.mu.Unlock()

				time.Sleep(s.delay)
			}
		}
	}()
}

// Stop stops the progress indicator and prints StopMsg, if any.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.RestoreCursor()
	if len(s.StopMsg) > 0 {
		fmt.Fprint(s.writer, s.StopMsg)
	}
}

// RestoreCursor restores back the cursor visibility.
func (s *Spinner) RestoreCursor() {
	if runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the locker.
func (s *Spinner) clear() {
	n := utf8.RuneCountInString(s.lastOutput)
	if runtime.GOOS == "windows" {
		fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
	} else {
		fmt.Fprint(s.writer, "\r\033[K")
	}
	s.lastOutput = ""
}
