/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

const spinnerInterval = 120 * time.Millisecond

// Spinner renders an in-flight status line on stderr while a long-running
// operation is outstanding. Rendering is suppressed entirely when stderr is
// not a terminal so piped output stays clean.
type Spinner struct {
	out     io.Writer
	enabled bool

	mu      sync.Mutex
	stop    chan struct{}
	stopped chan struct{}
}

func NewSpinner() *Spinner {
	return &Spinner{
		out:     os.Stderr,
		enabled: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Start begins rendering label with an animated frame. The returned func
// stops the animation and clears the status line; it is safe to call once.
func (s *Spinner) Start(label string) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.stop != nil {
		return func() {}
	}

	stop := make(chan struct{})
	stopped := make(chan struct{})
	s.stop = stop
	s.stopped = stopped

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-stop:
				// Clear the status line.
				fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(label)+2))
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], label)
				frame++
			}
		}
	}()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.stop == nil {
			return
		}
		close(s.stop)
		<-s.stopped
		s.stop = nil
		s.stopped = nil
	}
}
