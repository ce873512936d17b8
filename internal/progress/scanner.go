package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Scanner displays a spinner while projects are being scanned. On a
// non-TTY (or when progress is disabled) every method is a no-op, so
// callers never branch on terminal state themselves.
type Scanner struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	spinner      *spinner.Spinner
	enabled      bool
}

// NewScanner creates a Scanner honoring the enabled flag and the detected
// terminal capabilities.
func NewScanner(enabled bool, caps TerminalCapabilities) *Scanner {
	return &Scanner{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		enabled:      enabled && caps.IsTTY,
	}
}

// Start begins the spinner with the given message.
func (s *Scanner) Start(msg string) {
	if !s.enabled {
		return
	}
	s.spinner = spinner.New(
		spinner.CharSets[s.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	s.spinner.Writer = os.Stderr // keep stdout clean for audit output
	s.spinner.Suffix = " " + msg
	s.spinner.Start()
}

// Update replaces the spinner message while it is running.
func (s *Scanner) Update(msg string) {
	if s.spinner == nil {
		return
	}
	s.spinner.Suffix = " " + msg
}

// Stop halts the spinner. Safe to call when the spinner never started.
func (s *Scanner) Stop() {
	if s.spinner == nil {
		return
	}
	s.spinner.Stop()
	s.spinner = nil
}

// Checkmark returns the success mark for the detected terminal.
func (s *Scanner) Checkmark() string {
	return s.symbols.Checkmark
}
