// Package errors provides categorized CLI errors with remediation hints.
// Fatal failures (an unreadable registry, a broken settings file) carry
// enough context for the user to fix the offending file, plus concrete
// next steps rendered under "To fix this:" in command output.
package errors

// ErrorCategory classifies a CLI error for display and exit-code mapping.
type ErrorCategory int

const (
	// Argument indicates invalid command-line arguments or flags.
	Argument ErrorCategory = iota
	// Configuration indicates a missing or malformed configuration file.
	Configuration
	// Runtime indicates a failure while performing the requested work.
	Runtime
)

// String returns a human-readable category label.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error with a category, an optional underlying cause, and
// remediation steps shown to the user.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Err         error
}

// Error returns the error message.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument-category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewConfigError creates a Configuration-category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a Runtime-category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap attaches a category and remediation to an existing error. Returns
// nil for a nil error so call sites can wrap unconditionally.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}
