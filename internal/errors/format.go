package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders an error for terminal display. CLIErrors get their
// category as a colored heading plus remediation steps; other errors get
// a plain "Error:" line. Color is suppressed automatically by fatih/color
// when output is not a terminal or NO_COLOR is set.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var cliErr *CLIError
	if !stderrors.As(err, &cliErr) {
		return fmt.Sprintf("Error: %s\n", err.Error())
	}

	var b strings.Builder
	heading := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(&b, "%s: %s\n", heading.Sprint(cliErr.Category.String()), cliErr.Message)

	if len(cliErr.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}

// FormatErrorPlain renders an error without any color codes, for logs and
// script-consumed output.
func FormatErrorPlain(err error) string {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	return FormatError(err)
}
