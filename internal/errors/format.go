package errors

import "strings"

// Format returns a multi-line message for terminal display.
func (e *AdminError) Format() string {
	var b strings.Builder

	b.WriteString("ERROR")
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	b.WriteString(": " + e.Message + "\n")

	if e.Wrapped != nil {
		b.WriteString("\n  Cause: " + e.Wrapped.Error() + "\n")
	}
	if e.Detail != "" {
		b.WriteString("\n  " + e.Detail + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n  Hint: " + e.Suggestion + "\n")
	}

	return b.String()
}
