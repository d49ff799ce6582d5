// Package notify prints short, non-blocking notices for the command line.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Notice messages shown to the user.
const (
	MsgCopied        = "copied to clipboard"
	MsgNothingToCopy = "nothing to copy"
	MsgPasteFailed   = "could not read from the clipboard"
	MsgUnparseable   = "could not parse the table"
)

// Level selects how a notice is styled.
type Level int

const (
	Info Level = iota
	Success
	Error
)

// Notifier writes one line per notice. Colors are used only when enabled.
type Notifier struct {
	w      io.Writer
	colors map[Level]*color.Color
}

// New returns a Notifier writing to w, colored when useColor is set.
func New(w io.Writer, useColor bool) *Notifier {
	colors := map[Level]*color.Color{
		Info:    color.New(color.FgCyan),
		Success: color.New(color.FgGreen),
		Error:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range colors {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Notifier{w: w, colors: colors}
}

// Notify writes msg at level. Write errors are ignored: a lost notice must
// not interrupt the caller.
func (n *Notifier) Notify(level Level, msg string) {
	c, ok := n.colors[level]
	if !ok {
		c = n.colors[Info]
	}
	_, _ = c.Fprintln(n.w, msg)
}

// Infof writes an informational notice.
func (n *Notifier) Infof(format string, args ...any) { n.Notify(Info, fmt.Sprintf(format, args...)) }

// Successf writes a success notice.
func (n *Notifier) Successf(format string, args ...any) {
	n.Notify(Success, fmt.Sprintf(format, args...))
}

// Errorf writes an error notice.
func (n *Notifier) Errorf(format string, args ...any) { n.Notify(Error, fmt.Sprintf(format, args...)) }
