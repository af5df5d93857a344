// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{}
}

func (s *System) Write(text string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(text)
}

var _ Writer = (*System)(nil)
