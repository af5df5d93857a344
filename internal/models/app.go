package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Input   textinput.Model    // Query field
	Spinner spinner.Model      // Shown while a request is in flight
	Result  *TranslationResult // Last successful result from core
	Error   string             // Last error message from core
	Loading bool               // In-flight flag from core (or optimistic after submit)
	Notice  string             // Pending acknowledgment, dismissed by the next key press
	Status  string             // Status bar text
	Width   int                // Terminal width
	Height  int                // Terminal height
}

// Placeholder is the hint shown in an empty query field
const Placeholder = "e.g., 'save my work without committing'"

// NewAppModel returns an idle form with a focused query field
func NewAppModel() AppModel {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot

	return AppModel{
		Input:   ti,
		Spinner: s,
		Status:  "Ready",
		Width:   80,
		Height:  24,
	}
}
