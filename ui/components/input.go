package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/GitLingo/ui/styles"
)

// RenderSearchBox draws the query field and the submit button, which reads
// "Translating..." and is greyed out while a request is in flight.
func RenderSearchBox(input textinput.Model, spin spinner.Model, loading bool, width int) string {
	label := "Translate"
	if loading {
		label = spin.View() + " Translating..."
	}
	button := styles.ButtonStyle(loading).Render(label)

	field := styles.InputStyle(width - lipgloss.Width(button)).Render(input.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, field, button) + "\n"
}
