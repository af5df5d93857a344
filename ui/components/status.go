package components

import (
	"github.com/Rorical/GitLingo/ui/styles"
)

const helpText = "enter: translate • ctrl+y: copy • esc: quit"

func RenderStatus(status string, width int) string {
	return styles.StatusStyle(width).Render(status + "  │  " + helpText)
}
