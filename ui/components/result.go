package components

import (
	"strings"

	"github.com/Rorical/GitLingo/internal/models"
	"github.com/Rorical/GitLingo/ui/styles"
)

// RenderResult draws the error line and/or the suggestion card
func RenderResult(result *models.TranslationResult, errMsg string, width int) string {
	var b strings.Builder

	if errMsg != "" {
		b.WriteString(styles.ErrorStyle().Render(errMsg))
		b.WriteString("\n")
	}

	if result != nil {
		var card strings.Builder
		card.WriteString("Suggested Command:\n")
		card.WriteString(styles.CommandStyle().Render(result.Command))
		if result.Command != "" {
			card.WriteString("  " + styles.HintStyle().Render("[ctrl+y] Copy"))
		}
		card.WriteString("\n\n")
		card.WriteString(result.Description)

		b.WriteString(styles.CardStyle(width).Render(card.String()))
		b.WriteString("\n")
	}

	return b.String()
}

func RenderNotice(message string) string {
	return styles.NoticeStyle().Render(message+"\n"+styles.HintStyle().Render("press any key")) + "\n"
}
