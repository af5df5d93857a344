package components

import (
	"github.com/Rorical/GitLingo/ui/styles"
)

const (
	Title    = "GitLingo 🧠"
	Subtitle = "Translate plain English to Git commands using AI."
)

func RenderHeader() string {
	return styles.TitleStyle().Render(Title) + "\n" +
		styles.SubtitleStyle().Render(Subtitle) + "\n\n"
}
