package chat

import (
	"fmt"
	"strings"

	"github.com/axelse03-gif/reybanpac/models"
)

const botName = "JuniorPac"

const persona = `You are JuniorPac, a friendly and helpful virtual assistant for Reybanpac employees.
Your knowledge is about company policies, benefits, training, and general HR questions.
Keep your answers concise and friendly.`

// BuildPrompt assembles the single prompt string sent to the completion
// service: persona, prior turns as speaker-labelled lines, then the new
// message.
func BuildPrompt(history []models.Turn, message string) string {
	var b strings.Builder

	b.WriteString(persona)
	b.WriteString("\n\nConversation History:\n")
	for _, t := range history {
		fmt.Fprintf(&b, "%s: %s\n", speaker(t.Origin), t.Content.PromptText())
	}
	fmt.Fprintf(&b, "\nUser: \"%s\"\n%s:", message, botName)

	return b.String()
}

func speaker(o models.Origin) string {
	if o == models.OriginUser {
		return "User"
	}
	return botName
}
