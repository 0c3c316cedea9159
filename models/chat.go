package models

import (
	"strings"
	"time"
)

// Origin is the author of a chat turn.
type Origin string

const (
	OriginUser Origin = "user"
	OriginBot  Origin = "bot"
)

// ContentKind tags the Content variant.
type ContentKind string

const (
	ContentText       ContentKind = "text"
	ContentStructured ContentKind = "structured"
)

// Section is one card of a structured bot answer.
type Section struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// Content is either plain text or a list of sections. Use PlainText and
// StructuredBlock to build it.
type Content struct {
	Kind     ContentKind `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Sections []Section   `json:"sections,omitempty"`
}

func PlainText(text string) Content {
	return Content{Kind: ContentText, Text: text}
}

func StructuredBlock(sections ...Section) Content {
	return Content{Kind: ContentStructured, Sections: sections}
}

// PromptText flattens the content to the single line used in a prompt
// history. Structured sections become "title body" pieces joined by spaces.
func (c Content) PromptText() string {
	if c.Kind != ContentStructured {
		return c.Text
	}

	parts := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		piece := strings.TrimSpace(strings.TrimSpace(s.Title) + " " + strings.TrimSpace(s.Body))
		if piece != "" {
			parts = append(parts, piece)
		}
	}
	return strings.Join(parts, " ")
}

// Turn is one message in a conversation.
type Turn struct {
	Origin    Origin    `json:"origin"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// TurnView is a Turn as the chat screen draws it.
type TurnView struct {
	Turn
	ShowAvatar bool `json:"showAvatar"`
}

// RenderTurns marks which turns start a run of same-origin turns; only those
// show the avatar.
func RenderTurns(turns []Turn) []TurnView {
	views := make([]TurnView, len(turns))
	for i, t := range turns {
		views[i] = TurnView{
			Turn:       t,
			ShowAvatar: i == 0 || turns[i-1].Origin != t.Origin,
		}
	}
	return views
}
