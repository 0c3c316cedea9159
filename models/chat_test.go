package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_PromptText(t *testing.T) {
	assert.Equal(t, "hola", PlainText("hola").PromptText())

	block := StructuredBlock(
		Section{Body: "¡Claro!"},
		Section{Title: "1. Recomendar:", Body: "Ingresas los datos."},
		Section{Title: "  ", Body: ""},
	)
	assert.Equal(t, "¡Claro! 1. Recomendar: Ingresas los datos.", block.PromptText())

	assert.Equal(t, "", StructuredBlock().PromptText())
}

func TestRenderTurns(t *testing.T) {
	turns := []Turn{
		{Origin: OriginBot, Content: PlainText("a")},
		{Origin: OriginBot, Content: PlainText("b")},
		{Origin: OriginUser, Content: PlainText("c")},
		{Origin: OriginUser, Content: PlainText("d")},
		{Origin: OriginBot, Content: PlainText("e")},
	}

	views := RenderTurns(turns)

	var avatars []bool
	for _, v := range views {
		avatars = append(avatars, v.ShowAvatar)
	}
	assert.Equal(t, []bool{true, false, true, false, true}, avatars)
	assert.Equal(t, turns[3], views[3].Turn)
}

func TestRenderTurns_Empty(t *testing.T) {
	assert.Empty(t, RenderTurns(nil))
}
