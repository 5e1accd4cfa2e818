package service

import (
	"testing"

	"github.com/rocketscienceinc/hecks-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_GenerateMove(t *testing.T) {
	t.Run("AlwaysLegal", func(t *testing.T) {
		// Given: an ongoing game
		game := entity.NewGame()
		bot := NewBotService()

		// When: the bot generates moves for alternating colors
		for i := 0; i < 20; i++ {
			color := game.Turn()
			vertex := bot.GenerateMove(game, color)

			// Then: every generated move is legal and playable
			move := entity.NewMove(color, vertex)
			require.True(t, game.IsLegal(move), "move %s %s", color, vertex)
			require.NoError(t, game.Play(move))
		}

		assert.Len(t, game.Moves(), 20)
	})

	t.Run("OffTurnColorFallsBackToPass", func(t *testing.T) {
		// Given: BLUE to move
		game := entity.NewGame()
		bot := NewBotService()

		// When: a move is requested for RED
		vertex := bot.GenerateMove(game, entity.ColorRed)

		// Then: no placement is legal, so the bot passes
		assert.Equal(t, entity.VertexPass, vertex)
	})
}

func TestAllVertices(t *testing.T) {
	// When: the board is enumerated
	vertices := allVertices()

	// Then: all 150 vertices are produced and parse back onto the board
	require.Len(t, vertices, 150)

	seen := make(map[string]bool, len(vertices))
	for _, vertex := range vertices {
		_, err := entity.ParseVertex(vertex)
		require.NoError(t, err, "vertex %q", vertex)

		assert.False(t, seen[vertex], "duplicate vertex %q", vertex)
		seen[vertex] = true
	}
}
