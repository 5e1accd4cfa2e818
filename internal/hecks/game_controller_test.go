package hecks

import (
	"testing"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
	"github.com/rocketscienceinc/hecks-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Run("AcceptedForms", func(t *testing.T) {
		// Given: the protocol color spellings
		cases := map[string]entity.Color{
			"b":    entity.ColorBlue,
			"B":    entity.ColorBlue,
			"blue": entity.ColorBlue,
			"BLUE": entity.ColorBlue,
			"r":    entity.ColorRed,
			"red":  entity.ColorRed,
			"Red":  entity.ColorRed,
		}

		for name, expected := range cases {
			// When: the name is parsed
			color, err := ParseColor(name)

			// Then: the matching stone color comes back
			require.NoError(t, err)
			assert.Equal(t, expected, color, "name %q", name)
		}
	})

	t.Run("UnknownColor", func(t *testing.T) {
		for _, name := range []string{"", "x", "white", "black"} {
			_, err := ParseColor(name)
			require.ErrorIs(t, err, apperror.ErrUnknownColor, "name %q", name)
		}
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("PlaysInProtocolText", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame()

		// When: moves arrive as protocol tokens
		require.NoError(t, MakeMove(game, "blue", "a1"))
		require.NoError(t, MakeMove(game, "r", "B2"))
		require.NoError(t, MakeMove(game, "B", "pass"))

		// Then: all three were accepted and the turn is RED's
		require.Len(t, game.Moves(), 3)
		assert.Equal(t, entity.ColorRed, game.Turn())
	})

	t.Run("UnknownColorFails", func(t *testing.T) {
		game := entity.NewGame()

		err := MakeMove(game, "green", "a1")

		require.ErrorIs(t, err, apperror.ErrUnknownColor)
		assert.Empty(t, game.Moves())
	})

	t.Run("IllegalMoveFails", func(t *testing.T) {
		// Given: a1 is already occupied
		game := entity.NewGame()
		require.NoError(t, MakeMove(game, "b", "a1"))

		// When: RED plays onto the occupied point
		err := MakeMove(game, "r", "a1")

		// Then: the move is rejected and not recorded
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.Len(t, game.Moves(), 1)
	})
}

func TestLegal(t *testing.T) {
	game := entity.NewGame()

	assert.True(t, Legal(game, "b", "a1"))
	assert.True(t, Legal(game, "blue", "pass"))
	assert.False(t, Legal(game, "r", "a1"), "out of turn")
	assert.False(t, Legal(game, "green", "a1"), "unknown color")
	assert.False(t, Legal(game, "b", "a20"), "malformed vertex")
}

func TestLiberties(t *testing.T) {
	t.Run("CountsGroupLiberties", func(t *testing.T) {
		// Given: a lone BLUE corner stone
		game := entity.NewGame()
		require.NoError(t, MakeMove(game, "b", "a1"))

		// When: liberties are requested by vertex
		liberties, err := Liberties(game, "a1")

		// Then: the corner stone has its two neighbors as liberties
		require.NoError(t, err)
		assert.Equal(t, 2, liberties)
	})

	t.Run("EmptyPointFails", func(t *testing.T) {
		game := entity.NewGame()

		_, err := Liberties(game, "a1")

		require.ErrorIs(t, err, apperror.ErrEmptyPoint)
	})

	t.Run("MalformedVertexFails", func(t *testing.T) {
		game := entity.NewGame()

		_, err := Liberties(game, "z9")

		require.ErrorIs(t, err, apperror.ErrInvalidVertex)
	})
}
