package hecks

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
	"github.com/rocketscienceinc/hecks-backend/internal/entity"
)

// ParseColor maps the textual color names used by the command protocol to an
// entity.Color. Accepted forms: "b", "blue", "r", "red" and the single-letter
// board marks, case-insensitive.
func ParseColor(name string) (entity.Color, error) {
	switch strings.ToLower(name) {
	case "b", "blue":
		return entity.ColorBlue, nil
	case "r", "red":
		return entity.ColorRed, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownColor, name)
	}
}

// MakeMove plays one move on the game: color and vertex arrive as protocol
// text, vertex being a board vertex or the "pass"/"resign" sentinels.
func MakeMove(gameInstance *entity.Game, color, vertex string) error {
	stone, err := ParseColor(color)
	if err != nil {
		return err
	}

	if err = gameInstance.Play(entity.NewMove(stone, vertex)); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// Legal reports whether the textual move would be accepted right now. An
// unknown color name is simply not legal.
func Legal(gameInstance *entity.Game, color, vertex string) bool {
	stone, err := ParseColor(color)
	if err != nil {
		return false
	}

	return gameInstance.IsLegal(entity.NewMove(stone, vertex))
}

// Liberties resolves the vertex and returns the liberty count of the group
// occupying it.
func Liberties(gameInstance *entity.Game, vertex string) (int, error) {
	coord, err := entity.ParseVertex(vertex)
	if err != nil {
		return 0, err
	}

	return gameInstance.Liberties(coord)
}
