package entity

import (
	"fmt"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
)

// Board is a sparse mapping from Coordinate to the occupying stone color.
// A coordinate missing from the map is an empty point; there is no explicit
// "empty" color value.
type Board struct {
	stones map[Coordinate]Color
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{stones: make(map[Coordinate]Color)}
}

// Occupant returns the stone at coord and whether the point is occupied.
func (that Board) Occupant(coord Coordinate) (Color, bool) {
	color, ok := that.stones[coord]
	return color, ok
}

func (that Board) place(coord Coordinate, color Color) {
	that.stones[coord] = color
}

func (that Board) remove(coord Coordinate) {
	delete(that.stones, coord)
}

// CountLiberties returns the number of liberties of the group with a stone at
// coord, breadth-first over the connected same-color stones. Liberties are
// counted once per stone/empty-neighbor adjacency: an empty point touching two
// group stones contributes twice. Fails with ErrEmptyPoint when coord holds no
// stone.
func (that Board) CountLiberties(coord Coordinate) (int, error) {
	color, ok := that.stones[coord]
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperror.ErrEmptyPoint, coord.Vertex())
	}

	liberties := 0
	queue := []Coordinate{coord}
	expanded := make(map[Coordinate]bool)

	for len(queue) > 0 {
		visiting := queue[0]
		queue = queue[1:]

		if expanded[visiting] {
			continue
		}
		expanded[visiting] = true

		for _, neighbor := range Neighbors(visiting) {
			neighborColor, occupied := that.stones[neighbor]
			switch {
			case !occupied:
				liberties++
			case neighborColor == color:
				queue = append(queue, neighbor)
			}
		}
	}

	return liberties, nil
}
