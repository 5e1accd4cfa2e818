package entity

import (
	"fmt"
	"sync"
)

// neighborCache memoizes adjacency lists per coordinate. Adjacency is a pure
// function of a valid coordinate, so the cache is process-wide.
var neighborCache = struct {
	sync.Mutex
	lists map[Coordinate][]Coordinate
}{lists: make(map[Coordinate][]Coordinate)}

// Neighbors returns the coordinates adjacent to coord, ordered left, right,
// then diagonal. The hex rows interlock with a half-step offset that mirrors
// at the board's widest point, so the diagonal link depends on which half of
// the board coord is in and on the parity of its column; every point touches
// two or three others. Panics on an off-board coordinate — all callers go
// through validated vertices.
func Neighbors(coord Coordinate) []Coordinate {
	neighborCache.Lock()
	cached, ok := neighborCache.lists[coord]
	neighborCache.Unlock()

	if ok {
		return cached
	}

	maxCol, err := RowLength(RowNumber(coord.Row))
	if err != nil || coord.Col < 1 || coord.Col > maxCol {
		panic(fmt.Sprintf("neighbors of off-board coordinate (%d,%d)", coord.Row, coord.Col))
	}

	y, x := coord.Row, coord.Col

	neighbors := make([]Coordinate, 0, 3)
	if x > 1 {
		neighbors = append(neighbors, Coordinate{Row: y, Col: x - 1})
	}
	if x < maxCol {
		neighbors = append(neighbors, Coordinate{Row: y, Col: x + 1})
	}

	if y <= 5 {
		switch {
		case y >= 2 && x%2 == 0:
			neighbors = append(neighbors, Coordinate{Row: y - 1, Col: x - 1})
		case x%2 == 1 && y < 5:
			neighbors = append(neighbors, Coordinate{Row: y + 1, Col: x + 1})
		case x%2 == 1:
			neighbors = append(neighbors, Coordinate{Row: y + 1, Col: x})
		}
	} else {
		switch {
		case y <= 9 && x%2 == 0:
			neighbors = append(neighbors, Coordinate{Row: y + 1, Col: x - 1})
		case x%2 == 1 && y > 6:
			neighbors = append(neighbors, Coordinate{Row: y - 1, Col: x + 1})
		case x%2 == 1:
			neighbors = append(neighbors, Coordinate{Row: y - 1, Col: x})
		}
	}

	neighborCache.Lock()
	neighborCache.lists[coord] = neighbors
	neighborCache.Unlock()

	return neighbors
}
