package entity

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
)

const (
	MinRow = 1
	MaxRow = 10
)

// Coordinate is the internal board position: Row 1..10, Col 1..RowLength(row).
// Coordinates are comparable and used as board map keys.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Vertex returns the canonical textual form of the coordinate, e.g. (1,1) -> "a1".
func (that Coordinate) Vertex() string {
	return fmt.Sprintf("%c%d", 'a'+that.Row-1, that.Col)
}

// RowID identifies a board row either by its letter ('a'..'j', case-insensitive)
// or by its number (1..10). Normalization happens in one place, inside RowLength.
type RowID struct {
	letter   byte
	number   int
	isLetter bool
}

// RowLetter builds a RowID from an alphabetic row character.
func RowLetter(letter byte) RowID {
	return RowID{letter: letter, isLetter: true}
}

// RowNumber builds a RowID from a numeric row.
func RowNumber(number int) RowID {
	return RowID{number: number}
}

func (that RowID) normalize() (int, error) {
	if !that.isLetter {
		return that.number, nil
	}

	letter := that.letter | ('a' - 'A') // lowercase
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidRow, string(that.letter))
	}

	return int(letter-'a') + 1, nil
}

// RowLength returns the number of valid columns in a row. The board widens
// from 11 to 19 columns over rows 1-5 and narrows back to 11 over rows 6-10,
// giving the sequence 11,13,15,17,19,19,17,15,13,11.
func RowLength(row RowID) (int, error) {
	number, err := row.normalize()
	if err != nil {
		return 0, err
	}

	switch {
	case number >= MinRow && number <= 5:
		return 9 + 2*number, nil
	case number >= 6 && number <= MaxRow:
		return 9 + 2*(11-number), nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidRow, number)
	}
}

// vertexCache memoizes ParseVertex results keyed by the exact input text.
// ParseVertex is pure, so the cache is shared by every Game in the process
// and never affects observable behavior.
var vertexCache = struct {
	sync.Mutex
	coords map[string]Coordinate
}{coords: make(map[string]Coordinate)}

// ParseVertex converts vertex text like "a1" or "h13" into a Coordinate:
// one row letter 'a'..'j' (case-insensitive) followed by 1-2 column digits.
// The "pass" and "resign" sentinels are not vertices and are rejected here;
// callers handle them before parsing.
func ParseVertex(vertex string) (Coordinate, error) {
	vertexCache.Lock()
	coord, cached := vertexCache.coords[vertex]
	vertexCache.Unlock()

	if cached {
		return coord, nil
	}

	if len(vertex) < 2 || len(vertex) > 3 {
		return Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidVertex, vertex)
	}

	rowChar := vertex[0] | ('a' - 'A')
	if rowChar < 'a' || rowChar > 'a'+MaxRow-1 {
		return Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidVertex, vertex)
	}

	col := 0
	for i := 1; i < len(vertex); i++ {
		if vertex[i] < '0' || vertex[i] > '9' {
			return Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidVertex, vertex)
		}
		col = col*10 + int(vertex[i]-'0')
	}

	row := int(rowChar-'a') + 1

	maxCol, err := RowLength(RowNumber(row))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidVertex, vertex)
	}

	if col < 1 || col > maxCol {
		return Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidVertex, vertex)
	}

	coord = Coordinate{Row: row, Col: col}

	vertexCache.Lock()
	vertexCache.coords[vertex] = coord
	vertexCache.Unlock()

	return coord, nil
}
