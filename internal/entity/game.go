package entity

import (
	"fmt"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
)

// Game is the aggregate rules engine state: the board, the append-only move
// list and whose turn it is. BLUE moves first. A Game is mutated only through
// Play and is not safe for concurrent use; the owning command processor must
// serialize access.
type Game struct {
	board Board
	moves []Move
	turn  Color
}

// NewGame returns a fresh game with an empty board and BLUE to move.
func NewGame() *Game {
	return &Game{
		board: NewBoard(),
		turn:  ColorBlue,
	}
}

// Turn returns the color to move.
func (that *Game) Turn() Color {
	return that.turn
}

// Moves returns a copy of the moves accepted so far, in order.
func (that *Game) Moves() []Move {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)
	return moves
}

// Occupant returns the stone at coord and whether the point is occupied.
func (that *Game) Occupant(coord Coordinate) (Color, bool) {
	return that.board.Occupant(coord)
}

// Liberties returns the liberty count of the group with a stone at coord.
func (that *Game) Liberties(coord Coordinate) (int, error) {
	return that.board.CountLiberties(coord)
}

// IsLegal reports whether move can be played right now: the move's color must
// be to move, pass and resign are then always legal, and a placement needs an
// empty point and a surviving group. Malformed vertex text makes the move
// illegal, it never surfaces as an error.
func (that *Game) IsLegal(move Move) bool {
	if move.Color() != that.turn {
		return false
	}

	if move.isSentinel() {
		return true
	}

	coord, err := ParseVertex(move.Vertex())
	if err != nil {
		return false
	}

	if _, occupied := that.board.Occupant(coord); occupied {
		return false
	}

	return that.isNotSuicide(move.Color(), coord)
}

// isNotSuicide probes the placement: put the stone down, count the new group's
// liberties, take the stone back off. The board is restored exactly whatever
// the outcome. There is no capture rule: a stone whose group ends up with zero
// liberties is suicide even when it would also strip an opposing group of its
// last liberty.
func (that *Game) isNotSuicide(color Color, coord Coordinate) bool {
	that.board.place(coord, color)
	liberties, err := that.board.CountLiberties(coord)
	that.board.remove(coord)

	return err == nil && liberties != 0
}

// Play applies move to the game. An illegal move fails with ErrIllegalMove and
// leaves the board untouched. Pass and resign place no stone; every accepted
// move is appended to the move list and hands the turn to the other color.
func (that *Game) Play(move Move) error {
	if !that.IsLegal(move) {
		return fmt.Errorf("%w: %s %s", apperror.ErrIllegalMove, move.Color(), move.Vertex())
	}

	if !move.isSentinel() {
		coord, err := ParseVertex(move.Vertex())
		if err != nil {
			// unreachable: IsLegal already parsed the vertex
			return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move.Vertex())
		}
		that.board.place(coord, move.Color())
	}

	that.moves = append(that.moves, move)
	that.turn = that.turn.Other()

	return nil
}
