package entity

import "encoding/json"

// Color marks the two players' stones. There are exactly two values; empty
// points carry no color at all (see Board).
type Color string

const (
	ColorBlue Color = "B"
	ColorRed  Color = "R"
)

const (
	VertexPass   = "pass"
	VertexResign = "resign"
)

// Other returns the opposing color.
func (that Color) Other() Color {
	if that == ColorBlue {
		return ColorRed
	}
	return ColorBlue
}

// Move pairs a color with the vertex text it was played at: either a board
// vertex or one of the pass/resign sentinels. A Move never changes after
// construction, which keeps the game's move list a faithful audit trail.
type Move struct {
	color  Color
	vertex string
}

// NewMove builds a move. The vertex text is not validated here; legality is
// decided by Game.IsLegal.
func NewMove(color Color, vertex string) Move {
	return Move{color: color, vertex: vertex}
}

func (that Move) Color() Color {
	return that.color
}

func (that Move) Vertex() string {
	return that.vertex
}

// IsPass reports whether the move is the pass sentinel.
func (that Move) IsPass() bool {
	return that.vertex == VertexPass
}

// IsResign reports whether the move is the resign sentinel.
func (that Move) IsResign() bool {
	return that.vertex == VertexResign
}

func (that Move) isSentinel() bool {
	return that.IsPass() || that.IsResign()
}

// moveJSON mirrors Move for the archive's (de)serialization.
type moveJSON struct {
	Color  Color  `json:"color"`
	Vertex string `json:"vertex"`
}

func (that Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(moveJSON{Color: that.color, Vertex: that.vertex})
}

func (that *Move) UnmarshalJSON(data []byte) error {
	var aux moveJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	that.color = aux.Color
	that.vertex = aux.Vertex

	return nil
}
