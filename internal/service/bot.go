package service

import (
	"math/rand"

	"github.com/rocketscienceinc/hecks-backend/internal/entity"
)

// BotService picks moves for the genmove command. It is a plain consumer of
// the rules engine with no search of its own.
type BotService interface {
	GenerateMove(gameInstance *entity.Game, color entity.Color) string
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// GenerateMove returns a uniformly random legal placement for color, falling
// back to "pass" when no placement is legal.
func (that *botService) GenerateMove(gameInstance *entity.Game, color entity.Color) string {
	candidates := allVertices()
	rand.Shuffle(len(candidates), func(i, j int) { //nolint: gosec // it's ok
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, vertex := range candidates {
		if gameInstance.IsLegal(entity.NewMove(color, vertex)) {
			return vertex
		}
	}

	return entity.VertexPass
}

// allVertices enumerates every vertex on the board; the full board holds 150.
func allVertices() []string {
	vertices := make([]string, 0, 150)

	for row := entity.MinRow; row <= entity.MaxRow; row++ {
		length, err := entity.RowLength(entity.RowNumber(row))
		if err != nil {
			continue
		}

		for col := 1; col <= length; col++ {
			vertices = append(vertices, entity.Coordinate{Row: row, Col: col}.Vertex())
		}
	}

	return vertices
}
