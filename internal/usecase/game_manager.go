package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/hecks-backend/internal/entity"
	"github.com/rocketscienceinc/hecks-backend/internal/hecks"
	"github.com/rocketscienceinc/hecks-backend/internal/repository"
	"github.com/rocketscienceinc/hecks-backend/internal/service"
)

type gameArchive interface {
	Save(ctx context.Context, record *repository.GameRecord) error
}

// GameManager owns the single live game the command processor operates on.
// It is the single writer the rules engine requires; the line-oriented
// command loop serializes all calls into it.
type GameManager struct {
	logger  *slog.Logger
	bot     service.BotService
	archive gameArchive

	game *entity.Game
}

// NewGameManager builds a manager with a fresh game. archive may be nil, in
// which case cleared games are simply dropped.
func NewGameManager(logger *slog.Logger, bot service.BotService, archive gameArchive) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		bot:     bot,
		archive: archive,

		game: entity.NewGame(),
	}
}

// Play applies one textual move to the live game.
func (that *GameManager) Play(color, vertex string) error {
	if err := hecks.MakeMove(that.game, color, vertex); err != nil {
		return fmt.Errorf("failed to play move: %w", err)
	}

	that.logger.Debug("played move", "color", color, "vertex", vertex)

	return nil
}

// GenMove picks a legal move for color, plays it and returns its vertex text.
func (that *GameManager) GenMove(color string) (string, error) {
	stone, err := hecks.ParseColor(color)
	if err != nil {
		return "", fmt.Errorf("failed to generate move: %w", err)
	}

	vertex := that.bot.GenerateMove(that.game, stone)

	if err = that.game.Play(entity.NewMove(stone, vertex)); err != nil {
		return "", fmt.Errorf("failed to play generated move: %w", err)
	}

	that.logger.Debug("generated move", "color", color, "vertex", vertex)

	return vertex, nil
}

// ClearBoard archives the current game when anything was played on it and
// swaps in a fresh one.
func (that *GameManager) ClearBoard(ctx context.Context) error {
	if err := that.archiveCurrent(ctx); err != nil {
		return err
	}

	that.game = entity.NewGame()

	return nil
}

// Shutdown archives the current game before the engine exits.
func (that *GameManager) Shutdown(ctx context.Context) error {
	return that.archiveCurrent(ctx)
}

func (that *GameManager) archiveCurrent(ctx context.Context) error {
	moves := that.game.Moves()
	if that.archive == nil || len(moves) == 0 {
		return nil
	}

	record := &repository.GameRecord{
		ID:         uuid.NewString(),
		Moves:      moves,
		NextPlayer: that.game.Turn(),
		ArchivedAt: time.Now().UTC(),
	}

	if err := that.archive.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	that.logger.Info("archived game", "id", record.ID, "moves", len(moves))

	return nil
}

// ShowBoard renders the live board for diagnostics.
func (that *GameManager) ShowBoard() string {
	return that.game.Render()
}

// Liberties returns the liberty count of the group at the given vertex.
func (that *GameManager) Liberties(vertex string) (int, error) {
	return hecks.Liberties(that.game, vertex)
}
