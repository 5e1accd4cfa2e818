package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
	"github.com/rocketscienceinc/hecks-backend/internal/entity"
)

// GameRecord is the archived form of a cleared or finished game: the accepted
// move list plus the color that would have moved next.
type GameRecord struct {
	ID         string        `json:"id"`
	Moves      []entity.Move `json:"moves"`
	NextPlayer entity.Color  `json:"next_player"`
	ArchivedAt time.Time     `json:"archived_at"`
}

type GameRepository interface {
	Save(ctx context.Context, record *GameRecord) error
	GetByID(ctx context.Context, id string) (*GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) Save(ctx context.Context, record *GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	gameKey := "hecks:game:" + record.ID
	if err = that.client.Set(ctx, gameKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game record: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*GameRecord, error) {
	gameKey := "hecks:game:" + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	var record GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	gameKey := "hecks:game:" + id

	if err := that.client.Del(ctx, gameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game record: %w", err)
	}

	return nil
}
