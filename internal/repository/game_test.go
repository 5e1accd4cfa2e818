package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hecks-backend/internal/apperror"
	"github.com/rocketscienceinc/hecks-backend/internal/entity"
	"github.com/rocketscienceinc/hecks-backend/testing/suite"
)

func TestGameRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: an archived game with a short move list
	record := &GameRecord{
		ID: uuid.NewString(),
		Moves: []entity.Move{
			entity.NewMove(entity.ColorBlue, "a1"),
			entity.NewMove(entity.ColorRed, "b2"),
			entity.NewMove(entity.ColorBlue, entity.VertexPass),
		},
		NextPlayer: entity.ColorRed,
		ArchivedAt: time.Now().UTC(),
	}

	// When: Save is called
	err := gameRepo.Save(ctx, record)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a saved record
		record := &GameRecord{
			ID: uuid.NewString(),
			Moves: []entity.Move{
				entity.NewMove(entity.ColorBlue, "e9"),
				entity.NewMove(entity.ColorRed, "f9"),
			},
			NextPlayer: entity.ColorBlue,
			ArchivedAt: time.Now().UTC(),
		}

		err := gameRepo.Save(ctx, record)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrieved, err := gameRepo.GetByID(ctx, record.ID)

		// Then: the move list round-trips intact
		require.NoError(t, err)
		require.Equal(t, record.ID, retrieved.ID)
		require.Equal(t, record.Moves, retrieved.Moves)
		assert.Equal(t, record.NextPlayer, retrieved.NextPlayer)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		retrieved, err := gameRepo.GetByID(ctx, "9999999")

		// Then: ErrGameNotFound should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a saved record
	record := &GameRecord{
		ID:         uuid.NewString(),
		Moves:      []entity.Move{entity.NewMove(entity.ColorBlue, "a1")},
		NextPlayer: entity.ColorRed,
		ArchivedAt: time.Now().UTC(),
	}
	require.NoError(t, gameRepo.Save(ctx, record))

	// When: the record is deleted
	err := gameRepo.DeleteByID(ctx, record.ID)
	require.NoError(t, err)

	// Then: it can no longer be fetched
	_, err = gameRepo.GetByID(ctx, record.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}
