package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hecks-backend/internal/config"
	"github.com/rocketscienceinc/hecks-backend/internal/repository"
	"github.com/rocketscienceinc/hecks-backend/internal/repository/storage"
	"github.com/rocketscienceinc/hecks-backend/internal/service"
	"github.com/rocketscienceinc/hecks-backend/internal/transport/htp"
	"github.com/rocketscienceinc/hecks-backend/internal/usecase"
)

// RunApp - runs the engine: wires the optional archive storage, the game
// manager and the HTP command loop over stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var archive repository.GameRepository
	if conf.ArchiveEnabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		archive = repository.NewGameRepository(redisStorage.Connection)
	}

	manager := usecase.NewGameManager(logger, service.NewBotService(), archive)
	server := htp.New(logger, manager, conf.Engine.Name, conf.Engine.Version)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTP engine", "name", conf.Engine.Name, "version", conf.Engine.Version)
		errCh <- server.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("engine error: %w", err)
		}
		log.Info("Engine finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
