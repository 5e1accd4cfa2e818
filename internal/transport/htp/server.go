package htp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// gameManager is the slice of the usecase layer the command loop needs.
type gameManager interface {
	Play(color, vertex string) error
	GenMove(color string) (string, error)
	ClearBoard(ctx context.Context) error
	Shutdown(ctx context.Context) error
	ShowBoard() string
	Liberties(vertex string) (int, error)
}

// Server runs the line-oriented HTP command loop: one command per input line,
// one "=" (success) or "?" (failure) response line per command. It owns no
// sockets; production wires it to stdin/stdout, tests to in-memory buffers.
type Server struct {
	logger  *slog.Logger
	manager gameManager

	name    string
	version string

	handlers map[string]func(ctx context.Context, args []string) (string, error)
}

func New(logger *slog.Logger, manager gameManager, name, version string) *Server {
	server := &Server{
		logger:  logger.With("component", "htp"),
		manager: manager,

		name:    name,
		version: version,

		handlers: make(map[string]func(context.Context, []string) (string, error)),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["genmove"] = server.handleGenMove
	server.handlers["clear_board"] = server.handleClearBoard
	server.handlers["showboard"] = server.handleShowBoard
	server.handlers["liberties"] = server.handleLiberties
	server.handlers["name"] = server.handleName
	server.handlers["version"] = server.handleVersion

	return server
}

// Start reads commands from in until "quit", EOF or context cancellation,
// archiving the live game through the manager on the way out.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)

	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]

		that.logger.Info("got command", "command", command, "args", args)

		if command == "quit" {
			if err := respond(writer, "="); err != nil {
				return err
			}
			return that.manager.Shutdown(ctx)
		}

		handler, ok := that.handlers[command]
		if !ok {
			that.logger.Warn("unknown command", "command", command)
			if err := respond(writer, "? unknown command"); err != nil {
				return err
			}
			continue
		}

		result, err := handler(ctx, args)
		if err != nil {
			that.logger.Error("command failed", "command", command, "error", err)
			if err = respond(writer, "? "+err.Error()); err != nil {
				return err
			}
			continue
		}

		response := "="
		if result != "" {
			response += " " + result
		}

		if err = respond(writer, response); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	return that.manager.Shutdown(ctx)
}

func respond(writer *bufio.Writer, line string) error {
	if _, err := writer.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush response: %w", err)
	}

	return nil
}
