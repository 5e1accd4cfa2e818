package htp

import (
	"context"
	"errors"
	"strconv"
)

var errWrongArgCount = errors.New("wrong number of arguments")

func (that *Server) handlePlay(_ context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", errWrongArgCount
	}

	if err := that.manager.Play(args[0], args[1]); err != nil {
		return "", err
	}

	return "", nil
}

func (that *Server) handleGenMove(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errWrongArgCount
	}

	return that.manager.GenMove(args[0])
}

func (that *Server) handleClearBoard(ctx context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", errWrongArgCount
	}

	if err := that.manager.ClearBoard(ctx); err != nil {
		return "", err
	}

	return "", nil
}

// handleShowBoard starts the diagnostic dump on its own line below the "=".
func (that *Server) handleShowBoard(_ context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", errWrongArgCount
	}

	return "\n" + that.manager.ShowBoard(), nil
}

func (that *Server) handleLiberties(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", errWrongArgCount
	}

	liberties, err := that.manager.Liberties(args[0])
	if err != nil {
		return "", err
	}

	return strconv.Itoa(liberties), nil
}

func (that *Server) handleName(_ context.Context, _ []string) (string, error) {
	return that.name, nil
}

func (that *Server) handleVersion(_ context.Context, _ []string) (string, error) {
	return that.version, nil
}
