package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/layout"
)

// Run starts the program over board and blocks until the user quits or
// ctx is cancelled. The caller owns board and closes it afterwards.
func Run(ctx context.Context, board *kanban.Board, cfg *config.Config, items []layout.Item, opts ...Option) error {
	model := InitialModel(ctx, board, cfg, items, opts...)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
