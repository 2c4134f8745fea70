// Package tui is the board's bubbletea program: model, update and view.
package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/tui/components"
	"github.com/thenoetrevino/quoteboard/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Board  *kanban.Board
	Layout []layout.Item

	UiState           *state.UIState
	NotificationState *state.NotificationState
	DragState         *state.DragState

	keyboard *kanban.KeyboardSensor
	events   *boardEvents
	keys     keyMap
	help     help.Model

	jumpForm   *huh.Form
	jumpValue  *string
	jumpStatus models.Status
	jumpPages  int

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Model
type Option func(*Model)

// WithClock replaces time.Now, used by tests to drive hold activation
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger for input diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// InitialModel creates the model for board. items is the dashboard layout
// that orders the summary widgets above the columns.
func InitialModel(ctx context.Context, board *kanban.Board, cfg *config.Config, items []layout.Item, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	var sensor kanban.ActivationSensor
	switch cfg.Input.PointerActivation {
	case config.ActivationHold:
		tol := float64(kanban.DefaultHoldTolerance)
		if cfg.Input.HoldTolerance != nil {
			tol = *cfg.Input.HoldTolerance
		}
		sensor = kanban.NewHoldSensor(cfg.Input.HoldDelay(), tol)
	default:
		sensor = kanban.NewPointerSensor(cfg.Input.DragDistance)
	}

	h := help.New()

	m := Model{
		Ctx:               ctx,
		Config:            cfg,
		Board:             board,
		Layout:            items,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		DragState:         state.NewDragState(sensor),
		keyboard:          kanban.NewKeyboardSensor(board.Drag()),
		events:            newBoardEvents(board),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              h,
		now:               time.Now,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init mounts the board and starts listening for its changes
func (m Model) Init() tea.Cmd {
	board := m.Board
	return tea.Batch(
		func() tea.Msg {
			board.Mount()
			return nil
		},
		waitForBoard(m.Ctx, m.events),
	)
}

// Close detaches the model from the board's controllers
func (m Model) Close() {
	m.events.close()
}

// currentStatus returns the status of the selected column
func (m Model) currentStatus() models.Status {
	statuses := m.Board.Statuses()
	if len(statuses) == 0 {
		return ""
	}
	return statuses[min(m.UiState.SelectedColumn(), len(statuses)-1)]
}

// currentWindow returns the snapshot of the selected column
func (m Model) currentWindow() kanban.Window {
	return m.Board.Column(m.currentStatus()).Snapshot()
}

// selectedQuote returns the selected card of the selected column
func (m Model) selectedQuote() (models.Quote, bool) {
	w := m.currentWindow()
	i := m.UiState.SelectedCard(w.Status)
	if i < 0 || i >= len(w.Items) {
		return models.Quote{}, false
	}
	return w.Items[i], true
}

// dragging reports the active session, if any
func (m Model) dragging() (kanban.Session, bool) {
	return m.Board.Drag().Active()
}
