package tui

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quoteboard/internal/kanban"
)

// boardChangedMsg is sent after one or more column windows changed or
// moves settled. Results holds the settled moves in order.
type boardChangedMsg struct {
	Results []kanban.Result
}

// boardEvents turns controller and coordinator callbacks, which run on
// background goroutines, into messages for the program. Column changes are
// coalesced since the view always reads the latest snapshot; move results
// are queued so none is lost.
type boardEvents struct {
	signal chan struct{}

	mu      sync.Mutex
	results []kanban.Result

	unsubs []func()
}

func newBoardEvents(b *kanban.Board) *boardEvents {
	e := &boardEvents{signal: make(chan struct{}, 1)}
	for _, c := range b.Columns() {
		e.unsubs = append(e.unsubs, c.Subscribe(func(kanban.Window) { e.notify() }))
	}
	e.unsubs = append(e.unsubs, b.Drag().Subscribe(e.settled))
	return e
}

func (e *boardEvents) notify() {
	select {
	case e.signal <- struct{}{}:
	default:
	}
}

func (e *boardEvents) settled(r kanban.Result) {
	e.mu.Lock()
	e.results = append(e.results, r)
	e.mu.Unlock()
	e.notify()
}

func (e *boardEvents) drain() []kanban.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.results
	e.results = nil
	return out
}

func (e *boardEvents) close() {
	for _, u := range e.unsubs {
		u()
	}
	e.unsubs = nil
}

// waitForBoard returns a command that blocks until the board changes
func waitForBoard(ctx context.Context, e *boardEvents) tea.Cmd {
	if e == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-e.signal:
			return boardChangedMsg{Results: e.drain()}
		case <-ctx.Done():
			return nil
		}
	}
}
