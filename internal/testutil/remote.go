package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote/simulated"
)

// Gate blocks callers until the test releases it
type Gate struct {
	ch   chan struct{}
	once sync.Once
}

// NewGate returns a closed-off gate
func NewGate() *Gate {
	return &Gate{ch: make(chan struct{})}
}

// Wait blocks until Release or until ctx is done
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release unblocks every current and future Wait
func (g *Gate) Release() {
	g.once.Do(func() { close(g.ch) })
}

// FakeRemote is a scriptable remote. By default it serves generated pages
// for Totals and accepts every status update. FetchGate and UpdateGate, when
// set, hold calls until released.
type FakeRemote struct {
	mu sync.Mutex

	Totals      map[models.Status]int
	FetchErr    error
	UpdateErr   error
	FetchGate   *Gate
	UpdateGate  *Gate
	FetchCalls  []models.PageRequest
	UpdateCalls []models.StatusUpdate

	// fetchStarted receives one value per FetchColumnPage call
	fetchStarted chan models.PageRequest
}

// NewFakeRemote creates a fake with the given column totals
func NewFakeRemote(totals map[models.Status]int) *FakeRemote {
	return &FakeRemote{
		Totals:       totals,
		fetchStarted: make(chan models.PageRequest, 64),
	}
}

// FetchColumnPage returns generated quotes for the requested window
func (f *FakeRemote) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	f.mu.Lock()
	f.FetchCalls = append(f.FetchCalls, req)
	gate, ferr := f.FetchGate, f.FetchErr
	total := f.Totals[req.Status]
	f.mu.Unlock()

	select {
	case f.fetchStarted <- req:
	default:
	}

	if gate != nil {
		if err := gate.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if ferr != nil {
		return nil, ferr
	}
	return GeneratedPage(req, total), nil
}

// UpdateStatus records the call and returns UpdateErr, if set
func (f *FakeRemote) UpdateStatus(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
	f.mu.Lock()
	f.UpdateCalls = append(f.UpdateCalls, upd)
	gate, uerr := f.UpdateGate, f.UpdateErr
	f.mu.Unlock()

	if gate != nil {
		if err := gate.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if uerr != nil {
		return nil, uerr
	}
	return &models.StatusUpdateResult{Success: true}, nil
}

// SetFetchGate replaces the fetch gate under the fake's lock
func (f *FakeRemote) SetFetchGate(g *Gate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchGate = g
}

// SetUpdateGate replaces the update gate under the fake's lock
func (f *FakeRemote) SetUpdateGate(g *Gate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateGate = g
}

// SetUpdateErr replaces the update error under the fake's lock
func (f *FakeRemote) SetUpdateErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateErr = err
}

// SetFetchErr replaces the fetch error under the fake's lock
func (f *FakeRemote) SetFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchErr = err
}

// FetchCount returns the number of fetches received so far
func (f *FakeRemote) FetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.FetchCalls)
}

// Updates returns a copy of the status updates received so far
func (f *FakeRemote) Updates() []models.StatusUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.StatusUpdate(nil), f.UpdateCalls...)
}

// AwaitFetch waits until a fetch has reached the fake
func (f *FakeRemote) AwaitFetch(t *testing.T) models.PageRequest {
	t.Helper()
	select {
	case req := <-f.fetchStarted:
		return req
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch")
		return models.PageRequest{}
	}
}

// GeneratedPage builds the page a column of total generated records would
// return for req. TotalAmount is a flat 1000 per record so tests can
// predict it.
func GeneratedPage(req models.PageRequest, total int) *models.Page {
	start := req.Page * req.PageSize
	end := min(start+req.PageSize, total)

	data := make([]models.Quote, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		data = append(data, simulated.Generate(i, req.Status))
	}

	return &models.Page{
		Data:        data,
		Total:       total,
		Page:        req.Page,
		PageSize:    req.PageSize,
		TotalAmount: float64(total) * 1000,
		HasMore:     end < total,
	}
}
