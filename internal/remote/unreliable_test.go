package remote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

func stubRemote(calls *int) Remote {
	return Combine(
		FetcherFunc(func(ctx context.Context, req models.PageRequest) (*models.Page, error) {
			*calls++
			return &models.Page{Page: req.Page, PageSize: req.PageSize}, nil
		}),
		MutatorFunc(func(ctx context.Context, upd models.StatusUpdate) (*models.StatusUpdateResult, error) {
			*calls++
			return &models.StatusUpdateResult{Success: true}, nil
		}),
	)
}

func TestUnreliable_PassThrough(t *testing.T) {
	calls := 0
	u := NewUnreliable(stubRemote(&calls), WithLatency(0))

	page, err := u.FetchColumnPage(context.Background(), models.PageRequest{Status: models.StatusPending, Page: 3, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)

	res, err := u.UpdateStatus(context.Background(), models.StatusUpdate{ID: "QT-1"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, calls)
}

func TestUnreliable_AlwaysRejects(t *testing.T) {
	calls := 0
	u := NewUnreliable(stubRemote(&calls), WithLatency(0), WithFailureRate(1), WithFetchFailureRate(1), WithSeed(7))

	_, err := u.UpdateStatus(context.Background(), models.StatusUpdate{ID: "QT-1", ToStatus: models.StatusDeclined})
	assert.ErrorIs(t, err, models.ErrRejected)

	_, err = u.FetchColumnPage(context.Background(), models.PageRequest{Status: models.StatusPending})
	assert.ErrorIs(t, err, models.ErrRejected)

	assert.Equal(t, 0, calls, "rejected calls must not reach the wrapped remote")
}

func TestUnreliable_LatencyHonoursContext(t *testing.T) {
	calls := 0
	u := NewUnreliable(stubRemote(&calls), WithLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := u.FetchColumnPage(ctx, models.PageRequest{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 1.0, clamp01(3))
	assert.Equal(t, 0.25, clamp01(0.25))
}
