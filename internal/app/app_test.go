package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quoteboard/internal/config"
	"github.com/thenoetrevino/quoteboard/internal/database"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

func testConfig(mode string) *config.Config {
	cfg := config.Default()
	cfg.Remote.Mode = mode
	cfg.Database.Path = ":memory:"
	zero := 0
	cfg.Remote.LatencyMS = &zero
	return cfg
}

func TestNew_Simulated(t *testing.T) {
	a, err := New(context.Background(), testConfig(config.ModeSimulated))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	require.NotNil(t, a.Quotes)
	require.NotNil(t, a.Layout)
	assert.Nil(t, a.Store)
	_, ok := a.Backend().(*remote.Unreliable)
	assert.True(t, ok)

	page, err := a.Quotes.ListColumn(context.Background(), models.StatusPending, 0)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPendingTotal, page.Total)
}

func TestNew_SQLite(t *testing.T) {
	a, err := New(context.Background(), testConfig(config.ModeSQLite))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	require.NotNil(t, a.Store)
	require.NoError(t, a.Store.Seed(context.Background(), map[models.Status]int{
		models.StatusAccepted: 3,
	}, nil))

	page, err := a.Quotes.ListColumn(context.Background(), models.StatusAccepted, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
}

func TestNew_DaemonIsLazy(t *testing.T) {
	cfg := testConfig(config.ModeDaemon)
	cfg.Remote.SocketPath = t.TempDir() + "/absent.sock"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err, "no connection is made at startup")
	defer func() { _ = a.Close() }()

	_, ok := a.Daemon()
	assert.True(t, ok)

	_, err = a.Quotes.ListColumn(context.Background(), models.StatusAccepted, 0)
	var de *rpc.DialError
	assert.ErrorAs(t, err, &de)
}

func TestNew_InvalidMode(t *testing.T) {
	_, err := New(context.Background(), testConfig("carrier-pigeon"))
	assert.ErrorIs(t, err, config.ErrInvalidMode)
}

func TestNew_WithDBAndRemote(t *testing.T) {
	db, err := database.InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	fetches := 0
	r := remote.Combine(
		remote.FetcherFunc(func(_ context.Context, req models.PageRequest) (*models.Page, error) {
			fetches++
			return &models.Page{Page: req.Page, PageSize: req.PageSize}, nil
		}),
		nil,
	)

	a, err := New(context.Background(), testConfig(config.ModeSQLite), WithDB(db), WithRemote(r))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// The caller's database stays open
	require.NoError(t, db.PingContext(context.Background()))

	_, err = a.Quotes.ListColumn(context.Background(), models.StatusDeclined, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
}

func TestNewBoard_UsesConfiguredPageSize(t *testing.T) {
	cfg := testConfig(config.ModeSimulated)
	cfg.Board.PageSize = 25

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	board := a.NewBoard()
	defer board.Close()

	assert.Equal(t, 25, board.Column(models.StatusAccepted).Snapshot().PageSize)
}
