package rpc_test

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote/simulated"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
	"github.com/thenoetrevino/quoteboard/internal/testutil"
)

func TestClient_FetchAndMoveOverDaemon(t *testing.T) {
	src := simulated.NewSource(simulated.WithTotals(map[models.Status]int{
		models.StatusAccepted: 75,
		models.StatusPending:  10,
		models.StatusDeclined: 5,
	}))
	_, socketPath := testutil.SetupTestDaemon(t, src)
	client := testutil.SetupTestClient(t, socketPath)
	ctx := context.Background()

	page, err := client.FetchColumnPage(ctx, models.PageRequest{
		Status: models.StatusAccepted, Page: 1, PageSize: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 75, page.Total)
	assert.Len(t, page.Data, 25)
	assert.Equal(t, simulated.QuoteID(50, models.StatusAccepted), page.Data[0].ID)

	id := simulated.QuoteID(0, models.StatusPending)
	res, err := client.UpdateStatus(ctx, models.StatusUpdate{
		ID: id, FromStatus: models.StatusPending, ToStatus: models.StatusAccepted,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Quote)
	assert.Equal(t, models.StatusAccepted, res.Quote.Status)

	// A second move from the stale status is a conflict and keeps its sentinel
	_, err = client.UpdateStatus(ctx, models.StatusUpdate{
		ID: id, FromStatus: models.StatusPending, ToStatus: models.StatusDeclined,
	})
	assert.ErrorIs(t, err, models.ErrStatusConflict)

	snap, err := client.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.RequestsTotal)
	assert.Equal(t, int64(1), snap.FailuresTotal)
}

func TestClient_ConcurrentCalls(t *testing.T) {
	_, socketPath := testutil.SetupTestDaemon(t, simulated.NewSource())
	client := testutil.SetupTestClient(t, socketPath)

	var wg sync.WaitGroup
	errs := make([]error, len(models.Statuses)*4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st := models.Statuses[i%len(models.Statuses)]
			page, err := client.FetchColumnPage(context.Background(), models.PageRequest{
				Status: st, Page: i, PageSize: 20,
			})
			if err == nil && (page.Page != i || page.Data[0].Status != st) {
				err = assert.AnError
			}
			errs[i] = err
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "call %d", i)
	}
}

func TestClient_RacingFirstCallsShareOneConnection(t *testing.T) {
	_, socketPath := testutil.SetupTestDaemon(t, simulated.NewSource())
	client := testutil.SetupTestClient(t, socketPath)

	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = client.Ping(context.Background())
		}()
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "call %d", i)
	}

	// connections dialed by the losing calls are closed, leaving one
	assert.Eventually(t, func() bool {
		snap, err := client.Ping(context.Background())
		return err == nil && snap.ConnectedClients == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClient_ContextCancelAbandonsCall(t *testing.T) {
	fake := testutil.NewFakeRemote(map[models.Status]int{models.StatusPending: 10})
	gate := testutil.NewGate()
	fake.SetFetchGate(gate)
	defer gate.Release()

	_, socketPath := testutil.SetupTestDaemon(t, fake)
	client := testutil.SetupTestClient(t, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.FetchColumnPage(ctx, models.PageRequest{
			Status: models.StatusPending, PageSize: 5,
		})
		done <- err
	}()

	fake.AwaitFetch(t)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled call did not return")
	}

	// The connection is still usable
	gate.Release()
	page, err := client.FetchColumnPage(context.Background(), models.PageRequest{
		Status: models.StatusPending, PageSize: 5,
	})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
}

func TestClient_NoDaemon(t *testing.T) {
	client := rpc.NewClient(filepath.Join(t.TempDir(), "missing.sock"))
	defer func() { _ = client.Close() }()

	_, err := client.Ping(context.Background())
	var de *rpc.DialError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, rpc.ErrSocketNotFound, de.Code)
}

func TestClient_ConnectionLostFailsPendingAndRedials(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "flaky.sock")
	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	accepted := make(chan net.Conn, 2)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			accepted <- conn
		}
	}()

	client := rpc.NewClient(socketPath)
	t.Cleanup(func() { _ = client.Close() })

	done := make(chan error, 1)
	go func() {
		_, err := client.Ping(context.Background())
		done <- err
	}()

	// First connection: read the request, then hang up
	first := <-accepted
	var req rpc.Request
	require.NoError(t, json.NewDecoder(first).Decode(&req))
	assert.Equal(t, rpc.TypePing, req.Type)
	assert.Equal(t, rpc.ProtocolVersion, req.Version)
	assert.NotEmpty(t, req.ID)
	require.NoError(t, first.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, rpc.ErrConnectionLost)
	case <-time.After(2 * time.Second):
		t.Fatal("pending call not failed")
	}

	// Second call dials a fresh connection and gets an answer
	go func() {
		_, err := client.Ping(context.Background())
		done <- err
	}()

	second := <-accepted
	dec, enc := json.NewDecoder(second), json.NewEncoder(second)
	require.NoError(t, dec.Decode(&req))
	require.NoError(t, enc.Encode(rpc.Response{
		Version: rpc.ProtocolVersion,
		ID:      req.ID,
		Type:    rpc.TypePing,
		Metrics: &rpc.MetricsSnapshot{RequestsTotal: 7},
	}))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("redialled call did not return")
	}
	_ = second.Close()
}

func TestClient_Closed(t *testing.T) {
	client := rpc.NewClient(filepath.Join(t.TempDir(), "x.sock"))
	require.NoError(t, client.Close())

	_, err := client.Ping(context.Background())
	assert.ErrorIs(t, err, rpc.ErrClientClosed)
}
