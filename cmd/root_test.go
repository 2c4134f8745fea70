package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quoteboard/internal/cli"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/testutil"
)

// setupSQLite points the CLI at a fresh sqlite file and returns its path
func setupSQLite(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "quotes.db")
	testutil.WriteConfig(t, "remote:\n  mode: sqlite\ndatabase:\n  path: "+dbPath+"\n")
	return dbPath
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, NewRootCmd(), args...)
}

func seedQuotes(t *testing.T) {
	t.Helper()
	_, _, err := run(t, "seed", "--accepted", "3", "--pending", "2", "--declined", "1", "--quiet")
	require.NoError(t, err)
}

func listIDs(t *testing.T, status models.Status) ([]string, float64) {
	t.Helper()
	out, _, err := run(t, "quote", "list", "--status", string(status), "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	require.Equal(t, true, result["success"])
	page := result["page"].(map[string]any)

	var ids []string
	data, _ := page["data"].([]any)
	for _, d := range data {
		ids = append(ids, d.(map[string]any)["id"].(string))
	}
	return ids, page["total"].(float64)
}

func TestSeed_JSONCounts(t *testing.T) {
	setupSQLite(t)

	out, _, err := run(t, "seed", "--accepted", "4", "--pending", "0", "--declined", "2", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	counts := result["counts"].(map[string]any)
	assert.Equal(t, float64(4), counts["accepted"])
	assert.Equal(t, float64(0), counts["pending"])
	assert.Equal(t, float64(2), counts["declined"])
}

func TestSeed_RejectsNegative(t *testing.T) {
	setupSQLite(t)

	_, stderr, err := run(t, "seed", "--declined", "-1")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, stderr, "--declined must not be negative")
}

func TestQuoteList(t *testing.T) {
	setupSQLite(t)
	seedQuotes(t)

	ids, total := listIDs(t, models.StatusAccepted)
	assert.Len(t, ids, 3)
	assert.Equal(t, float64(3), total)

	out, _, err := run(t, "quote", "list", "--status", "declined")
	require.NoError(t, err)
	assert.Contains(t, out, "1 quotes")
	assert.Contains(t, out, "page 1 / 1")
}

func TestQuoteList_InvalidStatus(t *testing.T) {
	setupSQLite(t)

	_, stderr, err := run(t, "quote", "list", "--status", "won")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, stderr, "must be: accepted, pending, declined")
}

func TestQuoteMove(t *testing.T) {
	setupSQLite(t)
	seedQuotes(t)

	pending, _ := listIDs(t, models.StatusPending)
	require.NotEmpty(t, pending)
	id := pending[0]

	out, _, err := run(t, "quote", "move", id, "pending", "accepted", "--json")
	require.NoError(t, err)
	moved := testutil.ParseJSON(t, out)["quote"].(map[string]any)
	assert.Equal(t, id, moved["id"])
	assert.Equal(t, "accepted", moved["status"])

	accepted, total := listIDs(t, models.StatusAccepted)
	assert.Equal(t, float64(4), total)
	assert.Equal(t, id, accepted[0], "moved quote lands at the head of its new column")

	_, remaining := listIDs(t, models.StatusPending)
	assert.Equal(t, float64(1), remaining)
}

func TestQuoteMove_StaleSource(t *testing.T) {
	setupSQLite(t)
	seedQuotes(t)

	pending, _ := listIDs(t, models.StatusPending)
	id := pending[0]
	_, _, err := run(t, "quote", "move", id, "pending", "declined", "--quiet")
	require.NoError(t, err)

	out, _, err := run(t, "quote", "move", id, "pending", "accepted", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))
	assert.True(t, cli.IsReported(err))

	errData := testutil.ParseJSON(t, out)["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errData["code"])
}

func TestQuoteMove_UnknownQuote(t *testing.T) {
	setupSQLite(t)
	seedQuotes(t)

	_, _, err := run(t, "quote", "move", "QT-99999999", "pending", "accepted")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestLayout_MoveShowReset(t *testing.T) {
	setupSQLite(t)

	out, _, err := run(t, "layout", "show", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "accepted-total\npending-total\ndeclined-total\npipeline-value\nconversion-rate\nquote-board\n", out)

	_, _, err = run(t, "layout", "move", "declined-total", "accepted-total", "--quiet")
	require.NoError(t, err)

	out, _, err = run(t, "layout", "show", "--json")
	require.NoError(t, err)
	items := testutil.ParseJSON(t, out)["items"].([]any)
	require.Len(t, items, 6)
	first := items[0].(map[string]any)
	assert.Equal(t, "declined-total", first["id"])
	assert.Equal(t, float64(0), first["order"])

	out, _, err = run(t, "layout", "reset", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "accepted-total\npending-total\n")
}

func TestLayout_MoveAcrossSizes(t *testing.T) {
	setupSQLite(t)

	_, _, err := run(t, "layout", "move", "accepted-total", "pipeline-value")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, _, err = run(t, "layout", "move", "nope", "pipeline-value")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestLayout_SeparateDashboards(t *testing.T) {
	setupSQLite(t)

	_, _, err := run(t, "layout", "move", "pipeline-value", "conversion-rate", "--dashboard", "team", "--quiet")
	require.NoError(t, err)

	out, _, err := run(t, "layout", "show", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "pipeline-value\nconversion-rate\n", "default dashboard is untouched")

	out, _, err = run(t, "layout", "show", "--dashboard", "team", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "conversion-rate\npipeline-value\n")
}

func TestStatus_RunningDaemon(t *testing.T) {
	testutil.WriteConfig(t, "")
	fake := testutil.NewFakeRemote(map[models.Status]int{models.StatusPending: 5})
	_, socket := testutil.SetupTestDaemon(t, fake)

	out, _, err := run(t, "status", "--socket", socket, "--json")
	require.NoError(t, err)

	metrics := testutil.ParseJSON(t, out)["metrics"].(map[string]any)
	assert.GreaterOrEqual(t, metrics["connected_clients"].(float64), float64(1))
	assert.GreaterOrEqual(t, metrics["requests_total"].(float64), float64(1))
}

func TestStatus_NoDaemon(t *testing.T) {
	testutil.WriteConfig(t, "")

	_, stderr, err := run(t, "status", "--socket", filepath.Join(t.TempDir(), "missing.sock"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitUnavailable, cli.ExitCode(err))
	assert.Contains(t, stderr, "Error:")
}

func TestServe_RejectsDaemonMode(t *testing.T) {
	testutil.WriteConfig(t, "")

	_, _, err := run(t, "serve", "--mode", "daemon")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestInvalidMode(t *testing.T) {
	testutil.WriteConfig(t, "")

	_, _, err := run(t, "quote", "list", "--mode", "carrier-pigeon")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}
