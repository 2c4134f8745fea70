package components

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/quoteboard/internal/kanban"
	"github.com/thenoetrevino/quoteboard/internal/layout"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

func quotes(n int) []models.Quote {
	out := make([]models.Quote, n)
	for i := range out {
		out[i] = models.Quote{
			ID:       "QT-" + string(rune('A'+i%26)),
			Customer: "Acme",
			Items:    i + 1,
			Amount:   float64(1000 * (i + 1)),
			Date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Status:   models.StatusPending,
		}
	}
	return out
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{30_100_000_000, "$30.1B"},
		{25_000_000, "$25.0M"},
		{12_345, "$12K"},
		{999, "$999"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompact(tt.in))
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1.2M", FormatCount(1_200_000))
	assert.Equal(t, "800K", FormatCount(800_000))
	assert.Equal(t, "42", FormatCount(42))
}

func TestRenderCard_Height(t *testing.T) {
	card := RenderCard(CardProps{Quote: quotes(1)[0], Width: 30})
	assert.Equal(t, CardHeight, lipgloss.Height(card))
	assert.Contains(t, card, "Acme")
	assert.Contains(t, card, "Jan 2, 2024")

	assert.Equal(t, CardHeight, lipgloss.Height(RenderSkeleton(30)))
}

func TestRenderColumnBody_Skeletons(t *testing.T) {
	body := RenderColumnBody(BodyProps{
		Window: kanban.Window{Status: models.StatusPending, IsLoading: true},
		Width:  30,
		Height: 40,
	})
	assert.Equal(t, SkeletonCount, strings.Count(body, strings.Repeat("░", 23)))
	assert.Equal(t, 40, lipgloss.Height(body))

	// a page change keeps the old items in the window until the new ones land
	loading := RenderColumnBody(BodyProps{
		Window: kanban.Window{Status: models.StatusPending, Items: quotes(3), PageSize: 50, Total: 3, IsLoading: true},
		Width:  30,
		Height: 40,
	})
	assert.Equal(t, SkeletonCount, strings.Count(loading, strings.Repeat("░", 23)))
	assert.NotContains(t, loading, "QT-A")
	assert.NotContains(t, loading, "Acme")
}

func TestRenderColumnBody_Virtualized(t *testing.T) {
	w := kanban.Window{Status: models.StatusPending, Items: quotes(50), PageSize: 50, Total: 50}

	body := RenderColumnBody(BodyProps{
		Window:   w,
		Width:    30,
		Height:   12,
		Overscan: 0,
	})
	assert.Equal(t, 12, lipgloss.Height(body))
	assert.Contains(t, body, "QT-A")
	assert.Contains(t, body, "QT-B")
	assert.NotContains(t, body, "QT-C")

	scrolled := RenderColumnBody(BodyProps{
		Window:       w,
		Width:        30,
		Height:       12,
		ScrollOffset: 2 * RowHeight,
		Overscan:     0,
	})
	assert.NotContains(t, scrolled, "QT-A")
	assert.Contains(t, scrolled, "QT-C")
}

func TestRenderColumnFooter(t *testing.T) {
	assert.NotContains(t, RenderColumnFooter(0, 1, 20), "page")
	assert.Contains(t, RenderColumnFooter(1, 3, 20), "page 2 / 3")
}

func TestRenderColumnHeader(t *testing.T) {
	h := RenderColumnHeader(HeaderProps{
		Status:      models.StatusAccepted,
		Count:       1_200_000,
		TotalAmount: 30_100_000_000,
		Width:       30,
	})
	assert.Contains(t, h, "Accepted")
	assert.Contains(t, h, "1.2M")
	assert.Contains(t, h, "$30.1B")
}

func TestRenderWidgetStrip(t *testing.T) {
	s := Summary{Windows: map[models.Status]kanban.Window{
		models.StatusAccepted: {Total: 3, TotalAmount: 3000},
		models.StatusDeclined: {Total: 1, TotalAmount: 1000},
	}}
	strip := RenderWidgetStrip(layout.DefaultItems(), s, 200)
	assert.Contains(t, strip, "Pipeline")
	assert.Contains(t, strip, "75.0%")
	assert.Contains(t, strip, "$4K")
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Keys\n\n- `q` quit", 40)
	assert.Contains(t, out, "quit")
}
