package layout

// Widget types known to the board
const (
	WidgetColumnTotal = "column-total"
	WidgetPipeline    = "pipeline-value"
	WidgetConversion  = "conversion-rate"
	WidgetBoard       = "kanban-board"
)

// DefaultItems is the stock dashboard: one total per column, the combined
// pipeline value and conversion rate, then the board itself
func DefaultItems() []Item {
	return []Item{
		{ID: "accepted-total", Type: WidgetColumnTotal, Props: map[string]any{"status": "accepted"}, Size: SizeSmall, Order: 0},
		{ID: "pending-total", Type: WidgetColumnTotal, Props: map[string]any{"status": "pending"}, Size: SizeSmall, Order: 1},
		{ID: "declined-total", Type: WidgetColumnTotal, Props: map[string]any{"status": "declined"}, Size: SizeSmall, Order: 2},
		{ID: "pipeline-value", Type: WidgetPipeline, Size: SizeMedium, Order: 3},
		{ID: "conversion-rate", Type: WidgetConversion, Size: SizeMedium, Order: 4},
		{ID: "quote-board", Type: WidgetBoard, Size: SizeXLarge, Order: 5},
	}
}
