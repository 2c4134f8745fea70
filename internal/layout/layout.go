// Package layout persists the order of dashboard widgets. Widgets only
// reorder within their size group; the stored blob is versioned and
// anything unreadable falls back to the defaults.
package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// StorageVersion tags every saved blob. Blobs with another version are ignored.
const StorageVersion = "1.0.0"

// KeyPrefix namespaces layout blobs in the key/value store
const KeyPrefix = "quoteboard-dashboard-"

// Size is a widget size class
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXLarge Size = "xlarge"
)

// Sizes lists the size classes in display order
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}

var (
	ErrUnknownItem  = errors.New("unknown layout item")
	ErrSizeMismatch = errors.New("items are in different size groups")
)

// Item is one widget on the dashboard grid
type Item struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Component string         `json:"component,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
	Size      Size           `json:"size"`
	Order     int            `json:"order"`
}

// Config is the persisted blob
type Config struct {
	Items        []Item `json:"items"`
	LastModified int64  `json:"lastModified"`
	Version      string `json:"version"`
}

// KV is the storage the layout is persisted in
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store loads and saves the layout of one dashboard
type Store struct {
	kv          KV
	dashboardID string
	logger      *slog.Logger
	now         func() time.Time
}

// NewStore creates a store for dashboardID over kv
func NewStore(kv KV, dashboardID string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, dashboardID: dashboardID, logger: logger, now: time.Now}
}

// Key returns the storage key of this dashboard
func (s *Store) Key() string {
	return KeyPrefix + s.dashboardID
}

// storedConfig accepts any JSON for items so a malformed blob is
// detected instead of failing the whole decode
type storedConfig struct {
	Items   json.RawMessage `json:"items"`
	Version string          `json:"version"`
}

// Load returns the defaults with any stored order applied, sorted by order.
// Missing, unreadable or outdated blobs yield the defaults unchanged.
func (s *Store) Load(ctx context.Context, defaults []Item) []Item {
	out := cloneItems(defaults)

	raw, ok, err := s.kv.Get(ctx, s.Key())
	if err != nil {
		s.logger.Warn("failed to load dashboard layout", "key", s.Key(), "error", err)
		return out
	}
	if !ok {
		return out
	}

	var cfg storedConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		s.logger.Warn("failed to parse dashboard layout", "key", s.Key(), "error", err)
		return out
	}
	if cfg.Version != StorageVersion {
		s.logger.Info("ignoring dashboard layout", "key", s.Key(), "version", cfg.Version)
		return out
	}
	var stored []Item
	if err := json.Unmarshal(cfg.Items, &stored); err != nil || stored == nil {
		s.logger.Warn("dashboard layout items are not a list", "key", s.Key())
		return out
	}

	orders := make(map[string]int, len(stored))
	for _, it := range stored {
		orders[it.ID] = it.Order
	}
	for i := range out {
		if o, ok := orders[out[i].ID]; ok {
			out[i].Order = o
		}
	}
	slices.SortStableFunc(out, func(a, b Item) int { return a.Order - b.Order })
	return out
}

// Save writes items as the current layout
func (s *Store) Save(ctx context.Context, items []Item) error {
	cfg := Config{
		Items:        cloneItems(items),
		LastModified: s.now().UnixMilli(),
		Version:      StorageVersion,
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := s.kv.Set(ctx, s.Key(), string(raw)); err != nil {
		return fmt.Errorf("save layout %s: %w", s.dashboardID, err)
	}
	return nil
}

// Reset stores the defaults, discarding any saved order
func (s *Store) Reset(ctx context.Context, defaults []Item) ([]Item, error) {
	items := cloneItems(defaults)
	return items, s.Save(ctx, items)
}

// Reorder moves activeID to the position of overID and renumbers every
// item. Both items must belong to size; otherwise items is returned as is.
func Reorder(items []Item, activeID, overID string, size Size) []Item {
	activeIdx := slices.IndexFunc(items, func(it Item) bool { return it.ID == activeID })
	overIdx := slices.IndexFunc(items, func(it Item) bool { return it.ID == overID })
	if activeIdx < 0 || overIdx < 0 {
		return items
	}
	if items[activeIdx].Size != size || items[overIdx].Size != size {
		return items
	}

	out := cloneItems(items)
	moved := out[activeIdx]
	out = slices.Delete(out, activeIdx, activeIdx+1)
	out = slices.Insert(out, overIdx, moved)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// Move reorders activeID onto overID within the active item's size group
func Move(items []Item, activeID, overID string) ([]Item, error) {
	active, ok := Find(items, activeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, activeID)
	}
	over, ok := Find(items, overID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, overID)
	}
	if active.Size != over.Size {
		return nil, fmt.Errorf("%w: %s is %s, %s is %s", ErrSizeMismatch, activeID, active.Size, overID, over.Size)
	}
	return Reorder(items, activeID, overID, active.Size), nil
}

// Group is the items of one size class
type Group struct {
	Size  Size
	Items []Item
}

// GroupBySize returns the non-empty size groups in Sizes order
func GroupBySize(items []Item) []Group {
	var groups []Group
	for _, size := range Sizes {
		var g []Item
		for _, it := range items {
			if it.Size == size {
				g = append(g, it)
			}
		}
		if len(g) > 0 {
			groups = append(groups, Group{Size: size, Items: g})
		}
	}
	return groups
}

// Find returns the item with id
func Find(items []Item, id string) (Item, bool) {
	i := slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
	if i < 0 {
		return Item{}, false
	}
	return items[i], true
}

func cloneItems(items []Item) []Item {
	return append([]Item(nil), items...)
}
