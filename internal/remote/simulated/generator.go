// Package simulated serves a large deterministic quote dataset without
// storing it. Records are generated on demand from (index, status).
package simulated

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/models"
)

var customers = []string{
	"Acme Corporation", "TechStart Inc", "Global Industries",
	"Precision Manufacturing", "Blue Ocean Logistics", "Summit Enterprises",
	"NextGen Solutions", "Cornerstone Group", "Velocity Systems",
	"Horizon Technologies", "Pioneer Industries", "Atlas Corporation",
	"Quantum Solutions", "Meridian Group", "Vertex Systems",
	"Cascade Manufacturing", "Pinnacle Enterprises", "Synergy Corporation",
	"Fusion Technologies", "Apex Industries", "Sterling Solutions",
	"Phoenix Group", "Nexus Corporation", "Titan Enterprises",
	"Zenith Systems", "Omega Industries", "Delta Solutions",
	"Vanguard Corporation", "Beacon Technologies", "Crown Enterprises",
}

var salesPeople = []string{
	"Sarah Chen", "Michael Torres", "Emily Johnson", "David Kim",
	"Jessica Martinez", "Robert Anderson", "Maria Garcia", "James Wilson",
}

// epoch is the earliest generated quote date
var epoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// idStride separates the id ranges of the three statuses
const idStride = 10_000_000

// mulberry32 is a tiny seeded PRNG. Identical seeds give identical sequences.
type mulberry32 struct {
	state uint32
}

func (m *mulberry32) next() float64 {
	m.state += 0x6d2b79f5
	s := m.state
	t := (s ^ (s >> 15)) * (1 | s)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return float64(t^(t>>14)) / 4294967296
}

func (m *mulberry32) intn(n int) int {
	return int(math.Floor(m.next() * float64(n)))
}

func statusSeed(s models.Status) int {
	switch s {
	case models.StatusAccepted:
		return 1
	case models.StatusPending:
		return 2
	default:
		return 3
	}
}

// Generate returns the quote at position index of the generated column for
// status. It is O(1) and always returns the same record for the same input.
func Generate(index int, status models.Status) models.Quote {
	seed := statusSeed(status)
	rng := &mulberry32{state: uint32(index*7 + seed*100003)}

	dayOffset := rng.intn(730)
	amount := rng.intn(49000) + 1000
	items := rng.intn(15) + 1
	customer := customers[rng.intn(len(customers))]
	salesPerson := salesPeople[rng.intn(len(salesPeople))]

	date := epoch.AddDate(0, 0, dayOffset)
	validUntil := date.AddDate(0, 0, models.QuoteValidityDays)

	return models.Quote{
		ID:          QuoteID(index, status),
		Date:        date,
		Customer:    customer,
		Items:       items,
		Amount:      float64(amount),
		Status:      status,
		ValidUntil:  &validUntil,
		SalesPerson: salesPerson,
	}
}

// QuoteID returns the id of the generated record at index
func QuoteID(index int, status models.Status) string {
	return "QT-" + strconv.Itoa(statusSeed(status)*idStride+index)
}

// ParseQuoteID recovers the originating status and index from a generated id
func ParseQuoteID(id string) (models.Status, int, error) {
	raw, ok := strings.CutPrefix(id, "QT-")
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", models.ErrQuoteNotFound, id)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < idStride {
		return "", 0, fmt.Errorf("%w: %s", models.ErrQuoteNotFound, id)
	}
	seed, index := n/idStride, n%idStride
	if seed < 1 || seed > len(models.Statuses) {
		return "", 0, fmt.Errorf("%w: %s", models.ErrQuoteNotFound, id)
	}
	return models.Statuses[seed-1], index, nil
}
