package models

// ============================================================================
// PAGINATION CONSTANTS
// ============================================================================

// DefaultPageSize is the number of quotes a column window holds
const DefaultPageSize = 50

// MaxPageSize bounds the page size any remote will serve
const MaxPageSize = 500

// ============================================================================
// DATASET CONSTANTS
// ============================================================================

// Default number of records per status in the generated dataset
const (
	DefaultAcceptedTotal = 1_200_000
	DefaultPendingTotal  = 800_000
	DefaultDeclinedTotal = 500_000
)

// QuoteValidityDays is how long a quote stays valid after its date
const QuoteValidityDays = 30
