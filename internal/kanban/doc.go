// Package kanban keeps a paginated, three-column quote board in sync with a
// remote that owns the records.
//
// Each status column is a Controller holding one page window. Controllers
// share nothing. The Coordinator owns the single drag session and applies
// moves optimistically, rolling them back if the remote rejects the change.
// Rendering is left to callers; the Virtualizer only computes which rows of
// a window intersect a viewport.
package kanban
