// Package directory holds the client-side synchronization state for the user
// board: it fetches batches of user records, accumulates them, derives the
// filtered view for the live search query and exposes exactly one lifecycle
// phase at a time.
//
// State is safe for concurrent use. Fetches run on a single background worker,
// so at most one fetch is ever in flight; user actions that arrive while a
// fetch is pending are dropped rather than queued.
package directory
