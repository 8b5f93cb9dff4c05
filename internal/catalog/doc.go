// Package catalog provides the reactive state core of the dashboard.
//
// # Overview
//
// The Store owns the authoritative in-memory product collection together
// with the search, pagination, and load state derived from it. It keeps a
// paginated, filtered view of the remote collection consistent with local
// confirmed mutations: the collection is fetched once at startup, then
// mutated locally when a remote create, update, or delete has been
// confirmed — never optimistically before confirmation.
//
// # Derivation Rules
//
// The filtered set contains the products whose title case-insensitively
// contains the committed query; a blank query passes the collection through
// unchanged. The page count is floored at one so the pager is always valid,
// and the current page is re-clamped after every change to the filtered
// set. Committing a query resets to the first page. Filtering is memoized
// on the (collection revision, committed query) pair and recomputed eagerly
// inside mutations, so View is a pure read.
//
// # Failure Semantics
//
// A failed initial load is terminal for the session and replaces the
// collection in the view. Mutation failures never reach this package:
// callers only apply confirmed results, so the collection is left untouched
// when a remote call fails.
//
// # Concurrency
//
// The store is RWMutex-guarded with clone-on-read snapshots. Every
// transition is a single atomic event; readers never observe a partially
// applied mutation.
package catalog
