// Package ui provides the Bubble Tea terminal interface for Shopfront.
//
// # Architecture Overview
//
// The UI follows the Elm architecture as implemented by Bubble Tea: a single
// Model holds all UI state, Update handles messages, and View renders the
// screen. All store API calls run inside tea.Cmd functions so the event loop
// never blocks on the network.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key routing, messages, and commands
//   - form.go: Create/edit product form built on bubbles/textinput
//   - views.go: Header, command bar, product table, cart, and help rendering
//   - keys.go: Key bindings via bubbles/key
//   - theme.go: Color themes and Lipgloss style construction
//
// # Modes
//
// The main area switches between modes: browsing the product table, typing a
// search query, filling the create/edit form, confirming a delete, viewing
// the cart, and the help overlay. Key handling dispatches on the current
// mode; esc always returns toward browsing.
//
// # Data Flow
//
// The model never mutates product data directly. Mutations round-trip
// through the store API first; only a success message touches the
// catalog.Store, so the visible collection always reflects acknowledged
// server state. Failures surface on the status line and leave the
// collection untouched.
//
// Search is debounced outside this package. Keystrokes update the raw query
// for immediate echo and feed the debouncer; settled queries arrive on the
// Options.Queries channel and commit via CommitQuery, which re-filters and
// resets to page one.
//
// # External Dependencies
//
//   - catalog: Filtered, paginated product collection snapshots
//   - cart: Local cart aggregate
//   - fakestore: Store API client and typed errors
//   - debounce: Settle timer for search input
//   - prefs: Theme persistence across sessions
package ui
