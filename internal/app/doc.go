// Package app provides the orchestration layer for the Shopfront application.
//
// # Overview
//
// This package wires together configuration, the store API client, the catalog
// state container, the cart, and the UI to create the complete Shopfront TUI
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load Shopfront configuration from ~/.config/shopfront/config.toml
//  2. Load user preferences (theme) from ~/.config/shopfront/prefs.toml
//  3. Initialize the HTTP client for the store API
//  4. Create the catalog.Store and cart.Cart shared containers
//  5. Create the search debouncer and its channel bridge into the UI loop
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Search Debounce Flow
//
// Keystrokes in the search box update the catalog's raw query immediately so
// the input echoes without delay. Each keystroke also feeds the debouncer.
// When input settles, the debouncer callback pushes the query onto a buffered
// channel; a Bubble Tea command waits on that channel and commits the query to
// the catalog, which re-filters and resets pagination. Rapid typing therefore
// produces exactly one filter pass.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but unreadable or invalid
//   - Store client initialization failure (malformed base URL)
//
// Recoverable conditions (surfaced inside the UI):
//   - Initial product fetch failure (catalog shows a load error)
//   - Create/update/delete round-trip failures (status line message,
//     collection untouched)
//
// Missing config and prefs files are not errors; defaults apply.
package app
