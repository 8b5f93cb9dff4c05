// Package config handles loading and parsing Shopfront's configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shopfront/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Configuration Fields
//
//   - api_url:         base URL of the product API (default https://fakestoreapi.com)
//   - page_size:       products per page in the catalog view (default 6)
//   - debounce_ms:     search settle interval in milliseconds (default 500)
//   - timeout_seconds: per-request HTTP timeout (default 10)
//
// Invalid TOML is a fatal startup error; a missing file is not.
package config
