package app

import (
	"context"
	"fmt"

	"github.com/abiro/shopfront/internal/cart"
	"github.com/abiro/shopfront/internal/catalog"
	"github.com/abiro/shopfront/internal/config"
	"github.com/abiro/shopfront/internal/debounce"
	"github.com/abiro/shopfront/internal/fakestore"
	"github.com/abiro/shopfront/internal/prefs"
	"github.com/abiro/shopfront/internal/ui"
)

// Options configure the Shopfront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shopfront/prefs.toml
	APIURL     string // overrides the configured store API base URL
}

// Run boots the Shopfront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := fakestore.NewClient(cfg.APIURL, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("init store client: %w", err)
	}

	store := catalog.NewStore(cfg.PageSize)
	basket := &cart.Cart{}

	// The debouncer fires on a timer goroutine. Bridge settled queries into
	// the Bubble Tea loop through a channel the model waits on; the buffer
	// keeps the timer callback from blocking while the UI is busy.
	queries := make(chan string, 1)
	debouncer := debounce.New(cfg.Debounce(), func(q string) {
		select {
		case queries <- q:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Catalog:   store,
		Cart:      basket,
		Debouncer: debouncer,
		Queries:   queries,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
