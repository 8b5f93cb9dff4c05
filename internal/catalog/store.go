package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/abiro/shopfront/internal/fakestore"
)

// DefaultPageSize matches the six-card grid of the original dashboard.
const DefaultPageSize = 6

// View is the settled snapshot the presentation layer renders from. Slices
// are cloned; mutating a View never touches the store.
type View struct {
	Loading       bool
	LoadErr       error
	SearchQuery   string // raw, pre-debounce input
	Query         string // committed query actually used for filtering
	Page          int
	PageSize      int
	TotalPages    int
	TotalCount    int // products in the full collection
	FilteredCount int // products matching the committed query
	Products      []fakestore.Product // the current page of the filtered set
}

// Store holds the authoritative in-memory product collection and the view
// state derived from it. A single writer (the UI event loop) drives all
// transitions; reads always see a fully settled snapshot.
type Store struct {
	mu       sync.RWMutex
	pageSize int

	loading  bool
	loadErr  error
	products []fakestore.Product

	rawQuery string
	query    string
	page     int

	// filtered is recomputed eagerly whenever products or the committed
	// query change, so View stays a pure read under RLock.
	filtered      []fakestore.Product
	filteredQuery string
	filteredRev   uint64
	rev           uint64
}

// NewStore builds a Store awaiting its initial load. A non-positive page
// size uses DefaultPageSize.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{
		pageSize: pageSize,
		loading:  true,
		page:     1,
	}
}

// SetProducts completes the initial load with the fetched collection.
func (s *Store) SetProducts(products []fakestore.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = cloneProducts(products)
	s.rev++
	s.loading = false
	s.loadErr = nil
	s.refilter()
	s.clampPage()
}

// SetLoadError records a failed initial load. The failure is terminal for
// the session; the view shows the error in place of the collection.
func (s *Store) SetLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err != nil {
		s.loadErr = fmt.Errorf("load products: %w", err)
	}
}

// SetSearchQuery updates the raw query as typed. Filtering is untouched
// until the debounced value is committed via CommitQuery.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rawQuery = q
}

// CommitQuery applies a settled search query and resets to the first page.
func (s *Store) CommitQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
	s.page = 1
	s.refilter()
	s.clampPage()
}

// SetPage moves to the requested page, clamped to the valid range.
func (s *Store) SetPage(p int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = p
	s.clampPage()
}

// AddProduct prepends a newly created product. Call only after the remote
// create has been confirmed.
func (s *Store) AddProduct(p fakestore.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]fakestore.Product{p}, s.products...)
	s.rev++
	s.refilter()
	s.clampPage()
}

// UpdateProduct replaces the entry with a matching ID, preserving its
// position. Call only after the remote update has been confirmed.
func (s *Store) UpdateProduct(id int, p fakestore.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = p
			s.rev++
			s.refilter()
			s.clampPage()
			return
		}
	}
}

// DeleteProduct removes the entry with a matching ID, leaving the relative
// order of the rest unchanged. Call only after the remote delete has been
// confirmed.
func (s *Store) DeleteProduct(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			s.rev++
			s.refilter()
			s.clampPage()
			return
		}
	}
}

// View returns a settled snapshot of the current catalog state.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := totalPages(len(s.filtered), s.pageSize)
	return View{
		Loading:       s.loading,
		LoadErr:       s.loadErr,
		SearchQuery:   s.rawQuery,
		Query:         s.query,
		Page:          s.page,
		PageSize:      s.pageSize,
		TotalPages:    total,
		TotalCount:    len(s.products),
		FilteredCount: len(s.filtered),
		Products:      cloneProducts(s.pageSlice()),
	}
}

// refilter recomputes the filtered slice when the collection or committed
// query changed since the last computation. Callers hold the write lock.
func (s *Store) refilter() {
	if s.filteredRev == s.rev && s.filteredQuery == s.query && s.filtered != nil {
		return
	}
	s.filteredRev = s.rev
	s.filteredQuery = s.query

	if strings.TrimSpace(s.query) == "" {
		s.filtered = s.products
		return
	}
	needle := strings.ToLower(s.query)
	matched := make([]fakestore.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			matched = append(matched, p)
		}
	}
	s.filtered = matched
}

// clampPage keeps the current page within [1, totalPages]. Callers hold
// the write lock and have refiltered already.
func (s *Store) clampPage() {
	total := totalPages(len(s.filtered), s.pageSize)
	if s.page < 1 {
		s.page = 1
	}
	if s.page > total {
		s.page = total
	}
}

// pageSlice returns the filtered products of the current page without
// reading past either end. Callers hold at least the read lock.
func (s *Store) pageSlice() []fakestore.Product {
	start := (s.page - 1) * s.pageSize
	if start < 0 || start >= len(s.filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	return s.filtered[start:end]
}

// totalPages is floored at 1 so the pager always has a valid page, even
// when the filtered set is empty.
func totalPages(count, pageSize int) int {
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func cloneProducts(products []fakestore.Product) []fakestore.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]fakestore.Product, len(products))
	copy(dup, products)
	return dup
}
