// Package ui provides the Bubble Tea terminal interface for Shopfront.
package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abiro/shopfront/internal/cart"
	"github.com/abiro/shopfront/internal/catalog"
	"github.com/abiro/shopfront/internal/debounce"
	"github.com/abiro/shopfront/internal/fakestore"
	"github.com/abiro/shopfront/internal/prefs"
)

// Mode represents what the main area is currently showing.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeForm
	ModeConfirmDelete
	ModeCart
	ModeHelp
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    fakestore.Catalog
	Catalog   *catalog.Store
	Cart      *cart.Cart
	Debouncer *debounce.Debouncer[string]
	Queries   <-chan string
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    fakestore.Catalog
	catalog   *catalog.Store
	cart      *cart.Cart
	debouncer *debounce.Debouncer[string]
	queries   <-chan string
	prefsPath string

	// UI state
	theme   Theme
	keys    keyMap
	mode    Mode
	width   int
	height  int
	ready   bool
	busy    bool // a mutation round trip is in flight

	// Data state
	view     catalog.View
	selected int // row within the current page

	// Components
	searchInput textinput.Model
	form        productForm
	pager       paginator.Model
	spin        spinner.Model

	// Delete confirmation
	confirmTarget fakestore.Product

	// Transient status line
	statusMsg   string
	statusIsErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := GetTheme(opts.ThemeName)
	styles := theme.Styles()

	search := textinput.New()
	search.Placeholder = "Search products by title"
	search.Prompt = "/ "
	search.CharLimit = 80

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.AccentText.Render("●")
	pager.InactiveDot = styles.FaintText.Render("○")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.AccentText

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		catalog:     opts.Catalog,
		cart:        opts.Cart,
		debouncer:   opts.Debouncer,
		queries:     opts.Queries,
		prefsPath:   prefsPath,
		theme:       theme,
		keys:        DefaultKeyMap(),
		searchInput: search,
		form:        newProductForm(),
		pager:       pager,
		spin:        spin,
	}
	if m.catalog != nil {
		m.view = m.catalog.View()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
	}
	if m.client != nil {
		cmds = append(cmds, m.loadProductsCmd())
	}
	if m.queries != nil {
		cmds = append(cmds, waitForQueryCmd(m.queries))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.view.Loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case productsLoadedMsg:
		m.catalog.SetProducts(msg)
		m.refreshView()
		return m, nil

	case loadFailedMsg:
		m.catalog.SetLoadError(msg.err)
		m.refreshView()
		return m, nil

	case queryCommittedMsg:
		m.catalog.CommitQuery(string(msg))
		m.selected = 0
		m.refreshView()
		// Re-subscribe for the next settled query.
		return m, waitForQueryCmd(m.queries)

	case productCreatedMsg:
		m.busy = false
		m.catalog.AddProduct(fakestore.Product(msg))
		m.catalog.SetPage(1)
		m.selected = 0
		m.mode = ModeBrowse
		m.setStatus("Created "+fakestore.Product(msg).Title, false)
		m.refreshView()
		return m, nil

	case productUpdatedMsg:
		m.busy = false
		m.catalog.UpdateProduct(fakestore.Product(msg).ID, fakestore.Product(msg))
		m.mode = ModeBrowse
		m.setStatus("Updated "+fakestore.Product(msg).Title, false)
		m.refreshView()
		return m, nil

	case productDeletedMsg:
		m.busy = false
		m.catalog.DeleteProduct(int(msg))
		m.mode = ModeBrowse
		m.setStatus("Product deleted", false)
		m.refreshView()
		return m, nil

	case mutationFailedMsg:
		// The collection stays untouched; only the status line changes.
		m.busy = false
		m.setStatus(failureMessage(msg.err), true)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	case ModeCart:
		return m.handleCartKey(msg)
	case ModeHelp:
		// Any key closes help.
		m.mode = ModeBrowse
		return m, nil
	}
	return m.handleBrowseKey(msg)
}

// handleBrowseKey processes keyboard input for the catalog view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, keys.CycleTheme):
		m.applyTheme(NextTheme(m.theme.Name))
		return m, nil

	case key.Matches(msg, keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.view.SearchQuery)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, keys.NextPage):
		m.catalog.SetPage(m.view.Page + 1)
		m.selected = 0
		m.refreshView()
		return m, nil

	case key.Matches(msg, keys.PrevPage):
		m.catalog.SetPage(m.view.Page - 1)
		m.selected = 0
		m.refreshView()
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.selected < len(m.view.Products)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, keys.NewProduct):
		if m.view.LoadErr != nil || m.view.Loading {
			return m, nil
		}
		m.form.reset()
		m.mode = ModeForm
		return m, m.form.focusFirst()

	case key.Matches(msg, keys.EditProduct):
		if p, ok := m.selectedProduct(); ok {
			m.form.setProduct(p)
			m.mode = ModeForm
			return m, m.form.focusFirst()
		}
		return m, nil

	case key.Matches(msg, keys.Delete):
		if p, ok := m.selectedProduct(); ok {
			m.confirmTarget = p
			m.mode = ModeConfirmDelete
		}
		return m, nil

	case key.Matches(msg, keys.AddToCart):
		if p, ok := m.selectedProduct(); ok {
			m.cart.Add(p)
			m.setStatus("Added "+p.Title+" to cart", false)
		}
		return m, nil

	case key.Matches(msg, keys.RemoveFromCart):
		if p, ok := m.selectedProduct(); ok {
			m.cart.Remove(p.ID)
		}
		return m, nil

	case key.Matches(msg, keys.ToggleCart):
		m.mode = ModeCart
		m.selected = 0
		return m, nil

	case key.Matches(msg, keys.Escape):
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes input to the search box. The raw query updates on
// every keystroke; filtering follows once the debouncer settles.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Esc clears the search entirely.
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.catalog.SetSearchQuery("")
		m.debouncer.Set("")
		m.mode = ModeBrowse
		m.refreshView()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searchInput.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	raw := m.searchInput.Value()
	m.catalog.SetSearchQuery(raw)
	m.debouncer.Set(raw)
	m.refreshView()
	return m, cmd
}

// handleConfirmKey processes the delete confirmation prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.busy = true
		id := m.confirmTarget.ID
		m.mode = ModeBrowse
		return m, tea.Batch(m.deleteProductCmd(id), m.spin.Tick)
	case "n", "esc":
		m.mode = ModeBrowse
		return m, nil
	}
	return m, nil
}

// handleCartKey processes keyboard input for the cart view.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.cart.Lines()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ToggleCart):
		m.mode = ModeBrowse
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(lines)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		if m.selected < len(lines) {
			m.cart.Add(lines[m.selected].Product)
		}
		return m, nil

	case key.Matches(msg, m.keys.RemoveFromCart):
		if m.selected < len(lines) {
			m.cart.Remove(lines[m.selected].Product.ID)
			if m.selected > 0 && m.selected >= len(m.cart.Lines()) {
				m.selected--
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearCart):
		m.cart.Clear()
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// quit tears down the debouncer before stopping the program so no timer
// fires into a dead model.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.debouncer != nil {
		m.debouncer.Stop()
	}
	return m, tea.Quit
}

// applyTheme switches the theme and persists the choice.
func (m *Model) applyTheme(name string) {
	m.theme = GetTheme(name)
	styles := m.theme.Styles()
	m.pager.ActiveDot = styles.AccentText.Render("●")
	m.pager.InactiveDot = styles.FaintText.Render("○")
	m.spin.Style = styles.AccentText
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
	}
}

// refreshView pulls a fresh snapshot and keeps the cursor and pager inside
// the current page.
func (m *Model) refreshView() {
	m.view = m.catalog.View()
	if m.selected >= len(m.view.Products) {
		m.selected = len(m.view.Products) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.pager.TotalPages = m.view.TotalPages
	m.pager.Page = m.view.Page - 1
}

// selectedProduct returns the product under the cursor, if any.
func (m Model) selectedProduct() (fakestore.Product, bool) {
	if m.selected < 0 || m.selected >= len(m.view.Products) {
		return fakestore.Product{}, false
	}
	return m.view.Products[m.selected], true
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

// failureMessage maps a client failure to the operation-specific message
// shown in the status line.
func failureMessage(err error) string {
	var apiErr *fakestore.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Op {
		case fakestore.OpCreate:
			return "Could not create the product. Please try again."
		case fakestore.OpUpdate:
			return "Could not update the product. Please try again."
		case fakestore.OpDelete:
			return "Could not delete the product. Please try again."
		case fakestore.OpList:
			return "Could not load products. Please reload."
		}
	}
	return err.Error()
}

// Messages

type productsLoadedMsg []fakestore.Product

type loadFailedMsg struct{ err error }

type queryCommittedMsg string

type productCreatedMsg fakestore.Product

type productUpdatedMsg fakestore.Product

type productDeletedMsg int

type mutationFailedMsg struct{ err error }

// Commands

func (m Model) loadProductsCmd() tea.Cmd {
	return func() tea.Msg {
		products, err := m.client.List(m.ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return productsLoadedMsg(products)
	}
}

// waitForQueryCmd blocks on the debounce bridge until the next settled
// query arrives. The model re-issues it after every receipt.
func waitForQueryCmd(queries <-chan string) tea.Cmd {
	return func() tea.Msg {
		q, ok := <-queries
		if !ok {
			return nil
		}
		return queryCommittedMsg(q)
	}
}

func (m Model) createProductCmd(draft fakestore.Draft) tea.Cmd {
	return func() tea.Msg {
		created, err := m.client.Create(m.ctx, draft)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return productCreatedMsg(created)
	}
}

func (m Model) updateProductCmd(id int, draft fakestore.Draft) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.client.Update(m.ctx, id, draft)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return productUpdatedMsg(updated)
	}
}

func (m Model) deleteProductCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Delete(m.ctx, id); err != nil {
			return mutationFailedMsg{err: err}
		}
		return productDeletedMsg(id)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
