package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("shopfront"),
	}

	switch {
	case m.view.Loading:
		parts = append(parts, m.spin.View()+styles.WarningText.Render(" Loading catalog..."))
	case m.view.LoadErr != nil:
		parts = append(parts, styles.DangerText.Render("OFFLINE"))
	default:
		parts = append(parts,
			styles.MutedText.Render("Products:")+" "+
				styles.Text.Render(fmt.Sprintf("%d", m.view.TotalCount)))
		if m.view.Query != "" {
			parts = append(parts,
				styles.MutedText.Render("Filter:")+" "+
					styles.AccentText.Render(truncate(m.view.Query, 24))+" "+
					styles.FaintText.Render(fmt.Sprintf("(%d match)", m.view.FilteredCount)))
		}
	}

	parts = append(parts,
		styles.MutedText.Render("Cart:")+" "+
			styles.InfoText.Render(fmt.Sprintf("%d", m.cart.TotalItems())))

	if m.statusMsg != "" {
		statusStyle := styles.SuccessText
		if m.statusIsErr {
			statusStyle = styles.DangerText
		}
		parts = append(parts, statusStyle.Render(truncate(m.statusMsg, 60)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints line for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.mode {
	case ModeSearch:
		commands = []cmd{
			{"enter", "Apply"},
			{"esc", "Clear"},
		}
	case ModeForm:
		commands = []cmd{
			{"enter", "Save"},
			{"tab", "Next field"},
			{"esc", "Cancel"},
		}
	case ModeConfirmDelete:
		commands = []cmd{
			{"y", "Delete"},
			{"n", "Keep"},
		}
	case ModeCart:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"a", "One more"},
			{"x", "One less"},
			{"C", "Clear"},
			{"c/esc", "Catalog"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"←/→", "Pages"},
			{"j/k", "Navigate"},
			{"n", "New"},
			{"e", "Edit"},
			{"d", "Delete"},
			{"a", "To cart"},
			{"c", "Cart"},
			{"?", "More"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+styles.FaintText.Render(":")+styles.MutedText.Render(c.desc))
	}
	segments = append(segments,
		styles.AccentText.Render("T")+styles.FaintText.Render(":")+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderContent renders the main area based on the current mode.
func (m Model) renderContent() string {
	switch m.mode {
	case ModeForm:
		return m.renderForm()
	case ModeCart:
		return m.renderCart()
	}
	return m.renderCatalog()
}

// renderCatalog renders the product table, the loading state, or the
// terminal load error.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()

	if m.view.Loading {
		return styles.Panel.Width(m.width - 2).Render(
			m.spin.View() + styles.MutedText.Render(" Fetching products..."))
	}

	if err := m.view.LoadErr; err != nil {
		msg := styles.DangerText.Render("Could not load the catalog.") + "\n\n" +
			styles.MutedText.Render(truncate(err.Error(), m.width-8)) + "\n\n" +
			styles.FaintText.Render("Restart shopfront to retry.")
		return styles.Panel.Width(m.width - 2).Render(msg)
	}

	if m.mode == ModeSearch {
		return m.searchInput.View() + "\n" + m.renderTable()
	}
	return m.renderTable()
}

// renderTable renders the current page of products.
func (m Model) renderTable() string {
	styles := m.theme.Styles()

	if len(m.view.Products) == 0 {
		if m.view.Query != "" {
			return styles.MutedText.Render(
				fmt.Sprintf("No products match %q.", truncate(m.view.Query, 40)))
		}
		return styles.MutedText.Render("The catalog is empty.")
	}

	titleWidth := m.width - 48
	if titleWidth < 16 {
		titleWidth = 16
	}

	var b strings.Builder
	header := fmt.Sprintf("  %-5s %-*s %-18s %10s %10s",
		"ID", titleWidth, "TITLE", "CATEGORY", "PRICE", "RATING")
	b.WriteString(styles.FaintText.Bold(true).Render(header))
	b.WriteString("\n")

	for i, p := range m.view.Products {
		rating := ""
		if p.Rating != nil {
			rating = fmt.Sprintf("★%.1f/%d", p.Rating.Rate, p.Rating.Count)
		}
		row := fmt.Sprintf("  %-5d %-*s %-18s %10s %10s",
			p.ID,
			titleWidth, truncate(p.Title, titleWidth),
			truncate(p.Category, 18),
			formatPrice(p.Price),
			rating)

		if i == m.selected && m.mode != ModeSearch {
			b.WriteString(styles.Selected.Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString("\n")
	}

	if m.mode == ModeConfirmDelete {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(
			fmt.Sprintf("Delete %q? (y/n)", truncate(m.confirmTarget.Title, 48))))
		b.WriteString("\n")
	}

	if p, ok := m.selectedProduct(); ok && m.mode == ModeBrowse && p.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(truncate(p.Description, max(m.width-4, 16))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCart renders the cart pane.
func (m Model) renderCart() string {
	styles := m.theme.Styles()
	lines := m.cart.Lines()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Your cart"))
	b.WriteString("\n\n")

	if len(lines) == 0 {
		b.WriteString(styles.MutedText.Render("The cart is empty. Press a on a product to add it."))
		return styles.PanelFocus.Width(min(m.width-2, 72)).Render(b.String())
	}

	var total float64
	for i, line := range lines {
		subtotal := line.Product.Price * float64(line.Quantity)
		total += subtotal
		row := fmt.Sprintf("%2d× %-36s %10s",
			line.Quantity,
			truncate(line.Product.Title, 36),
			formatPrice(subtotal))
		if i == m.selected {
			b.WriteString(styles.Selected.Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d items", m.cart.TotalItems())))
	b.WriteString(styles.FaintText.Render("  •  "))
	b.WriteString(styles.SuccessText.Render("Total " + formatPrice(total)))

	return styles.PanelFocus.Width(min(m.width-2, 72)).Render(b.String())
}

// renderFooter renders the pagination line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	left := fmt.Sprintf("Page %d/%d", m.view.Page, m.view.TotalPages)
	if m.view.Query != "" {
		left += fmt.Sprintf(" • %d of %d products", m.view.FilteredCount, m.view.TotalCount)
	}

	dots := m.pager.View()
	line := styles.MutedText.Render(left) + "  " + dots
	return styles.Footer.Width(m.width).Render(line)
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	section := func(title string, rows [][2]string) string {
		var b strings.Builder
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		b.WriteString("\n")
		for _, r := range rows {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.Text.Render(fmt.Sprintf("%-11s", r[0])),
				styles.MutedText.Render(r[1])))
		}
		return b.String()
	}

	content := strings.Join([]string{
		section("Catalog", [][2]string{
			{"/", "Search by title (debounced)"},
			{"←/→ h/l", "Previous / next page"},
			{"↑/↓ k/j", "Move selection"},
		}),
		section("Products", [][2]string{
			{"n", "Create a product"},
			{"e", "Edit the selected product"},
			{"d", "Delete the selected product"},
		}),
		section("Cart", [][2]string{
			{"a", "Add selected product to cart"},
			{"x", "Remove one from cart"},
			{"c", "Open the cart"},
			{"C", "Clear the cart (in cart view)"},
		}),
		section("General", [][2]string{
			{"T", "Cycle theme"},
			{"?", "Toggle this help"},
			{"q", "Quit"},
		}),
	}, "\n")

	panel := styles.PanelFocus.Width(min(m.width-2, 60)).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// formatPrice renders a price in the store's display currency.
func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
