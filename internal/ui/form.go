package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abiro/shopfront/internal/fakestore"
)

// Form field order.
const (
	fieldTitle = iota
	fieldPrice
	fieldDescription
	fieldCategory
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Price",
	"Description",
	"Category",
	"Image URL",
}

// productForm collects a product draft for create or edit.
type productForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	editID int // zero while creating
}

func newProductForm() productForm {
	var f productForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Placeholder = "Mens Casual T-Shirt"
	f.inputs[fieldPrice].Placeholder = "19.99"
	f.inputs[fieldPrice].CharLimit = 12
	f.inputs[fieldCategory].Placeholder = "men's clothing"
	f.inputs[fieldImage].Placeholder = "https://example.com/image.png"
	return f
}

// reset blanks all fields for a fresh create.
func (f *productForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.editID = 0
}

// setProduct pre-fills the form with an existing product for editing.
func (f *productForm) setProduct(p fakestore.Product) {
	f.reset()
	f.editID = p.ID
	d := fakestore.DraftOf(p)
	f.inputs[fieldTitle].SetValue(d.Title)
	f.inputs[fieldPrice].SetValue(strconv.FormatFloat(d.Price, 'f', -1, 64))
	f.inputs[fieldDescription].SetValue(d.Description)
	f.inputs[fieldCategory].SetValue(d.Category)
	f.inputs[fieldImage].SetValue(d.Image)
}

func (f *productForm) focusFirst() tea.Cmd {
	f.focus = 0
	return f.inputs[0].Focus()
}

func (f *productForm) focusNext() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *productForm) focusPrev() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// draft parses the form into a Draft. The price must be a number; the
// remaining invariants are checked by Draft.Validate.
func (f *productForm) draft() (fakestore.Draft, error) {
	priceText := strings.TrimSpace(f.inputs[fieldPrice].Value())
	price, err := strconv.ParseFloat(priceText, 64)
	if priceText != "" && err != nil {
		return fakestore.Draft{}, fmt.Errorf("price must be a number, got %q", priceText)
	}
	d := fakestore.Draft{
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Price:       price,
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Category:    strings.TrimSpace(f.inputs[fieldCategory].Value()),
		Image:       strings.TrimSpace(f.inputs[fieldImage].Value()),
	}
	if err := d.Validate(); err != nil {
		return fakestore.Draft{}, err
	}
	return d, nil
}

// handleFormKey processes keyboard input for the create/edit form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeBrowse
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.focusNext()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.focusPrev()

	case key.Matches(msg, m.keys.Confirm):
		if m.busy {
			return m, nil
		}
		draft, err := m.form.draft()
		if err != nil {
			// Invalid drafts never reach the client.
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.busy = true
		if id := m.form.editID; id > 0 {
			return m, tea.Batch(m.updateProductCmd(id, draft), m.spin.Tick)
		}
		return m, tea.Batch(m.createProductCmd(draft), m.spin.Tick)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// renderForm renders the create/edit form panel.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := "New product"
	if m.form.editID > 0 {
		title = fmt.Sprintf("Edit product #%d", m.form.editID)
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		label := fieldLabels[i]
		labelStyle := styles.MutedText
		if i == m.form.focus {
			labelStyle = styles.AccentText
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(styles.MutedText.Render(" Saving..."))
	} else {
		b.WriteString(styles.FaintText.Render("enter save • tab next field • esc cancel"))
	}

	return styles.PanelFocus.Width(min(m.width-2, 72)).Render(b.String())
}
