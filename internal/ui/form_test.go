package ui

import (
	"strings"
	"testing"

	"github.com/abiro/shopfront/internal/fakestore"
)

func formWith(t *testing.T, values map[int]string) productForm {
	t.Helper()
	f := newProductForm()
	for field, v := range values {
		f.inputs[field].SetValue(v)
	}
	return f
}

func TestFormDraft_ParsesAndTrims(t *testing.T) {
	f := formWith(t, map[int]string{
		fieldTitle:       "  Mens Casual T-Shirt  ",
		fieldPrice:       " 19.99 ",
		fieldDescription: "Slim fit",
		fieldCategory:    "men's clothing",
		fieldImage:       "https://example.com/shirt.png",
	})

	d, err := f.draft()
	if err != nil {
		t.Fatalf("draft() failed: %v", err)
	}
	want := fakestore.Draft{
		Title:       "Mens Casual T-Shirt",
		Price:       19.99,
		Description: "Slim fit",
		Category:    "men's clothing",
		Image:       "https://example.com/shirt.png",
	}
	if d != want {
		t.Fatalf("draft() = %+v, want %+v", d, want)
	}
}

func TestFormDraft_RejectsNonNumericPrice(t *testing.T) {
	f := formWith(t, map[int]string{
		fieldTitle: "Shirt",
		fieldPrice: "nineteen",
	})

	if _, err := f.draft(); err == nil {
		t.Fatal("expected error for non-numeric price")
	} else if !strings.Contains(err.Error(), "price must be a number") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormDraft_RejectsInvalidDraft(t *testing.T) {
	// Blank title fails validation before any request could be sent.
	f := formWith(t, map[int]string{
		fieldTitle: "   ",
		fieldPrice: "10",
	})
	if _, err := f.draft(); err == nil {
		t.Fatal("expected error for blank title")
	}

	// Missing price means zero, which is not a positive price.
	f = formWith(t, map[int]string{
		fieldTitle: "Shirt",
	})
	if _, err := f.draft(); err == nil {
		t.Fatal("expected error for missing price")
	}
}

func TestFormSetProduct_PrefillsEditableFields(t *testing.T) {
	f := newProductForm()
	f.setProduct(fakestore.Product{
		ID:          7,
		Title:       "Backpack",
		Price:       109.95,
		Description: "Fits 15in laptops",
		Category:    "men's clothing",
		Image:       "https://example.com/bag.png",
		Rating:      &fakestore.Rating{Rate: 3.9, Count: 120},
	})

	if f.editID != 7 {
		t.Fatalf("editID = %d, want 7", f.editID)
	}
	if got := f.inputs[fieldPrice].Value(); got != "109.95" {
		t.Fatalf("price field = %q, want 109.95", got)
	}

	d, err := f.draft()
	if err != nil {
		t.Fatalf("draft() failed: %v", err)
	}
	if d.Title != "Backpack" || d.Price != 109.95 {
		t.Fatalf("draft() = %+v", d)
	}
}

func TestFormReset_ClearsEditState(t *testing.T) {
	f := newProductForm()
	f.setProduct(fakestore.Product{ID: 3, Title: "Hat", Price: 5})
	f.reset()

	if f.editID != 0 {
		t.Fatalf("editID after reset = %d, want 0", f.editID)
	}
	for i := range f.inputs {
		if v := f.inputs[i].Value(); v != "" {
			t.Fatalf("field %d not cleared: %q", i, v)
		}
	}
}
