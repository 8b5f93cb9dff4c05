package cart

import (
	"testing"

	"github.com/abiro/shopfront/internal/fakestore"
)

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	var c Cart
	mug := fakestore.Product{ID: 1, Title: "Mug", Price: 9.99}

	c.Add(mug)
	c.Add(mug)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %#v, want a single line", lines)
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", lines[0].Quantity)
	}
	if c.TotalItems() != 2 {
		t.Fatalf("TotalItems = %d, want 2", c.TotalItems())
	}
}

func TestCart_NewLinesAppendInOrder(t *testing.T) {
	var c Cart
	c.Add(fakestore.Product{ID: 1, Title: "Mug"})
	c.Add(fakestore.Product{ID: 2, Title: "Lamp"})
	c.Add(fakestore.Product{ID: 1, Title: "Mug"})
	c.Add(fakestore.Product{ID: 3, Title: "Desk"})

	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("lines = %#v, want 3 lines", lines)
	}
	gotIDs := []int{lines[0].Product.ID, lines[1].Product.ID, lines[2].Product.ID}
	if gotIDs[0] != 1 || gotIDs[1] != 2 || gotIDs[2] != 3 {
		t.Fatalf("line order = %v, want [1 2 3]", gotIDs)
	}
	if c.TotalItems() != 4 {
		t.Fatalf("TotalItems = %d, want 4", c.TotalItems())
	}
}

func TestCart_RemoveDecrementsThenDropsLine(t *testing.T) {
	var c Cart
	mug := fakestore.Product{ID: 1, Title: "Mug"}
	c.Add(mug)
	c.Add(mug)

	c.Remove(1)
	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("lines = %#v after first remove, want quantity 1", lines)
	}

	c.Remove(1)
	if lines := c.Lines(); len(lines) != 0 {
		t.Fatalf("lines = %#v after second remove, want none", lines)
	}

	// Removing an absent id is a no-op.
	c.Remove(1)
	if got := c.TotalItems(); got != 0 {
		t.Fatalf("TotalItems = %d after no-op remove, want 0", got)
	}
}

func TestCart_RemovePreservesOtherLines(t *testing.T) {
	var c Cart
	c.Add(fakestore.Product{ID: 1})
	c.Add(fakestore.Product{ID: 2})
	c.Add(fakestore.Product{ID: 3})

	c.Remove(2)

	lines := c.Lines()
	if len(lines) != 2 || lines[0].Product.ID != 1 || lines[1].Product.ID != 3 {
		t.Fatalf("lines = %#v, want ids [1 3] in order", lines)
	}
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(fakestore.Product{ID: 1})
	c.Add(fakestore.Product{ID: 2})

	c.Clear()

	if lines := c.Lines(); len(lines) != 0 {
		t.Fatalf("lines = %#v after Clear, want none", lines)
	}
	if c.TotalItems() != 0 {
		t.Fatalf("TotalItems = %d after Clear, want 0", c.TotalItems())
	}
}

func TestCart_LinesSnapshotIsDetached(t *testing.T) {
	var c Cart
	c.Add(fakestore.Product{ID: 1, Title: "Mug"})

	lines := c.Lines()
	lines[0].Quantity = 50

	if got := c.TotalItems(); got != 1 {
		t.Fatalf("TotalItems = %d after mutating a snapshot, want 1", got)
	}
}
