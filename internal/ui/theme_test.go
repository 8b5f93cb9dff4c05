package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	if got := GetTheme("Kanagawa"); got.Name != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q", got.Name)
	}
	if got := GetTheme("no-such-theme"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Nightfox", got.Name)
	}
	if got := GetTheme(""); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(\"\").Name = %q, want Nightfox", got.Name)
	}
}

func TestNextTheme_CyclesInOrder(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("cycle did not wrap: ended on %q", name)
	}
	if len(seen) != len(themeOrder) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themeOrder))
	}
}

func TestNextTheme_UnknownResets(t *testing.T) {
	if got := NextTheme("no-such-theme"); got != themeOrder[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, themeOrder[0])
	}
}
