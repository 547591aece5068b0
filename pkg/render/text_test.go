package render

import (
	"strings"
	"testing"
)

func TestWrapRespectsMaxWidth(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontSatoshiRegular, 24)

	text := "On finit tous par envoyer le message T'es où après dix-neuf minutes d'attente sur le quai"
	maxWidth := 300

	lines := Wrap(face, text, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}

	for _, line := range lines {
		if w := MeasureWidth(face, line); w > maxWidth {
			// Permitted only for a single over-wide word.
			if strings.Contains(line, " ") {
				t.Errorf("line %q measures %dpx > %dpx", line, w, maxWidth)
			}
		}
	}
}

func TestWrapJoinReproducesText(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontSatoshiRegular, 24)

	cases := []string{
		"short",
		"a sentence that will definitely wrap over several lines at a narrow width",
		"  leading and   internal   whitespace collapses  ",
	}

	for _, text := range cases {
		lines := Wrap(face, text, 150)
		got := strings.Join(lines, " ")
		want := strings.Join(strings.Fields(text), " ")
		if got != want {
			t.Errorf("wrap/join mismatch:\n got %q\nwant %q", got, want)
		}
	}
}

func TestWrapOverwideWordAlone(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontSatoshiRegular, 24)

	// The long word exceeds the wrap width on its own; it must land on
	// its own line, unsplit.
	long := "anticonstitutionnellement"
	maxWidth := MeasureWidth(face, long) - 10

	lines := Wrap(face, "oui "+long+" non", maxWidth)

	found := false
	for _, line := range lines {
		if line == long {
			found = true
		}
		if strings.Contains(line, long) && line != long {
			t.Errorf("over-wide word shares line %q", line)
		}
	}
	if !found {
		t.Errorf("over-wide word missing from lines %q", lines)
	}
}

func TestWrapEmptyText(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontSatoshiRegular, 24)

	if lines := Wrap(face, "", 300); len(lines) != 0 {
		t.Errorf("empty text wrapped to %q", lines)
	}
	if lines := Wrap(face, "   ", 300); len(lines) != 0 {
		t.Errorf("blank text wrapped to %q", lines)
	}
}

func TestLineHeightScalesWithSpacing(t *testing.T) {
	cache := newTestCache(t)
	face := cache.Face(FontSatoshiRegular, 32)

	tight := LineHeight(face, 1.0)
	loose := LineHeight(face, 1.3)

	if tight <= 0 {
		t.Fatalf("line height %d", tight)
	}
	if loose <= tight {
		t.Errorf("spacing 1.3 (%d) not larger than 1.0 (%d)", loose, tight)
	}
}

func TestLineHeightIndependentOfContent(t *testing.T) {
	// Stacking height comes from a fixed reference pair, so lines with
	// and without descenders stack identically.
	cache := newTestCache(t)
	face := cache.Face(FontSatoshiRegular, 32)

	h1 := LineHeight(face, 1.3)
	h2 := LineHeight(face, 1.3)
	if h1 != h2 {
		t.Errorf("line height not stable: %d vs %d", h1, h2)
	}
}
