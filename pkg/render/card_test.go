package render

import "testing"

func TestCardLayoutMonotonic(t *testing.T) {
	const w, h, lineHeight = 1080, 1350, 44

	prev := -1
	for lines := 0; lines <= 20; lines++ {
		card := CardLayout(w, h, lines, lineHeight)
		if card.Height <= prev {
			t.Fatalf("%d lines: height %d not greater than %d", lines, card.Height, prev)
		}
		prev = card.Height
	}
}

func TestCardLayoutMinimumHeight(t *testing.T) {
	card := CardLayout(1080, 1350, 0, 44)

	minimum := cardHeaderHeight + cardTextPadding + cardPaddingV
	if card.Height != minimum {
		t.Errorf("empty card height %d, want %d", card.Height, minimum)
	}
}

func TestCardLayoutCentered(t *testing.T) {
	for _, canvas := range []struct{ w, h int }{{1080, 1350}, {1080, 1080}} {
		card := CardLayout(canvas.w, canvas.h, 4, 44)

		center := card.X + card.Width/2
		if diff := center - canvas.w/2; diff < -1 || diff > 1 {
			t.Errorf("canvas %dx%d: card center %d, want %d", canvas.w, canvas.h, center, canvas.w/2)
		}

		if card.Width != int(float64(canvas.w)*cardWidthRatio) {
			t.Errorf("card width %d, want %.0f", card.Width, float64(canvas.w)*cardWidthRatio)
		}
	}
}

func TestCardLayoutVerticalPlacement(t *testing.T) {
	const w, h = 1080, 1350
	card := CardLayout(w, h, 4, 44)

	available := h - taglineBand
	wantY := (available - card.Height) / 2
	if card.Y != wantY {
		t.Errorf("card.Y %d, want %d", card.Y, wantY)
	}
}
