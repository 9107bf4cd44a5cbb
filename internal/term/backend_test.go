package term

import (
	"testing"

	"github.com/dshills/benchedit/internal/highlight"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := Cell{Rune: 'X', Style: highlight.NewStyle(highlight.RGB(255, 0, 0))}
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds writes are ignored and reads come back empty.
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if got := b.GetCell(-1, 0); got != (Cell{}) {
		t.Errorf("out of bounds read: got %+v, want zero cell", got)
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(10, 10, Cell{Rune: 'X'})
	b.SetCell(20, 20, Cell{Rune: 'Y'})

	b.Clear()

	if got := b.GetCell(10, 10); got != (Cell{}) {
		t.Errorf("clear should reset all cells, got %+v", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	_, _, visible = b.CursorPosition()
	if visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyEnter})

	got := b.PollEvent()
	if got.Type != EventKey || got.Key != KeyEnter {
		t.Errorf("expected enter key event, got %+v", got)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 40)

	w, h := b.Size()
	if w != 100 || h != 40 {
		t.Errorf("expected size (100, 40), got (%d, %d)", w, h)
	}

	got := b.PollEvent()
	if got.Type != EventResize || got.Width != 100 || got.Height != 40 {
		t.Errorf("expected resize event (100, 40), got %+v", got)
	}
}

func TestNullBackendRowText(t *testing.T) {
	b := NewNullBackend(20, 5)
	b.Init()

	b.SetCell(0, 0, Cell{Rune: 'h'})
	b.SetCell(1, 0, Cell{Rune: 'i'})

	if got := b.RowText(0); got != "hi" {
		t.Errorf("RowText(0) = %q, want %q", got, "hi")
	}
	if got := b.RowText(1); got != "" {
		t.Errorf("RowText(1) = %q, want empty", got)
	}
	if got := b.RowText(-1); got != "" {
		t.Errorf("RowText(-1) = %q, want empty", got)
	}
}

func TestModMaskHas(t *testing.T) {
	mod := ModShift | ModCtrl

	if !mod.Has(ModShift) {
		t.Error("should have shift")
	}
	if !mod.Has(ModCtrl) {
		t.Error("should have ctrl")
	}
	if mod.Has(ModAlt) {
		t.Error("should not have alt")
	}
}
