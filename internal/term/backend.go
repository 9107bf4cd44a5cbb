package term

import (
	"strings"
	"sync"

	"github.com/dshills/benchedit/internal/highlight"
)

// Cell is one screen cell: a rune and the style it renders with.
type Cell struct {
	Rune  rune
	Style highlight.Style
}

// EventType identifies the kind of a terminal event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Key identifies non-rune keys the viewer responds to.
type Key int

// Key constants.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
)

// ModMask is a bitmask of held modifier keys.
type ModMask int

// Modifier flags.
const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Event is a single input event from the terminal.
type Event struct {
	Type EventType

	// Key event fields.
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields.
	Width  int
	Height int
}

// Backend abstracts the terminal so the viewer can drive a real screen or
// an in-memory double in tests.
type Backend interface {
	// Init prepares the backend for use.
	Init() error

	// Shutdown restores the terminal to its original state.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell writes a cell at the given position.
	SetCell(x, y int, cell Cell)

	// Clear erases the screen.
	Clear()

	// Show makes pending writes visible.
	Show()

	// ShowCursor places the visible cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent blocks until the next event is available.
	PollEvent() Event

	// PostEvent injects an event into the queue.
	PostEvent(event Event)
}

// NullBackend is an in-memory Backend for testing.
type NullBackend struct {
	mu       sync.Mutex
	width    int
	height   int
	cells    [][]Cell
	cursorX  int
	cursorY  int
	cursorOn bool
	events   chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (n *NullBackend) Init() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cells = make([][]Cell, n.height)
	for i := range n.cells {
		n.cells[i] = make([]Cell, n.width)
	}
	return nil
}

func (n *NullBackend) Shutdown() {}

func (n *NullBackend) Size() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.width, n.height
}

func (n *NullBackend) SetCell(x, y int, cell Cell) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if x < 0 || x >= n.width || y < 0 || y >= n.height {
		return
	}
	n.cells[y][x] = cell
}

// GetCell returns the cell at the given position. Out-of-bounds positions
// return the zero cell.
func (n *NullBackend) GetCell(x, y int) Cell {
	n.mu.Lock()
	defer n.mu.Unlock()

	if x < 0 || x >= n.width || y < 0 || y >= n.height {
		return Cell{}
	}
	return n.cells[y][x]
}

func (n *NullBackend) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for y := range n.cells {
		for x := range n.cells[y] {
			n.cells[y][x] = Cell{}
		}
	}
}

func (n *NullBackend) Show() {}

func (n *NullBackend) ShowCursor(x, y int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cursorX = x
	n.cursorY = y
	n.cursorOn = true
}

func (n *NullBackend) HideCursor() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cursorOn = false
}

func (n *NullBackend) PollEvent() Event {
	return <-n.events
}

func (n *NullBackend) PostEvent(event Event) {
	select {
	case n.events <- event:
	default:
		// Queue full, drop the event.
	}
}

// CursorPosition returns the cursor state for tests.
func (n *NullBackend) CursorPosition() (x, y int, visible bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.cursorX, n.cursorY, n.cursorOn
}

// Resize changes the backend dimensions and posts the matching resize
// event.
func (n *NullBackend) Resize(width, height int) {
	n.mu.Lock()
	n.width = width
	n.height = height
	n.cells = make([][]Cell, height)
	for i := range n.cells {
		n.cells[i] = make([]Cell, width)
	}
	n.mu.Unlock()

	n.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// RowText returns row y as a string with trailing blanks trimmed.
// Unwritten cells read as spaces.
func (n *NullBackend) RowText(y int) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if y < 0 || y >= n.height {
		return ""
	}
	runes := make([]rune, n.width)
	for x, cell := range n.cells[y] {
		if cell.Rune == 0 {
			runes[x] = ' '
		} else {
			runes[x] = cell.Rune
		}
	}
	return strings.TrimRight(string(runes), " ")
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)
