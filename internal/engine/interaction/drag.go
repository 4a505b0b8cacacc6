package interaction

import (
	"math"
	"sync"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// Side is the facing a drag or nudge works on
type Side string

// Sides
const (
	SideFront Side = "front"
	SideRear  Side = "rear"
)

// DragMode selects the pixels-to-points ratio of a drag
type DragMode string

// Drag modes
const (
	// DragDiagram is the armor diagram: half a point per pixel
	DragDiagram DragMode = "diagram"
	// DragPanel is the location panel: one point per 5 pixels
	DragPanel DragMode = "panel"
	// DragTouch is a touch drag: one point per 10 pixels. Touch moves arrive through the
	// controller, no document listener is attached.
	DragTouch DragMode = "touch"
)

// IsValid reports whether m is a known drag mode
func (m DragMode) IsValid() bool {
	switch m {
	case DragDiagram, DragPanel, DragTouch:
		return true
	}
	return false
}

func (m DragMode) delta(dy float64) int {
	var points float64
	switch m {
	case DragPanel:
		points = dy / 5
	case DragTouch:
		points = dy / 10
	default:
		points = dy * 0.5
	}
	return int(math.Floor(points + 0.5))
}

// PointerListener receives document-wide pointer events
type PointerListener interface {
	PointerMove(y float64)
	PointerUp()
}

// Document is the registry of document-wide pointer listeners. Mouse drags attach here for
// their lifetime and detach on end, so the listener count is the number of live drags.
type Document struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]PointerListener
}

// NewDocument creates an empty listener registry
func NewDocument() *Document {
	return &Document{listeners: make(map[int]PointerListener)}
}

// Listen attaches a listener and returns its detach function. Detaching twice is a no-op.
func (d *Document) Listen(l PointerListener) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

// ListenerCount returns the number of attached listeners
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// PointerMove delivers a move to every attached listener
func (d *Document) PointerMove(y float64) {
	for _, l := range d.snapshot() {
		l.PointerMove(y)
	}
}

// PointerUp delivers a pointer release to every attached listener
func (d *Document) PointerUp() {
	for _, l := range d.snapshot() {
		l.PointerUp()
	}
}

// listeners may detach themselves while being notified
func (d *Document) snapshot() []PointerListener {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]PointerListener, 0, len(d.listeners))
	for _, l := range d.listeners {
		out = append(out, l)
	}
	return out
}

// DragSession is one drag gesture. It captures the starting pointer position and value and
// turns later positions into absolute values for its side. Values are floored at 0 but not
// clamped against the location maximum or the opposite side.
type DragSession struct {
	Location   mech.Location
	Side       Side
	Mode       DragMode
	StartY     float64
	StartValue int

	emit   func(*DragSession, int)
	detach func()
	onEnd  func(*DragSession)
	last   int
	ended  bool
}

// ValueAt returns the value the drag produces at pointer position y
func (s *DragSession) ValueAt(y float64) int {
	return max(0, s.StartValue+s.Mode.delta(s.StartY-y))
}

// Move reports the value at y, firing a change only when the value moved
func (s *DragSession) Move(y float64) {
	if s.ended {
		return
	}
	v := s.ValueAt(y)
	if v == s.last {
		return
	}
	s.last = v
	if s.emit != nil {
		s.emit(s, v)
	}
}

// End finishes the drag and detaches its listener. Ending twice is a no-op.
func (s *DragSession) End() {
	if s.ended {
		return
	}
	s.ended = true
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	if s.onEnd != nil {
		s.onEnd(s)
	}
}

// Active reports whether the drag is still running
func (s *DragSession) Active() bool {
	return !s.ended
}

// PointerMove implements PointerListener
func (s *DragSession) PointerMove(y float64) { s.Move(y) }

// PointerUp implements PointerListener
func (s *DragSession) PointerUp() { s.End() }
