package interaction

import (
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// EventType names an editor event that can be routed through Dispatch
type EventType string

// Event types
const (
	EventHover        EventType = "hover"
	EventHoverEnd     EventType = "hover_end"
	EventClick        EventType = "click"
	EventClickOutside EventType = "click_outside"
	EventKey          EventType = "key"
	EventEditInput    EventType = "edit_input"
	EventDragStart    EventType = "drag_start"
	EventDragMove     EventType = "drag_move"
	EventDragEnd      EventType = "drag_end"
	EventIncrement    EventType = "increment"
	EventDecrement    EventType = "decrement"
)

// Event is one serialized editor event
type Event struct {
	Type     EventType     `json:"type"`
	Location mech.Location `json:"location,omitempty"`
	Side     Side          `json:"side,omitempty"`
	Key      string        `json:"key,omitempty"`
	Shift    bool          `json:"shift,omitempty"`
	Y        float64       `json:"y,omitempty"`
	Mode     DragMode      `json:"mode,omitempty"`
	Text     string        `json:"text,omitempty"`
}

func (e *Event) needsLocation() bool {
	switch e.Type {
	case EventHover, EventHoverEnd, EventClick, EventDragStart, EventIncrement, EventDecrement:
		return true
	}
	return false
}

// Validate checks that the event carries what its type needs
func (e *Event) Validate() error {
	vb := errors.NewValidationBuilder()
	if e.needsLocation() && !e.Location.IsValid() {
		vb.Fieldf("location", "unknown location %q", e.Location)
	}

	switch e.Type {
	case EventHover, EventHoverEnd, EventClick, EventClickOutside, EventDragMove, EventDragEnd:
	case EventKey:
		errors.ValidateRequired("key", e.Key, vb)
	case EventEditInput, EventIncrement, EventDecrement:
		if e.Side != SideFront && e.Side != SideRear {
			vb.Field("side", "must be front or rear")
		}
	case EventDragStart:
		if e.Side != SideFront && e.Side != SideRear {
			vb.Field("side", "must be front or rear")
		}
		if e.Mode != "" && !e.Mode.IsValid() {
			vb.Fieldf("mode", "unknown drag mode %q", e.Mode)
		}
	default:
		vb.Fieldf("type", "unknown event type %q", e.Type)
	}
	return vb.Build()
}

// Dispatch routes one event to the matching controller method. Drag moves and ends go to the
// document when the drag is listening there, so they take the same path as a live pointer.
func (c *Controller) Dispatch(ev *Event) error {
	if ev == nil {
		return errors.InvalidArgument("event is required")
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	switch ev.Type {
	case EventHover:
		c.Hover(ev.Location)
	case EventHoverEnd:
		c.HoverEnd(ev.Location)
	case EventClick:
		c.Click(ev.Location)
	case EventClickOutside:
		c.ClickOutside()
	case EventKey:
		c.Key(ev.Key, ev.Shift)
	case EventEditInput:
		c.SetEditValue(ev.Side, ev.Text)
	case EventDragStart:
		mode := ev.Mode
		if mode == "" {
			mode = DragDiagram
		}
		c.BeginDrag(ev.Location, ev.Side, ev.Y, mode)
	case EventDragMove:
		if c.listening() {
			c.document.PointerMove(ev.Y)
		} else {
			c.DragMove(ev.Y)
		}
	case EventDragEnd:
		if c.listening() {
			c.document.PointerUp()
		} else {
			c.EndDrag()
		}
	case EventIncrement:
		c.Increment(ev.Location, ev.Side)
	case EventDecrement:
		c.Decrement(ev.Location, ev.Side)
	}
	return nil
}

func (c *Controller) listening() bool {
	return c.document != nil && c.Dragging() && c.drag.detach != nil
}
