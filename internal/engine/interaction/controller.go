// Package interaction turns discrete editor events (hover, click, keyboard nudges, popup
// edits, drags and the increment buttons) into armor changes for one unit. The controller
// never writes armor itself: every change goes to the configured ChangeFunc and the host
// applies it with Apply.
package interaction

import (
	"strconv"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// State is a location's interaction state
type State string

// States, lowest to highest precedence
const (
	StateIdle     State = "idle"
	StateHovered  State = "hovered"
	StateSelected State = "selected"
	StateEditing  State = "editing"
)

// Keys understood by the controller
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
)

// ValueSource reads the armor currently on a location and that location's maximum
type ValueSource interface {
	Armor(loc mech.Location) (armor mech.LocationArmor, maxArmor int)
}

// ChangeFunc receives every change the controller produces
type ChangeFunc func(loc mech.Location, change mech.ArmorChange)

// Config configures a Controller
type Config struct {
	Source   ValueSource
	OnChange ChangeFunc
	// Document receives the pointer listeners of mouse drags. Optional; without it mouse
	// drags only move through Controller.DragMove.
	Document *Document
	ReadOnly bool
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.OnChange == nil {
		vb.RequiredField("OnChange")
	}
	return vb.Build()
}

// editBuffer holds the popup fields as typed
type editBuffer struct {
	front string
	rear  string
}

// Controller is the interaction state of one unit's armor editor. It is driven by one event
// loop and is not safe for concurrent use.
type Controller struct {
	source   ValueSource
	onChange ChangeFunc
	document *Document
	readOnly bool

	hovered  mech.Location
	selected mech.Location
	editing  bool
	buffer   editBuffer
	drag     *DragSession
}

// NewController creates a controller with nothing hovered or selected
func NewController(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Controller{
		source:   cfg.Source,
		onChange: cfg.OnChange,
		document: cfg.Document,
		readOnly: cfg.ReadOnly,
	}, nil
}

// ReadOnly reports whether mutating events are ignored
func (c *Controller) ReadOnly() bool {
	return c.readOnly
}

// State returns the state of one location
func (c *Controller) State(loc mech.Location) State {
	switch {
	case c.selected == loc && c.editing:
		return StateEditing
	case c.selected == loc:
		return StateSelected
	case c.hovered == loc && loc != "":
		return StateHovered
	default:
		return StateIdle
	}
}

// Selected returns the selected location, if any
func (c *Controller) Selected() (mech.Location, bool) {
	return c.selected, c.selected != ""
}

// Hovered returns the hovered location, if any
func (c *Controller) Hovered() (mech.Location, bool) {
	return c.hovered, c.hovered != ""
}

// Editing returns the location with an open popup, if any
func (c *Controller) Editing() (mech.Location, bool) {
	if !c.editing {
		return "", false
	}
	return c.selected, true
}

// EditBuffer returns the popup fields as typed
func (c *Controller) EditBuffer() (front, rear string) {
	return c.buffer.front, c.buffer.rear
}

// Hover marks a location as under the pointer. Ignored while dragging.
func (c *Controller) Hover(loc mech.Location) {
	if c.Dragging() || !loc.IsValid() {
		return
	}
	c.hovered = loc
}

// HoverEnd clears the hover if it is on loc
func (c *Controller) HoverEnd(loc mech.Location) {
	if c.Dragging() {
		return
	}
	if c.hovered == loc {
		c.hovered = ""
	}
}

// Click handles a click on a location. The first click selects it, a second click on the
// selected location opens the popup, and a click on another location commits any open popup
// before moving the selection there.
func (c *Controller) Click(loc mech.Location) {
	if c.readOnly || !loc.IsValid() {
		return
	}

	switch {
	case c.selected == loc && c.editing:
		return
	case c.selected == loc:
		c.openEdit()
	default:
		if c.editing {
			c.commitEdit()
		}
		c.selected = loc
	}
}

// ClickOutside handles a click away from every location. An open popup is committed and the
// location stays selected; otherwise the selection is cleared.
func (c *Controller) ClickOutside() {
	if c.editing {
		c.commitEdit()
		return
	}
	c.selected = ""
}

// Key handles a key press on the focused editor
func (c *Controller) Key(key string, shift bool) {
	if c.readOnly || c.selected == "" {
		return
	}

	if c.editing {
		switch key {
		case KeyEnter:
			c.commitEdit()
		case KeyEscape:
			c.cancelEdit()
		}
		return
	}

	switch {
	case key == KeyArrowUp && !shift:
		c.nudge(SideFront, 1)
	case key == KeyArrowDown && !shift:
		c.nudge(SideFront, -1)
	case key == KeyArrowRight && shift:
		c.nudge(SideRear, 1)
	case key == KeyArrowLeft && shift:
		c.nudge(SideRear, -1)
	case key == KeyEscape:
		c.selected = ""
	}
}

// nudge moves one side by one point. Each side is clamped to [0,max]; a pair whose total
// exceeds max, or that did not change, fires nothing.
func (c *Controller) nudge(side Side, step int) {
	loc := c.selected
	hasRear := budget.HasRearArmor(loc)
	if side == SideRear && !hasRear {
		return
	}

	current, maxArmor := c.source.Armor(loc)
	front, rear := current.Front, current.Rear
	if side == SideFront {
		front = clamp(front+step, 0, maxArmor)
	} else {
		rear = clamp(rear+step, 0, maxArmor)
	}

	if front+rear > maxArmor {
		return
	}
	if front == current.Front && rear == current.Rear {
		return
	}
	c.emit(loc, mech.Both(front, rear))
}

// SetEditValue replaces one popup field with the text as typed
func (c *Controller) SetEditValue(side Side, text string) {
	if !c.editing {
		return
	}
	if side == SideRear {
		c.buffer.rear = text
		return
	}
	c.buffer.front = text
}

func (c *Controller) openEdit() {
	current, _ := c.source.Armor(c.selected)
	c.editing = true
	c.buffer = editBuffer{
		front: strconv.Itoa(current.Front),
		rear:  strconv.Itoa(current.Rear),
	}
}

// commitEdit parses the popup and fires Both when the result differs from the location's
// current armor. Front is clamped to [0,max] and rear to [0,max-front].
func (c *Controller) commitEdit() {
	loc := c.selected
	buffer := c.buffer
	c.editing = false
	c.buffer = editBuffer{}

	current, maxArmor := c.source.Armor(loc)
	front := clamp(ParseInt(buffer.front), 0, maxArmor)
	rear := 0
	if budget.HasRearArmor(loc) {
		rear = clamp(ParseInt(buffer.rear), 0, maxArmor-front)
	}

	if front == current.Front && rear == current.Rear {
		return
	}
	c.emit(loc, mech.Both(front, rear))
}

func (c *Controller) cancelEdit() {
	c.editing = false
	c.buffer = editBuffer{}
}

// Increment adds one point to a side: front is capped at max-rear and rear at max-front
func (c *Controller) Increment(loc mech.Location, side Side) {
	c.step(loc, side, 1)
}

// Decrement removes one point from a side, stopping at 0
func (c *Controller) Decrement(loc mech.Location, side Side) {
	c.step(loc, side, -1)
}

func (c *Controller) step(loc mech.Location, side Side, step int) {
	if c.readOnly || !loc.IsValid() {
		return
	}
	if side == SideRear && !budget.HasRearArmor(loc) {
		return
	}

	current, maxArmor := c.source.Armor(loc)
	if side == SideRear {
		next := clamp(current.Rear+step, 0, maxArmor-current.Front)
		if next != current.Rear {
			c.emit(loc, mech.RearOnly(next))
		}
		return
	}

	next := clamp(current.Front+step, 0, maxArmor-current.Rear)
	if next != current.Front {
		c.emit(loc, mech.FrontOnly(next))
	}
}

// BeginDrag starts a drag on one side of a location at pointer position y, ending any drag
// already running. Mouse drags attach a listener to the document until they end. Returns
// nil when the drag is not allowed.
func (c *Controller) BeginDrag(loc mech.Location, side Side, y float64, mode DragMode) *DragSession {
	if c.readOnly || !loc.IsValid() || !mode.IsValid() {
		return nil
	}
	if side == SideRear && !budget.HasRearArmor(loc) {
		return nil
	}

	c.EndDrag()

	current, _ := c.source.Armor(loc)
	start := current.Front
	if side == SideRear {
		start = current.Rear
	}

	session := &DragSession{
		Location:   loc,
		Side:       side,
		Mode:       mode,
		StartY:     y,
		StartValue: start,
		last:       start,
		emit:       c.dragged,
		onEnd:      c.dragEnded,
	}
	if mode != DragTouch && c.document != nil {
		session.detach = c.document.Listen(session)
	}

	c.drag = session
	return session
}

// DragMove moves the running drag, which is how touch drags are fed
func (c *Controller) DragMove(y float64) {
	if c.drag != nil {
		c.drag.Move(y)
	}
}

// EndDrag finishes the running drag, if any
func (c *Controller) EndDrag() {
	if c.drag != nil {
		c.drag.End()
	}
}

// Drag returns the running drag, or nil
func (c *Controller) Drag() *DragSession {
	return c.drag
}

// Dragging reports whether a drag is running
func (c *Controller) Dragging() bool {
	return c.drag != nil && c.drag.Active()
}

func (c *Controller) dragged(s *DragSession, value int) {
	if s.Side == SideRear {
		c.emit(s.Location, mech.RearOnly(value))
		return
	}
	c.emit(s.Location, mech.FrontOnly(value))
}

func (c *Controller) dragEnded(s *DragSession) {
	if c.drag == s {
		c.drag = nil
	}
}

// Close ends any running drag and drops the selection. A closed controller leaves no
// listener on the document.
func (c *Controller) Close() {
	c.EndDrag()
	c.cancelEdit()
	c.selected = ""
	c.hovered = ""
}

func (c *Controller) emit(loc mech.Location, change mech.ArmorChange) {
	c.onChange(loc, change)
}
