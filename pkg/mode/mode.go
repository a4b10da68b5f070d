// Package mode tracks which presentation the list is shown in and gates
// content swaps while the presentation layer animates between them.
package mode

import "fmt"

// Mode is the display mode.
type Mode int

const (
	List Mode = iota
	Focus
)

func (m Mode) String() string {
	switch m {
	case List:
		return "list"
	case Focus:
		return "focus"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Geometry is a window frame handed over by the presentation layer. The
// controller stores it and never interprets it.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Controller owns the current mode, the animating gate and the last known
// geometry of each mode.
type Controller struct {
	current   Mode
	animating bool
	geometry  map[Mode]Geometry
}

// NewController starts in List mode.
func NewController() *Controller {
	return &Controller{current: List, geometry: make(map[Mode]Geometry)}
}

func (c *Controller) Mode() Mode { return c.current }

// Animating reports whether a transition is waiting for Settle.
func (c *Controller) Animating() bool { return c.animating }

// Geometry returns the last geometry recorded for m.
func (c *Controller) Geometry(m Mode) (Geometry, bool) {
	g, ok := c.geometry[m]
	return g, ok
}

// SetGeometry records g for m without changing modes.
func (c *Controller) SetGeometry(m Mode, g Geometry) {
	c.geometry[m] = g
}

// EnterFocus switches to Focus. It is a no-op when already focused or when
// hasActive is false.
func (c *Controller) EnterFocus(hasActive bool, before *Geometry) bool {
	if c.current == Focus || !hasActive {
		return false
	}
	c.transition(Focus, before)
	return true
}

// ExitFocus switches back to List.
func (c *Controller) ExitFocus(before *Geometry) bool {
	if c.current == List {
		return false
	}
	c.transition(List, before)
	return true
}

// Restore forces m without a precondition check. It is used when undo or redo
// reapplies a recorded mode.
func (c *Controller) Restore(m Mode) bool {
	if c.current == m {
		return false
	}
	c.transition(m, nil)
	return true
}

// Settle lowers the animating gate and stores the geometry the new mode
// settled on.
func (c *Controller) Settle(after *Geometry) {
	if after != nil {
		c.geometry[c.current] = *after
	}
	c.animating = false
}

func (c *Controller) transition(to Mode, before *Geometry) {
	if before != nil {
		c.geometry[c.current] = *before
	}
	c.current = to
	c.animating = true
}
