package camera

// DragTracker follows the primary-button drag lifecycle and folds pointer
// movement into one PointerDragEvent per frame.
type DragTracker struct {
	dragging     bool
	lastX, lastY int
	dx, dy       int
}

// NewDragTracker creates a tracker with no drag in progress.
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Dragging reports whether the primary button is currently held.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}

// Press starts a drag and records the reference position.
func (d *DragTracker) Press(x, y int) {
	d.dragging = true
	d.lastX, d.lastY = x, y
}

// Move adds the offset from the reference to the pending delta and makes
// (x, y) the new reference. Moves outside a drag are ignored.
func (d *DragTracker) Move(x, y int) {
	if !d.dragging {
		return
	}
	d.dx += x - d.lastX
	d.dy += y - d.lastY
	d.lastX, d.lastY = x, y
}

// Release ends the drag. Velocity is not touched; momentum carries over.
func (d *DragTracker) Release() {
	d.dragging = false
}

// Frame returns the snapshot for this frame and clears the pending delta.
func (d *DragTracker) Frame() PointerDragEvent {
	ev := PointerDragEvent{
		Dragging: d.dragging,
		DX:       float64(d.dx),
		DY:       float64(d.dy),
	}
	d.dx, d.dy = 0, 0
	return ev
}
