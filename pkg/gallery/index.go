package gallery

/**************************************************************************************************
** State is the carousel mode derived from the number of photos.
**************************************************************************************************/
type State int

const (
	StateEmpty    State = iota // no photos, every operation is a no-op
	StateSingle                // one photo, no wraparound and no dragging
	StateCircular              // two photos or more
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSingle:
		return "single"
	default:
		return "circular"
	}
}

/**************************************************************************************************
** CircularIndex tracks the selection of a carousel that never reaches an edge. The internal
** index ranges over a virtual list made of three copies of the photos and starts in the middle
** copy, so stepping backward from the first photo is always legal. The committed index is the
** internal index folded back into [0, count) and is the only externally visible selection.
**
** Moves (Step, JumpTo, Drag, SyncExternal) only change the internal index. Once a move settles
** the host calls Commit and then Renormalize, or Settle for both, exactly once.
**
** A CircularIndex belongs to one open gallery and is not safe for concurrent use.
**************************************************************************************************/
type CircularIndex struct {
	count     int
	internal  int
	committed int
	dragging  bool
	dragBase  int
	pending   *int
}

/**************************************************************************************************
** NewCircularIndex creates the index of a gallery of count photos with initialRealIndex
** selected. The initial index is folded into range, negative counts are treated as empty.
**
** @param count - Number of photos
** @param initialRealIndex - Initially selected photo
** @return *CircularIndex - Index positioned in the middle copy
**************************************************************************************************/
func NewCircularIndex(count, initialRealIndex int) *CircularIndex {
	if count <= 0 {
		return &CircularIndex{}
	}
	initial := floorMod(initialRealIndex, count)
	if count == 1 {
		initial = 0
	}
	return &CircularIndex{
		count:     count,
		internal:  count + initial,
		committed: initial,
	}
}

// Count returns the number of photos.
func (c *CircularIndex) Count() int {
	return c.count
}

// State returns the carousel mode.
func (c *CircularIndex) State() State {
	switch c.count {
	case 0:
		return StateEmpty
	case 1:
		return StateSingle
	default:
		return StateCircular
	}
}

// Internal returns the position in the tripled virtual list.
func (c *CircularIndex) Internal() int {
	return c.internal
}

// Dragging reports whether a drag gesture is in progress.
func (c *CircularIndex) Dragging() bool {
	return c.dragging
}

/**************************************************************************************************
** Committed returns the current selection. ok is false for an empty gallery.
**
** @return int - Committed real index
** @return bool - False when there is no selection
**************************************************************************************************/
func (c *CircularIndex) Committed() (int, bool) {
	if c.count == 0 {
		return 0, false
	}
	return c.committed, true
}

// Step moves the internal index by delta single steps. No-op below two photos.
func (c *CircularIndex) Step(delta int) {
	if c.count < 2 {
		return
	}
	c.internal += delta
	if c.dragging {
		c.dragBase += delta
	}
}

/**************************************************************************************************
** JumpTo moves to realIndex in whichever copy of the tripled list is nearest to the internal
** index, so a tap on a visible neighbour never scrolls through the whole gallery. Ties keep the
** current copy, then the previous one. No-op below two photos.
**
** @param realIndex - Photo to select, folded into range
**************************************************************************************************/
func (c *CircularIndex) JumpTo(realIndex int) {
	if c.count < 2 || c.dragging {
		return
	}
	target := floorMod(realIndex, c.count)
	base := c.internal - floorMod(c.internal, c.count) + target

	best := base
	for _, candidate := range []int{base - c.count, base + c.count} {
		if abs(candidate-c.internal) < abs(best-c.internal) {
			best = candidate
		}
	}
	c.internal = best
}

/**************************************************************************************************
** BeginDrag starts a drag gesture. Until EndDrag, Drag offsets are applied relative to the
** internal index at the start of the gesture and Commit leaves the selection untouched, so a
** partially applied drag is never committed. No-op below two photos.
**************************************************************************************************/
func (c *CircularIndex) BeginDrag() {
	if c.count < 2 || c.dragging {
		return
	}
	c.dragging = true
	c.dragBase = c.internal
}

// Drag sets the running offset, in whole items, of the current drag gesture.
func (c *CircularIndex) Drag(offset int) {
	if !c.dragging {
		return
	}
	c.internal = c.dragBase + offset
}

/**************************************************************************************************
** EndDrag finishes the drag gesture, keeping the last offset. An external selection received
** during the gesture is applied from where the drag ended. The host then calls Settle.
**************************************************************************************************/
func (c *CircularIndex) EndDrag() {
	c.dragging = false
	if c.pending != nil {
		target := *c.pending
		c.pending = nil
		c.SyncExternal(target)
	}
}

/**************************************************************************************************
** Commit folds the internal index into [0, count) and publishes it as the selection. It is a
** no-op while a drag is in progress.
**
** @return int - Committed real index
** @return bool - False for an empty gallery
**************************************************************************************************/
func (c *CircularIndex) Commit() (int, bool) {
	if c.count == 0 {
		return 0, false
	}
	if c.dragging || c.count == 1 {
		return c.committed, true
	}
	c.committed = floorMod(c.internal, c.count)
	return c.committed, true
}

/**************************************************************************************************
** Renormalize brings the internal index back into the middle copy [count, 2*count) by whole
** multiples of count. The three copies render the same photo at the same offset, so the shift
** is invisible and never changes the committed index.
**************************************************************************************************/
func (c *CircularIndex) Renormalize() {
	if c.count < 2 || c.dragging {
		return
	}
	if c.internal < c.count || c.internal >= 2*c.count {
		c.internal = c.count + floorMod(c.internal, c.count)
	}
}

// Settle commits the settled move and renormalizes the internal index.
func (c *CircularIndex) Settle() (int, bool) {
	index, ok := c.Commit()
	c.Renormalize()
	return index, ok
}

/**************************************************************************************************
** SyncExternal follows a selection made outside the carousel (another view changed the current
** photo). The internal index advances by the signed difference between the requested index and
** the one it currently points at, so a move that has not settled yet still lands on the request.
** During a drag only the latest request is kept, and EndDrag applies it. The host settles the
** move once its animation completes.
**
** @param realIndex - Requested selection, folded into range
**************************************************************************************************/
func (c *CircularIndex) SyncExternal(realIndex int) {
	if c.count < 2 {
		return
	}
	target := floorMod(realIndex, c.count)
	if c.dragging {
		c.pending = &target
		return
	}
	if current := floorMod(c.internal, c.count); target != current {
		c.internal += target - current
	}
}

/**************************************************************************************************
** Window lists the real indices rendered around the internal index: radius items on each side,
** wrapping across the gallery boundary. A single photo yields one entry, an empty gallery none.
**
** @param radius - Items rendered on each side of the selection
** @return []int - Real indices from left to right
**************************************************************************************************/
func (c *CircularIndex) Window(radius int) []int {
	switch {
	case c.count == 0:
		return nil
	case c.count == 1 || radius <= 0:
		return []int{floorMod(c.internal, c.count)}
	}
	window := make([]int, 0, 2*radius+1)
	for offset := -radius; offset <= radius; offset++ {
		window = append(window, floorMod(c.internal+offset, c.count))
	}
	return window
}

func floorMod(a, n int) int {
	return ((a % n) + n) % n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
