package reorder

import (
	"math"
	"slices"
)

// Gesture tracks one press-drag-release on a row of the active view.
type Gesture struct {
	// Primary is the row under the pointer.
	Primary string
	// Block is every id that moves with Primary, in active order.
	Block []string
	// Origin is the active index of Primary when the press started.
	Origin int

	threshold float64
	delta     float64
	dragging  bool
	preview   int
	// count and floor bound the committed index to the rows seen by Update.
	count int
	floor int
}

// Commit is the move a released gesture asks for.
type Commit struct {
	IDs     []string
	ToIndex int
}

// Begin starts a gesture. A non-positive threshold uses DefaultThreshold.
func Begin(primary string, block []string, origin int, threshold float64) *Gesture {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if !slices.Contains(block, primary) {
		block = []string{primary}
	}
	return &Gesture{
		Primary:   primary,
		Block:     slices.Clone(block),
		Origin:    origin,
		threshold: threshold,
		preview:   origin,
	}
}

// Update feeds the cumulative pointer distance since the press.
func (g *Gesture) Update(delta, rowHeight float64, count int, frogPinned, draggingFrog bool) {
	g.delta = delta
	if !g.dragging && math.Abs(delta) <= g.threshold {
		return
	}
	g.dragging = true
	g.count = count
	g.floor = 0
	if frogPinned && !draggingFrog {
		g.floor = 1
	}
	g.preview = PreviewIndex(delta, rowHeight, g.Origin, count, frogPinned, draggingFrog)
}

// Dragging reports whether the threshold has been crossed.
func (g *Gesture) Dragging() bool { return g.dragging }

// Preview is the index the primary row would land on.
func (g *Gesture) Preview() int { return g.preview }

// Delta is the last cumulative distance passed to Update.
func (g *Gesture) Delta() float64 { return g.delta }

// Release ends the gesture. It reports false when the pointer never crossed
// the threshold or came back to the origin row. The block starts where the
// primary lands on the preview row; near either end of the view it is pulled
// back inside, below a pinned frog and above the last row.
func (g *Gesture) Release() (Commit, bool) {
	if !g.dragging || g.preview == g.Origin {
		return Commit{}, false
	}
	offset := slices.Index(g.Block, g.Primary)
	hi := max(g.floor, g.count-len(g.Block))
	to := min(max(g.preview-offset, g.floor), hi)
	return Commit{IDs: slices.Clone(g.Block), ToIndex: to}, true
}
