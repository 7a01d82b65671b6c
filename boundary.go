package anchor

import "github.com/grindlemire/go-anchor/pkg/debug"

var (
	_ Boundary = RegionBoundary{}
	_ Boundary = NodeBoundary{}
)

// Boundary clamps a candidate follower offset to a containment region.
// Implementations are stateless beyond their configuration.
type Boundary interface {
	// Constrain returns desired shifted by the minimum amount on each axis
	// so the follower's would-be global rectangle falls within the region.
	// Axes are independent: a follower too tall for the region still clamps
	// correctly horizontally.
	Constrain(link *Link, followerSize Size, desired Point) Point

	// Contains reports whether a global point lies inside the region. Not
	// used by Constrain; a direct containment query for callers.
	Contains(p Point) bool
}

// RegionBoundary confines followers to a fixed region anchored at the
// origin, e.g. the visible screen.
type RegionBoundary struct {
	Region Size
}

// Constrain shifts desired so the follower rectangle fits in [0, Region].
func (b RegionBoundary) Constrain(link *Link, followerSize Size, desired Point) Point {
	leader := link.Leader()
	if leader == nil {
		return desired
	}
	rect := RectFrom(leader.LastOffset().Add(desired), followerSize)
	shift := rect.ShiftInto(RectFrom(Point{}, b.Region))
	return desired.Add(shift)
}

// Contains reports whether the point lies inside the region.
func (b RegionBoundary) Contains(p Point) bool {
	return RectFrom(Point{}, b.Region).Contains(p)
}

// NodeBoundary confines followers to another node's global rectangle. If
// the referenced node is not attached or has never composed, constraining
// is a logged no-op and the desired offset passes through unchanged.
type NodeBoundary struct {
	Ref *NodeRef
}

// Constrain shifts desired so the follower rectangle fits in the referenced
// node's global rectangle.
func (b NodeBoundary) Constrain(link *Link, followerSize Size, desired Point) Point {
	bounds, ok := b.bounds()
	if !ok {
		debug.Warnf("node boundary has no attached node; constraint skipped")
		return desired
	}
	leader := link.Leader()
	if leader == nil {
		return desired
	}
	rect := RectFrom(leader.LastOffset().Add(desired), followerSize)
	shift := rect.ShiftInto(bounds)
	return desired.Add(shift)
}

// Contains reports whether the point lies inside the referenced node's
// global rectangle. False when the node is unresolvable.
func (b NodeBoundary) Contains(p Point) bool {
	bounds, ok := b.bounds()
	if !ok {
		return false
	}
	return bounds.Contains(p)
}

// bounds resolves the referenced node's global rectangle. The node must be
// attached to a scene and carry a size.
func (b NodeBoundary) bounds() (Rect, bool) {
	if b.Ref == nil {
		return Rect{}, false
	}
	n := b.Ref.Node()
	if n == nil || n.Owner() == nil {
		return Rect{}, false
	}
	bp, ok := n.(interface{ GlobalRect() Rect })
	if !ok {
		return Rect{}, false
	}
	r := bp.GlobalRect()
	if r.Size().IsEmpty() {
		return Rect{}, false
	}
	return r, true
}
