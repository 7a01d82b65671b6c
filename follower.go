package anchor

import "github.com/grindlemire/go-anchor/pkg/debug"

var _ Node = (*FollowerNode)(nil)

// FollowerNode positions its subtree relative to the leader of a Link. It
// owns the alignment configuration, resolves the desired offset before
// every linked pass, applies the optional Boundary, and delegates the tree
// search and transform math to its embedded FollowerLayer.
//
// Per link, the node moves through three states:
//
//  1. Unlinked with no cached offset: composes nothing, schedules a single
//     post-frame check, then stays suppressed until the link changes.
//  2. Unlinked with a cached offset: keeps compositing at the last resolved
//     offset if ShowWhenUnlinked, otherwise hidden.
//  3. Linked: the offset is recomputed every pass and cached for use during
//     any later unlink.
type FollowerNode struct {
	FollowerLayer

	// Static anchor configuration, active when aligner is nil.
	leaderAnchor   Alignment
	followerAnchor Alignment
	extraOffset    Point

	// Dynamic anchor strategy, mutually exclusive with the static anchors.
	aligner Aligner

	boundary                 Boundary
	repaintWhenLeaderChanges bool

	// Offset resolved on the most recent linked pass. Survives unlinks for
	// visual continuity; discarded only when the link itself changes.
	cachedOffset *Point

	// One-shot retry bookkeeping for state 1. Re-armed on link change.
	retryScheduled bool

	handle *FollowerHandle
	unsub  Unsubscribe
}

// NewFollower creates a follower tracking the given link. By default it
// aligns its top-left corner to the leader's top-left with no extra offset
// and hides while unlinked.
func NewFollower(link *Link, opts ...FollowerOption) *FollowerNode {
	assertf(link != nil, "follower requires a link")
	f := &FollowerNode{
		leaderAnchor:   TopLeft,
		followerAnchor: TopLeft,
	}
	f.link = link
	f.self = f

	cfg := followerConfig{node: f}
	for _, opt := range opts {
		opt(&cfg)
	}
	assertf(!(cfg.staticSet && cfg.alignerSet),
		"static anchors and an aligner are mutually exclusive; configure one")
	return f
}

// --- Configuration ---

// SetLink retargets the follower at a different link. The cached offset is
// discarded, the one-shot unlinked retry is re-armed, and a new pass is
// requested.
func (f *FollowerNode) SetLink(link *Link) {
	assertf(link != nil, "follower requires a link")
	if f.link == link {
		return
	}
	if f.handle != nil {
		f.handle.Dispose()
		f.handle = nil
	}
	f.unsubscribeLink()
	f.setLink(link)
	f.cachedOffset = nil
	f.retryScheduled = false
	if f.owner != nil {
		f.handle = link.RegisterFollower()
		f.subscribeLink()
	}
	f.markDirty()
}

// SetAnchors sets the static anchor pair. Only valid in static mode.
func (f *FollowerNode) SetAnchors(leader, follower Alignment) {
	assertf(f.aligner == nil, "follower uses an aligner; static anchors are inactive")
	if f.leaderAnchor == leader && f.followerAnchor == follower {
		return
	}
	f.leaderAnchor = leader
	f.followerAnchor = follower
	f.markDirty()
}

// SetExtraOffset sets the fixed pixel offset added after anchor resolution.
// Only valid in static mode.
func (f *FollowerNode) SetExtraOffset(p Point) {
	assertf(f.aligner == nil, "follower uses an aligner; the static offset is inactive")
	if f.extraOffset == p {
		return
	}
	f.extraOffset = p
	f.markDirty()
}

// SetAligner replaces the dynamic anchor strategy. Only valid in aligner
// mode.
func (f *FollowerNode) SetAligner(a Aligner) {
	assertf(f.aligner != nil, "follower was configured with static anchors; an aligner cannot be set")
	assertf(a != nil, "aligner must not be nil; use SetAnchors for static alignment")
	f.aligner = a
	f.markDirty()
}

// SetBoundary replaces the containment policy and triggers re-evaluation.
// A nil boundary removes constraint.
func (f *FollowerNode) SetBoundary(b Boundary) {
	f.boundary = b
	f.markDirty()
}

// SetShowWhenUnlinked controls whether the subtree keeps compositing at the
// last resolved offset while no leader is attached.
func (f *FollowerNode) SetShowWhenUnlinked(show bool) {
	if f.showWhenUnlinked == show {
		return
	}
	f.showWhenUnlinked = show
	f.markDirty()
}

// SetRepaintWhenLeaderChanges toggles the eager-repaint subscription. The
// subscription exists only while the option is on and the node is attached,
// so no registrations leak.
func (f *FollowerNode) SetRepaintWhenLeaderChanges(v bool) {
	if f.repaintWhenLeaderChanges == v {
		return
	}
	f.repaintWhenLeaderChanges = v
	if f.owner == nil {
		return
	}
	if v {
		f.subscribeLink()
	} else {
		f.unsubscribeLink()
	}
}

// Boundary returns the active containment policy, or nil.
func (f *FollowerNode) Boundary() Boundary {
	return f.boundary
}

// --- Diagnostics ---

// CurrentTransform returns the transform computed by the most recent linked
// pass, if one exists.
func (f *FollowerNode) CurrentTransform() (Matrix, bool) {
	return f.LastTransform()
}

// PreviousResolvedOffset returns the offset resolved on the most recent
// linked pass, if one exists.
func (f *FollowerNode) PreviousResolvedOffset() (Point, bool) {
	if f.cachedOffset == nil {
		return Point{}, false
	}
	return *f.cachedOffset, true
}

// --- Composition ---

// Compose runs the follower's state machine for this pass, then delegates
// to the layer.
func (f *FollowerNode) Compose(ctx *ComposeContext) {
	if !f.link.LeaderConnected() {
		if f.cachedOffset == nil {
			// State 1: nothing to show and nowhere to show it. Check once
			// after this frame in case a leader attached late, then stay
			// quiet until the link changes.
			f.lastTransform = nil
			f.scheduleUnlinkedCheck(ctx.scene)
			return
		}
		f.unlinkedOffset = *f.cachedOffset
		f.hasUnlinkedOffset = true
		f.FollowerLayer.Compose(ctx)
		return
	}

	resolved := f.resolveOffset()
	f.cachedOffset = &resolved
	f.linkedOffset = resolved
	f.FollowerLayer.Compose(ctx)
}

// resolveOffset computes the desired leader-relative offset for a linked
// pass and applies the boundary.
func (f *FollowerNode) resolveOffset() Point {
	leaderSize, haveSize := f.link.LeaderSize()

	la, fa, extra := f.leaderAnchor, f.followerAnchor, f.extraOffset
	if f.aligner != nil {
		var ls Size
		if haveSize {
			ls = leaderSize
		}
		res := f.aligner.Align(RectFrom(f.link.Leader().LastOffset(), ls), f.size)
		la, fa, extra = res.LeaderAnchor, res.FollowerAnchor, res.Offset
	}
	assertf(haveSize || la.IsTopLeft(),
		"leader anchor %+v requires a known leader size; only TopLeft resolves without one", la)

	var leaderTerm Point
	if haveSize {
		leaderTerm = la.Along(leaderSize)
	}
	desired := leaderTerm.Sub(fa.Along(f.size)).Add(extra)
	if f.boundary != nil {
		desired = f.boundary.Constrain(f.link, f.size, desired)
	}
	return desired
}

// scheduleUnlinkedCheck queues the single deferred re-check for state 1.
// Fires at most once per unlink episode.
func (f *FollowerNode) scheduleUnlinkedCheck(s *Scene) {
	if f.retryScheduled || s == nil {
		return
	}
	f.retryScheduled = true
	debug.Logf("follower of %s unlinked with no cached offset; scheduling one post-frame check", f.link)
	s.AddPostFrameCallback(func() {
		if f.link.LeaderConnected() {
			f.markDirty()
		}
	})
}

// --- Lifecycle ---

// setOwner manages the link registration and the optional repaint
// subscription exactly at attach and detach.
func (f *FollowerNode) setOwner(owner *Scene) {
	wasAttached := f.owner != nil
	f.ContainerNode.setOwner(owner)
	switch {
	case owner != nil && !wasAttached:
		f.handle = f.link.RegisterFollower()
		f.subscribeLink()
	case owner == nil && wasAttached:
		if f.handle != nil {
			f.handle.Dispose()
			f.handle = nil
		}
		f.unsubscribeLink()
	}
}

// subscribeLink installs the eager-repaint listener if the option is on.
func (f *FollowerNode) subscribeLink() {
	if !f.repaintWhenLeaderChanges || f.unsub != nil {
		return
	}
	f.unsub = f.link.Subscribe(func() {
		f.markDirty()
	})
}

// unsubscribeLink removes the eager-repaint listener if installed.
func (f *FollowerNode) unsubscribeLink() {
	if f.unsub != nil {
		f.unsub()
		f.unsub = nil
	}
}
