package anchor

import "github.com/grindlemire/go-anchor/pkg/debug"

var _ Node = (*FollowerLayer)(nil)

// FollowerLayer is the compositing node that anchors its subtree to a
// leader found through a Link. Every pass it locates the lowest common
// ancestor of the leader and itself, folds the transform contributions
// along both chains, and composes its children under the resulting
// transform. The layer never caches across passes: leader-side changes are
// invisible to it, so the transform is re-derived unconditionally while
// linked. The cached transform only serves hit testing and transform
// queries between passes.
type FollowerLayer struct {
	ContainerNode
	link *Link

	// Whether to keep compositing at unlinkedOffset when no leader is
	// attached. With it off, the subtree is suppressed entirely: no
	// transform pushed, no children added.
	showWhenUnlinked bool

	// Fallback translation used while unlinked, valid when
	// hasUnlinkedOffset. Supplied by the follower node from its cache.
	unlinkedOffset    Point
	hasUnlinkedOffset bool

	// Extra leader-to-follower translation, resolved by the follower node
	// before each linked pass.
	linkedOffset Point

	// lastTransform maps follower-local space to the leader-anchored
	// position, as of lastTransformFrame. Nil while unlinked or degenerate.
	lastTransform      *Matrix
	lastTransformFrame uint64

	// Inverse of lastTransform, computed once per pass on first hit test
	// and reused for subsequent queries within the pass.
	inverseTransform *Matrix
}

// NewFollowerLayer creates a follower layer tracking the given link.
func NewFollowerLayer(link *Link) *FollowerLayer {
	assertf(link != nil, "follower layer requires a link")
	fl := &FollowerLayer{link: link}
	fl.self = fl
	return fl
}

// Link returns the link this layer tracks.
func (fl *FollowerLayer) Link() *Link {
	return fl.link
}

// ShowWhenUnlinked reports whether the subtree composes while unlinked.
func (fl *FollowerLayer) ShowWhenUnlinked() bool {
	return fl.showWhenUnlinked
}

// LastTransform returns the transform computed by the most recent linked
// pass, if one exists.
func (fl *FollowerLayer) LastTransform() (Matrix, bool) {
	if fl.lastTransform == nil {
		return Matrix{}, false
	}
	return *fl.lastTransform, true
}

// AlwaysNeedsCompose reports that this layer is unsuitable for composition
// caching: the leader may move without anything in this subtree changing.
func (fl *FollowerLayer) AlwaysNeedsCompose() bool {
	return true
}

// setLink swaps the tracked link and drops derived state.
func (fl *FollowerLayer) setLink(link *Link) {
	fl.link = link
	fl.lastTransform = nil
	fl.inverseTransform = nil
	fl.hasUnlinkedOffset = false
}

// Compose adds the layer's subtree to the pass: under the established
// transform when linked, at the fallback offset when unlinked and shown,
// or not at all.
func (fl *FollowerLayer) Compose(ctx *ComposeContext) {
	fl.inverseTransform = nil
	if !fl.link.LeaderConnected() {
		fl.lastTransform = nil
		if !fl.showWhenUnlinked || !fl.hasUnlinkedOffset {
			return
		}
		fl.recordCompose(ctx)
		saved := ctx.transform
		ctx.transform = saved.Translated(fl.unlinkedOffset.X, fl.unlinkedOffset.Y)
		fl.composeChildrenRaw(ctx)
		ctx.transform = saved
		return
	}

	fl.establishTransform(ctx)
	if fl.lastTransform == nil {
		// Degenerate ancestor transform: a recoverable transient. Suppress
		// the subtree this pass and retry on the next one.
		return
	}
	fl.recordCompose(ctx)
	saved := ctx.transform
	ctx.transform = saved.Mul(*fl.lastTransform)
	fl.composeChildrenRaw(ctx)
	ctx.transform = saved
}

// composeChildrenRaw composes children under the transform already set in
// ctx, bypassing ApplyTransform: the layer's contribution depends on which
// of the linked/unlinked paths composed it.
func (fl *FollowerLayer) composeChildrenRaw(ctx *ComposeContext) {
	for _, child := range fl.children {
		saved := ctx.transform
		child.Compose(ctx)
		ctx.transform = saved
	}
}

// ApplyTransform folds the layer's most recent contribution into m, for
// ancestor chains that pass through this layer.
func (fl *FollowerLayer) ApplyTransform(_ Node, m *Matrix) {
	if fl.lastTransform != nil {
		*m = m.Mul(*fl.lastTransform)
		return
	}
	*m = m.Translated(fl.unlinkedOffset.X, fl.unlinkedOffset.Y)
}

// establishTransform derives the follower-to-leader transform for this
// pass, or clears it if no valid transform exists.
func (fl *FollowerLayer) establishTransform(ctx *ComposeContext) {
	fl.lastTransform = nil
	leader := fl.link.Leader()

	assertf(leader.Owner() == fl.owner,
		"leader and follower of %s are in different scenes", fl.link)
	assertf(leader.composedFrame == ctx.frame,
		"leader of %s has not composed this pass; leaders must compose before their followers", fl.link)

	ancestor, leaderChain, followerChain := pathsToCommonAncestor(leader, fl.self)
	if ancestor == nil {
		debug.Logf("follower of %s: no common ancestor, subtree suppressed", fl.link)
		return
	}

	// Forward: ancestor down to the leader, the leader's own paint offset,
	// then the resolved linked offset in leader-local space.
	forward := collectTransformForChain(leaderChain)
	leader.ApplyTransform(nil, &forward)
	forward = forward.Translated(fl.linkedOffset.X, fl.linkedOffset.Y)

	// Inverse: ancestor down to this layer, inverted.
	toFollower := collectTransformForChain(followerChain)
	inverse, err := toFollower.Invert()
	if err != nil {
		debug.Logf("follower of %s: degenerate chain transform (%v), subtree suppressed", fl.link, err)
		return
	}

	final := inverse.Mul(forward)
	fl.lastTransform = &final
	fl.lastTransformFrame = ctx.frame
}

// HitTest tests children in the coordinate space they actually composed
// in. Hidden (unlinked without a fallback, or degenerate) reports no hit.
func (fl *FollowerLayer) HitTest(p Point) Node {
	if !fl.link.LeaderConnected() {
		if !fl.showWhenUnlinked || !fl.hasUnlinkedOffset {
			return nil
		}
		return fl.hitTestChildren(p.Sub(fl.unlinkedOffset))
	}
	inv, ok := fl.cachedInverse()
	if !ok {
		return nil
	}
	return fl.hitTestChildren(inv.Apply(p))
}

// cachedInverse inverts the last computed transform once per pass and
// reuses it for later hit-test queries in the same pass.
func (fl *FollowerLayer) cachedInverse() (Matrix, bool) {
	if fl.inverseTransform != nil {
		return *fl.inverseTransform, true
	}
	if fl.lastTransform == nil {
		return Matrix{}, false
	}
	inv, err := fl.lastTransform.Invert()
	if err != nil {
		return Matrix{}, false
	}
	fl.inverseTransform = &inv
	return inv, true
}

// pathsToCommonAncestor walks both nodes toward their roots in lock-step by
// depth until they meet. It returns the lowest common ancestor and the two
// visited chains, each starting at the original node and ending at the
// ancestor. For nodes in disjoint trees it returns nil chains. Terminates
// in O(depth) steps.
func pathsToCommonAncestor(a, b Node) (ancestor Node, chainA, chainB []Node) {
	chainA = []Node{a}
	chainB = []Node{b}
	for a != nil && b != nil {
		if a == b {
			return a, chainA, chainB
		}
		switch {
		case a.Depth() > b.Depth():
			a = a.Parent()
			chainA = append(chainA, a)
		case b.Depth() > a.Depth():
			b = b.Parent()
			chainB = append(chainB, b)
		default:
			a = a.Parent()
			chainA = append(chainA, a)
			b = b.Parent()
			chainB = append(chainB, b)
		}
	}
	return nil, nil, nil
}

// collectTransformForChain folds each node's transform contribution along
// the chain, from the ancestor at the end down to the node at the start.
// The first node's own contribution is not included.
func collectTransformForChain(chain []Node) Matrix {
	m := Identity()
	for i := len(chain) - 1; i > 0; i-- {
		chain[i].ApplyTransform(chain[i-1], &m)
	}
	return m
}
