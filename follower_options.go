package anchor

// followerConfig tracks which configuration mode the options selected so
// NewFollower can reject mixing static anchors with an aligner.
type followerConfig struct {
	node       *FollowerNode
	staticSet  bool
	alignerSet bool
}

// FollowerOption configures a FollowerNode at construction.
type FollowerOption func(*followerConfig)

// WithAnchors sets the static anchor pair: the named point on the leader's
// rectangle that the named point on the follower's rectangle is pinned to.
func WithAnchors(leader, follower Alignment) FollowerOption {
	return func(c *followerConfig) {
		c.staticSet = true
		c.node.leaderAnchor = leader
		c.node.followerAnchor = follower
	}
}

// WithOffset sets a fixed pixel offset added after anchor resolution.
func WithOffset(p Point) FollowerOption {
	return func(c *followerConfig) {
		c.staticSet = true
		c.node.extraOffset = p
	}
}

// WithAligner selects dynamic anchor computation. Mutually exclusive with
// WithAnchors and WithOffset.
func WithAligner(a Aligner) FollowerOption {
	return func(c *followerConfig) {
		c.alignerSet = true
		c.node.aligner = a
	}
}

// WithBoundary clamps the resolved offset to a containment region.
func WithBoundary(b Boundary) FollowerOption {
	return func(c *followerConfig) {
		c.node.boundary = b
	}
}

// WithShowWhenUnlinked keeps the follower compositing at its last resolved
// offset while no leader is attached.
func WithShowWhenUnlinked(show bool) FollowerOption {
	return func(c *followerConfig) {
		c.node.showWhenUnlinked = show
	}
}

// WithRepaintWhenLeaderChanges subscribes the follower to the link's change
// notifications while attached, for content whose appearance depends on
// leader geometry. Followers that only need repositioning should leave this
// off; they recompute every pass regardless.
func WithRepaintWhenLeaderChanges(v bool) FollowerOption {
	return func(c *followerConfig) {
		c.node.repaintWhenLeaderChanges = v
	}
}

// WithSize sets the follower's content size, used for anchor resolution,
// boundary constraint, and hit testing.
func WithSize(s Size) FollowerOption {
	return func(c *followerConfig) {
		c.node.size = s
	}
}
