package anchor

var _ Node = (*LeaderNode)(nil)

// LeaderNode is a container whose composited position other nodes track
// through a Link. Attaching the node to a scene attaches it to its link;
// detaching reverses that. Each composition pass publishes the node's
// global offset, which followers read via the link. Attach and detach
// happen between passes, never during one.
type LeaderNode struct {
	ContainerNode
	link *Link

	lastOffset Point
}

// NewLeader creates a leader publishing into the given link.
func NewLeader(link *Link) *LeaderNode {
	assertf(link != nil, "leader requires a link")
	l := &LeaderNode{link: link}
	l.self = l
	return l
}

// Link returns the link this leader publishes into.
func (l *LeaderNode) Link() *Link {
	return l.link
}

// SetLink moves the leader to a different link, detaching from the old one
// first if the node is attached to a scene.
func (l *LeaderNode) SetLink(link *Link) {
	assertf(link != nil, "leader requires a link")
	if l.link == link {
		return
	}
	if l.owner != nil {
		l.link.detachLeader(l)
	}
	l.link = link
	if l.owner != nil {
		l.link.attachLeader(l)
	}
	l.markDirty()
}

// SetSize sets the leader's content size and publishes it to the link.
func (l *LeaderNode) SetSize(s Size) {
	l.ContainerNode.SetSize(s)
	if l.owner != nil {
		l.link.publishSize(s)
	}
}

// LastOffset returns the leader's global offset as of the pass it last
// composed in. Valid only after the leader has composed.
func (l *LeaderNode) LastOffset() Point {
	return l.lastOffset
}

// Compose publishes the leader's global offset, then composes children.
// The publish is ordered strictly before any follower of the same link
// composes; that ordering is a traversal-order contract of the host tree.
func (l *LeaderNode) Compose(ctx *ComposeContext) {
	prev := l.lastOffset
	l.recordCompose(ctx)
	l.lastOffset = l.lastGlobal
	if l.lastOffset != prev {
		l.link.notify()
	}
	l.composeChildren(ctx)
}

// setOwner attaches to or detaches from the link alongside the scene.
func (l *LeaderNode) setOwner(owner *Scene) {
	wasAttached := l.owner != nil
	l.ContainerNode.setOwner(owner)
	switch {
	case owner != nil && !wasAttached:
		l.link.attachLeader(l)
	case owner == nil && wasAttached:
		l.link.detachLeader(l)
	}
}
