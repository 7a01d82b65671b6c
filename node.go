package anchor

var (
	_ Node = (*ContainerNode)(nil)
	_ Node = (*TransformNode)(nil)
)

// Node is a transform-bearing node in the composited tree. Concrete node
// types embed ContainerNode, which supplies the tree plumbing; they shadow
// the methods whose behavior they change.
type Node interface {
	// Parent returns the parent node, or nil if this is a root.
	Parent() Node

	// Children returns the child nodes.
	Children() []Node

	// Depth returns the node's distance from its root. Maintained by the
	// tree structure on adoption; the ancestor search depends on it.
	Depth() int

	// Owner returns the Scene this node is attached to, or nil.
	Owner() *Scene

	// ApplyTransform folds this node's transform contribution for the given
	// child into m. Child may be nil for nodes whose contribution does not
	// depend on which child is being positioned.
	ApplyTransform(child Node, m *Matrix)

	// Compose adds this node's subtree to the current composition pass.
	Compose(ctx *ComposeContext)

	// HitTest returns the deepest node containing p, expressed in this
	// node's parent space, or nil.
	HitTest(p Point) Node

	base() *baseNode
	setOwner(owner *Scene)
}

// baseNode carries the tree identity shared by all node types.
type baseNode struct {
	// self is the outermost node identity, set by constructors. Parent
	// pointers and transform chains must reference it, not the embedded
	// struct, so that interface comparisons see one node.
	self   Node
	parent Node
	owner  *Scene
	depth  int
}

func (b *baseNode) base() *baseNode { return b }

// Parent returns the parent node, or nil if this is a root.
func (b *baseNode) Parent() Node { return b.parent }

// Depth returns the node's distance from its root.
func (b *baseNode) Depth() int { return b.depth }

// Owner returns the Scene this node is attached to, or nil.
func (b *baseNode) Owner() *Scene { return b.owner }

// ContainerNode is a node with children, an offset translating them, and an
// optional size used for hit testing and boundary queries.
type ContainerNode struct {
	baseNode
	children []Node
	offset   Point
	size     Size

	// Composition pass bookkeeping.
	lastGlobal    Point
	composedFrame uint64
}

// NewContainer creates an empty container node.
func NewContainer() *ContainerNode {
	c := &ContainerNode{}
	c.self = c
	return c
}

// Offset returns the node's translation relative to its parent.
func (c *ContainerNode) Offset() Point { return c.offset }

// SetOffset sets the node's translation relative to its parent.
func (c *ContainerNode) SetOffset(p Point) {
	if c.offset == p {
		return
	}
	c.offset = p
	c.markDirty()
}

// Size returns the node's content size. A zero size means unbounded.
func (c *ContainerNode) Size() Size { return c.size }

// SetSize sets the node's content size.
func (c *ContainerNode) SetSize(s Size) {
	if c.size == s {
		return
	}
	c.size = s
	c.markDirty()
}

// ApplyTransform folds the container's translation into m.
func (c *ContainerNode) ApplyTransform(_ Node, m *Matrix) {
	*m = m.Translated(c.offset.X, c.offset.Y)
}

// Compose records this node and composes its children.
func (c *ContainerNode) Compose(ctx *ComposeContext) {
	c.recordCompose(ctx)
	c.composeChildren(ctx)
}

// recordCompose adds the node to the frame and caches its global origin.
func (c *ContainerNode) recordCompose(ctx *ComposeContext) {
	c.lastGlobal = ctx.transform.Apply(c.offset)
	c.composedFrame = ctx.frame
	ctx.record(c.self, ctx.transform)
}

// composeChildren composes each child under this node's contribution.
func (c *ContainerNode) composeChildren(ctx *ComposeContext) {
	saved := ctx.transform
	for _, child := range c.children {
		m := saved
		c.self.ApplyTransform(child, &m)
		ctx.transform = m
		child.Compose(ctx)
	}
	ctx.transform = saved
}

// HitTest returns the deepest node containing p. Children are checked in
// reverse order since the last child composes on top. A zero-size container
// never reports itself, only its children.
func (c *ContainerNode) HitTest(p Point) Node {
	local := p.Sub(c.offset)
	if !c.size.IsEmpty() && !RectFrom(Point{}, c.size).Contains(local) {
		return nil
	}
	if hit := c.hitTestChildren(local); hit != nil {
		return hit
	}
	if c.size.IsEmpty() {
		return nil
	}
	return c.self
}

// hitTestChildren checks children in reverse order against a point in this
// node's content space.
func (c *ContainerNode) hitTestChildren(local Point) Node {
	for i := len(c.children) - 1; i >= 0; i-- {
		if hit := c.children[i].HitTest(local); hit != nil {
			return hit
		}
	}
	return nil
}

// GlobalRect returns the node's rectangle in scene coordinates as of the
// last composition pass it participated in.
func (c *ContainerNode) GlobalRect() Rect {
	return RectFrom(c.lastGlobal, c.size)
}

// markDirty requests a new composition pass from the owning scene, if any.
func (c *ContainerNode) markDirty() {
	if c.owner != nil {
		c.owner.MarkDirty()
	}
}

// TransformNode is a container that applies an arbitrary matrix to its
// children, after its own translation.
type TransformNode struct {
	ContainerNode
	transform Matrix
}

// NewTransform creates a node applying the given transform to its children.
func NewTransform(m Matrix) *TransformNode {
	t := &TransformNode{transform: m}
	t.self = t
	return t
}

// Transform returns the node's local matrix.
func (t *TransformNode) Transform() Matrix { return t.transform }

// SetTransform replaces the node's local matrix.
func (t *TransformNode) SetTransform(m Matrix) {
	if t.transform == m {
		return
	}
	t.transform = m
	t.markDirty()
}

// ApplyTransform folds the translation and the local matrix into m.
func (t *TransformNode) ApplyTransform(_ Node, m *Matrix) {
	*m = m.Translated(t.offset.X, t.offset.Y).Mul(t.transform)
}

// HitTest inverse-transforms the point before delegating to children, so
// children are tested in the space they composed in. A degenerate transform
// reports no hit.
func (t *TransformNode) HitTest(p Point) Node {
	inv, err := t.transform.Invert()
	if err != nil {
		return nil
	}
	local := inv.Apply(p.Sub(t.offset))
	if !t.size.IsEmpty() && !RectFrom(Point{}, t.size).Contains(local) {
		return nil
	}
	if hit := t.hitTestChildren(local); hit != nil {
		return hit
	}
	if t.size.IsEmpty() {
		return nil
	}
	return t.self
}
