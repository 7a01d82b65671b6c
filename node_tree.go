package anchor

// --- Tree structure API ---

// AddChild appends children to this node, adopting each: parent pointer,
// depth, and scene ownership propagate recursively.
func (c *ContainerNode) AddChild(children ...Node) {
	for _, child := range children {
		assertf(child.Parent() == nil, "node already has a parent; remove it first")
		child.base().parent = c.self
		redepth(child, c.depth+1)
		child.setOwner(c.owner)
		c.children = append(c.children, child)
	}
	c.markDirty()
}

// RemoveChild removes a child from this node.
// Returns true if the child was found and removed.
func (c *ContainerNode) RemoveChild(child Node) bool {
	for i, ch := range c.children {
		if ch == child {
			// Remove by swapping with last element and truncating
			c.children[i] = c.children[len(c.children)-1]
			c.children = c.children[:len(c.children)-1]
			child.base().parent = nil
			child.setOwner(nil)
			redepth(child, 0)
			c.markDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child from this node.
func (c *ContainerNode) RemoveAllChildren() {
	for _, child := range c.children {
		child.base().parent = nil
		child.setOwner(nil)
		redepth(child, 0)
	}
	c.children = nil
	c.markDirty()
}

// Children returns the child nodes.
func (c *ContainerNode) Children() []Node {
	return c.children
}

// setOwner propagates scene ownership through the subtree. Node types with
// attach/detach side effects shadow this and call it.
func (c *ContainerNode) setOwner(owner *Scene) {
	c.owner = owner
	for _, child := range c.children {
		child.setOwner(owner)
	}
}

// redepth assigns depths down the subtree: each node is one deeper than its
// parent. The ancestor search relies on these values.
func redepth(n Node, depth int) {
	n.base().depth = depth
	for _, child := range n.Children() {
		redepth(child, depth+1)
	}
}
