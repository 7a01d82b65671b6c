package anchor

import "sync"

// NodeRef is a reference to a Node, set during tree construction and
// resolved later, e.g. by a NodeBoundary. Thread-safe.
type NodeRef struct {
	mu    sync.RWMutex
	value Node
}

// NewNodeRef creates a new empty NodeRef.
func NewNodeRef() *NodeRef {
	return &NodeRef{}
}

// Set stores the node in this ref.
func (r *NodeRef) Set(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = n
}

// Node returns the referenced node, or nil if not yet set.
func (r *NodeRef) Node() Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil node.
func (r *NodeRef) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value != nil
}
