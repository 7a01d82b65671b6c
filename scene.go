package anchor

import (
	"sync/atomic"

	"github.com/grindlemire/go-anchor/pkg/debug"
)

// Scene owns a node tree and drives composition passes over it. All
// composition is synchronous and single-threaded; only the dirty flag is
// safe to touch from other goroutines.
type Scene struct {
	root  Node
	frame uint64
	dirty atomic.Bool

	// One-shot callbacks run after the current pass completes.
	postFrame []func()

	lastFrame *Frame
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// SetRoot replaces the scene's root node, detaching any previous root.
func (s *Scene) SetRoot(root Node) {
	if s.root != nil {
		s.root.setOwner(nil)
	}
	s.root = root
	if root != nil {
		assertf(root.Parent() == nil, "scene root must not have a parent")
		redepth(root, 0)
		root.setOwner(s)
	}
	s.MarkDirty()
}

// Root returns the scene's root node, or nil.
func (s *Scene) Root() Node {
	return s.root
}

// MarkDirty signals that the scene needs a new composition pass.
func (s *Scene) MarkDirty() {
	s.dirty.Store(true)
}

// ConsumeDirty returns true if the scene was dirty and clears the flag.
// Called by the host loop to decide whether to compose.
func (s *Scene) ConsumeDirty() bool {
	return s.dirty.Swap(false)
}

// FrameNumber returns the number of the most recent composition pass.
func (s *Scene) FrameNumber() uint64 {
	return s.frame
}

// AddPostFrameCallback schedules fn to run once, after the next composition
// pass completes. Callbacks never run during a pass.
func (s *Scene) AddPostFrameCallback(fn func()) {
	s.postFrame = append(s.postFrame, fn)
}

// Compose runs one composition pass over the tree and returns the resulting
// frame. Follower transforms are recomputed unconditionally on every pass:
// leader-side changes are not observable through ordinary change detection,
// so no cross-pass caching is attempted.
func (s *Scene) Compose() *Frame {
	s.frame++
	ctx := &ComposeContext{
		scene:     s,
		frame:     s.frame,
		transform: Identity(),
		out:       &Frame{Number: s.frame},
	}
	if s.root != nil {
		s.root.Compose(ctx)
	}
	s.lastFrame = ctx.out

	// Drain one-shot callbacks. Callbacks may schedule new ones; those run
	// after the next pass, not this one.
	pending := s.postFrame
	s.postFrame = nil
	for _, fn := range pending {
		fn()
	}
	debug.Logf("scene: composed frame %d (%d nodes)", s.frame, len(ctx.out.Items))
	return ctx.out
}

// LastFrame returns the most recently composed frame, or nil.
func (s *Scene) LastFrame() *Frame {
	return s.lastFrame
}

// HitTest returns the deepest node containing the point, or nil.
func (s *Scene) HitTest(p Point) Node {
	if s.root == nil {
		return nil
	}
	return s.root.HitTest(p)
}

// ComposeContext carries the state of one composition pass down the tree.
type ComposeContext struct {
	scene     *Scene
	frame     uint64
	transform Matrix
	out       *Frame
}

// Transform returns the accumulated root-to-current transform.
func (ctx *ComposeContext) Transform() Matrix {
	return ctx.transform
}

// record appends a composited node and its accumulated transform to the
// frame being built.
func (ctx *ComposeContext) record(n Node, m Matrix) {
	ctx.out.Items = append(ctx.out.Items, FrameItem{Node: n, Transform: m})
}

// Frame is the output of one composition pass: every composited node in
// traversal order with its accumulated transform. Subtrees suppressed by an
// unlinked or degenerate follower do not appear.
type Frame struct {
	Number uint64
	Items  []FrameItem
}

// FrameItem records one composited node.
type FrameItem struct {
	Node      Node
	Transform Matrix
}

// Contains reports whether the node was composited this frame.
func (f *Frame) Contains(n Node) bool {
	_, ok := f.TransformOf(n)
	return ok
}

// TransformOf returns the accumulated transform the node composed with.
func (f *Frame) TransformOf(n Node) (Matrix, bool) {
	for _, item := range f.Items {
		if item.Node == n {
			return item.Transform, true
		}
	}
	return Matrix{}, false
}
