package anchor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildBoundedScene composes root → leader(leaderAt) plus a follower of the
// given size constrained by b.
func buildBoundedScene(t *testing.T, leaderAt Point, followerSize Size, b Boundary) (*Scene, *FollowerNode) {
	t.Helper()
	link := NewLink()
	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)

	leader := NewLeader(link)
	leader.SetOffset(leaderAt)
	root.AddChild(leader)

	follower := NewFollower(link, WithSize(followerSize), WithBoundary(b))
	root.AddChild(follower)
	return s, follower
}

func TestRegionBoundary_Constrain(t *testing.T) {
	region := RegionBoundary{Region: Size{Width: 800, Height: 600}}

	type tc struct {
		leaderAt     Point
		followerSize Size
		expected     Point
	}

	tests := map[string]tc{
		"fits untouched": {
			leaderAt:     Point{X: 100, Y: 100},
			followerSize: Size{Width: 20, Height: 20},
			expected:     Point{},
		},
		"clamps at bottom right": {
			leaderAt:     Point{X: 790, Y: 590},
			followerSize: Size{Width: 20, Height: 20},
			expected:     Point{X: -10, Y: -10},
		},
		"clamps at top left": {
			leaderAt:     Point{X: -5, Y: -7},
			followerSize: Size{Width: 20, Height: 20},
			expected:     Point{X: 5, Y: 7},
		},
		"oversize axis pins the leading edge": {
			// Too tall for the region: the top edge aligns to the region's
			// top while the horizontal axis still clamps normally.
			leaderAt:     Point{X: 790, Y: 590},
			followerSize: Size{Width: 20, Height: 700},
			expected:     Point{X: -10, Y: -590},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, follower := buildBoundedScene(t, tt.leaderAt, tt.followerSize, region)
			s.Compose()

			got, ok := follower.PreviousResolvedOffset()
			require.True(t, ok, "no resolved offset after a linked pass")
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestRegionBoundary_ConstrainIsIdempotent(t *testing.T) {
	region := RegionBoundary{Region: Size{Width: 800, Height: 600}}
	size := Size{Width: 20, Height: 20}
	s, follower := buildBoundedScene(t, Point{X: 790, Y: 590}, size, region)
	s.Compose()

	once, ok := follower.PreviousResolvedOffset()
	require.True(t, ok)
	twice := region.Constrain(follower.Link(), size, once)
	require.Equal(t, once, twice, "constraining an already-constrained offset moved it")
}

func TestRegionBoundary_ConstrainWithoutLeader(t *testing.T) {
	region := RegionBoundary{Region: Size{Width: 800, Height: 600}}
	desired := Point{X: 900, Y: 900}
	if got := region.Constrain(NewLink(), Size{Width: 20, Height: 20}, desired); got != desired {
		t.Errorf("Constrain without a leader = %+v, want desired unchanged", got)
	}
}

func TestRegionBoundary_Contains(t *testing.T) {
	region := RegionBoundary{Region: Size{Width: 800, Height: 600}}
	if !region.Contains(Point{X: 10, Y: 10}) {
		t.Error("Contains(inside) = false")
	}
	if region.Contains(Point{X: 800, Y: 10}) {
		t.Error("Contains(right edge) = true, want false for a half-open region")
	}
}

func TestNodeBoundary_ConstrainToNodeRect(t *testing.T) {
	link := NewLink()
	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)

	// The bounds node composes before the follower, so its global rectangle
	// is fresh within the same pass.
	bounds := NewContainer()
	bounds.SetOffset(Point{X: 50, Y: 50})
	bounds.SetSize(Size{Width: 200, Height: 100})
	root.AddChild(bounds)

	leader := NewLeader(link)
	leader.SetOffset(Point{X: 240, Y: 140})
	root.AddChild(leader)

	ref := NewNodeRef()
	ref.Set(bounds)
	follower := NewFollower(link,
		WithSize(Size{Width: 20, Height: 20}),
		WithBoundary(NodeBoundary{Ref: ref}),
	)
	root.AddChild(follower)

	s.Compose()

	got, ok := follower.PreviousResolvedOffset()
	require.True(t, ok)
	require.Equal(t, Point{X: -10, Y: -10}, got)
}

func TestNodeBoundary_UnresolvableIsPassThrough(t *testing.T) {
	desired := Point{X: 7, Y: 9}
	size := Size{Width: 20, Height: 20}

	link := NewLink()
	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)
	leader := NewLeader(link)
	root.AddChild(leader)
	s.Compose()

	type tc struct {
		boundary NodeBoundary
	}

	detached := NewContainer()
	detached.SetSize(Size{Width: 100, Height: 100})
	detachedRef := NewNodeRef()
	detachedRef.Set(detached)

	sizeless := NewContainer()
	root.AddChild(sizeless)
	sizelessRef := NewNodeRef()
	sizelessRef.Set(sizeless)

	tests := map[string]tc{
		"nil ref":           {boundary: NodeBoundary{}},
		"empty ref":         {boundary: NodeBoundary{Ref: NewNodeRef()}},
		"detached node":     {boundary: NodeBoundary{Ref: detachedRef}},
		"node with no size": {boundary: NodeBoundary{Ref: sizelessRef}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.boundary.Constrain(link, size, desired); got != desired {
				t.Errorf("Constrain = %+v, want desired unchanged", got)
			}
			if tt.boundary.Contains(Point{X: 1, Y: 1}) {
				t.Error("Contains = true for an unresolvable boundary")
			}
		})
	}
}
