package anchor

// AlignResult is the anchor pair and extra offset produced by an Aligner.
// Pure value: produced fresh on each offset calculation.
type AlignResult struct {
	// LeaderAnchor is the anchor on the leader's rectangle. If the leader's
	// size is unknown it must be TopLeft; no other anchor can be resolved
	// without a size.
	LeaderAnchor Alignment

	// FollowerAnchor is the anchor on the follower's rectangle.
	FollowerAnchor Alignment

	// Offset is an extra pixel offset applied after anchor resolution.
	Offset Point
}

// Aligner computes a leader/follower anchor pair dynamically, as an
// alternative to statically configured anchors. leaderRect is the leader's
// global rectangle; its size is zero when the leader has not published one.
type Aligner interface {
	Align(leaderRect Rect, followerSize Size) AlignResult
}

// AlignerFunc adapts a function to the Aligner interface.
type AlignerFunc func(leaderRect Rect, followerSize Size) AlignResult

// Align calls the function.
func (f AlignerFunc) Align(leaderRect Rect, followerSize Size) AlignResult {
	return f(leaderRect, followerSize)
}
