// Package anchor positions one node of a composited tree ("a follower")
// relative to another ("a leader") that may live under a different parent
// at a different transform depth. The two are associated through a shared
// Link; every composition pass the follower locates the lowest common
// ancestor of the pair, folds the transform contributions along both
// chains, and anchors its subtree to the leader's position.
//
// All composition is synchronous, frame-driven, and single-threaded.
package anchor
