package anchor

import (
	"fmt"

	"github.com/google/uuid"
)

// Link associates one leader with any number of followers. It is an
// identity-compared handle: it never owns the leader, only records which
// leader is currently attached and its last published geometry. A Link
// outlives individual attach cycles; a leader may detach and a different
// one may attach later, e.g. across rebuilds.
type Link struct {
	id         uuid.UUID
	leader     *LeaderNode
	leaderSize *Size

	followers []*FollowerHandle

	// Change listeners, id-keyed so Unsubscribe handles stay valid across
	// other removals. Opt-in: most followers recompute every pass and never
	// subscribe.
	listeners  []linkListener
	listenerID uint64
}

type linkListener struct {
	id uint64
	fn func()
}

// Unsubscribe removes a change listener. Safe to call more than once.
type Unsubscribe func()

// NewLink creates an unconnected link.
func NewLink() *Link {
	return &Link{id: uuid.New()}
}

// Leader returns the currently attached leader node, or nil.
func (l *Link) Leader() *LeaderNode {
	return l.leader
}

// LeaderConnected reports whether a leader is currently attached.
func (l *Link) LeaderConnected() bool {
	return l.leader != nil
}

// LeaderSize returns the last size published by the leader, if any.
func (l *Link) LeaderSize() (Size, bool) {
	if l.leaderSize == nil {
		return Size{}, false
	}
	return *l.leaderSize, true
}

// RegisterFollower registers the caller as a follower of this link. The
// returned handle reads the link's current leader, not a snapshot, and must
// be disposed to unregister. Disposal has no effect on the leader or on
// other followers.
func (l *Link) RegisterFollower() *FollowerHandle {
	h := &FollowerHandle{link: l}
	l.followers = append(l.followers, h)
	return h
}

// FollowerCount returns the number of live follower registrations.
func (l *Link) FollowerCount() int {
	return len(l.followers)
}

// Subscribe registers fn to be called whenever something about the leader
// changes: attach, detach, size, or published offset. The returned handle
// removes the listener and is idempotent.
func (l *Link) Subscribe(fn func()) Unsubscribe {
	l.listenerID++
	id := l.listenerID
	l.listeners = append(l.listeners, linkListener{id: id, fn: fn})
	return func() {
		for i, lis := range l.listeners {
			if lis.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify invokes every change listener.
func (l *Link) notify() {
	for _, lis := range l.listeners {
		lis.fn()
	}
}

// attachLeader records n as the active leader. At most one leader may be
// attached at any instant.
func (l *Link) attachLeader(n *LeaderNode) {
	assertf(l.leader == nil || l.leader == n, "link %s already has a leader", l)
	if l.leader == n {
		return
	}
	l.leader = n
	if s := n.Size(); !s.IsEmpty() {
		l.leaderSize = &s
	}
	l.notify()
}

// detachLeader clears the active leader if it is n. The last published size
// is kept so followers can keep resolving against it while unlinked.
func (l *Link) detachLeader(n *LeaderNode) {
	if l.leader != n {
		return
	}
	l.leader = nil
	l.notify()
}

// publishSize records the leader's size and notifies listeners on change.
func (l *Link) publishSize(s Size) {
	if l.leaderSize != nil && *l.leaderSize == s {
		return
	}
	l.leaderSize = &s
	l.notify()
}

// String returns a short diagnostic description.
func (l *Link) String() string {
	state := "unlinked"
	if l.leader != nil {
		state = "linked"
	}
	return fmt.Sprintf("Link(%s, %s, %d followers)", l.id.String()[:8], state, len(l.followers))
}

// FollowerHandle is a scoped follower registration obtained from
// Link.RegisterFollower. It decouples follower lifetime from leader
// lifetime: the handle stays valid whether or not a leader is attached.
type FollowerHandle struct {
	link     *Link
	disposed bool
}

// Leader returns the link's current leader, or nil. Always live, never a
// snapshot; returns nil after disposal.
func (h *FollowerHandle) Leader() *LeaderNode {
	if h.disposed {
		return nil
	}
	return h.link.Leader()
}

// Link returns the link this handle registered against, or nil after
// disposal.
func (h *FollowerHandle) Link() *Link {
	if h.disposed {
		return nil
	}
	return h.link
}

// Dispose removes the registration. Idempotent and immediate; calling it
// again, or using the handle afterwards, is a no-op.
func (h *FollowerHandle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	for i, reg := range h.link.followers {
		if reg == h {
			// Remove by swapping with last element and truncating
			h.link.followers[i] = h.link.followers[len(h.link.followers)-1]
			h.link.followers = h.link.followers[:len(h.link.followers)-1]
			break
		}
	}
}
