package anchor

import "testing"

func TestLink_LeaderAttachDetach(t *testing.T) {
	link := NewLink()
	if link.LeaderConnected() {
		t.Fatal("new link reports a connected leader")
	}

	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)

	leader := NewLeader(link)
	leader.SetSize(Size{Width: 40, Height: 20})
	root.AddChild(leader)

	if link.Leader() != leader {
		t.Errorf("link.Leader() = %v, want the attached leader", link.Leader())
	}
	if size, ok := link.LeaderSize(); !ok || size != (Size{Width: 40, Height: 20}) {
		t.Errorf("link.LeaderSize() = %+v, %v, want {40 20}, true", size, ok)
	}

	root.RemoveChild(leader)
	if link.LeaderConnected() {
		t.Error("link still connected after leader detach")
	}
	// Last published size survives the unlink for cached-offset fallbacks.
	if _, ok := link.LeaderSize(); !ok {
		t.Error("link.LeaderSize() lost on detach, want retained")
	}
}

func TestLink_LeaderHandoffAcrossRebuild(t *testing.T) {
	// A different leader may attach to the same link after the first
	// detaches, as happens across rebuilds.
	link := NewLink()
	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)

	first := NewLeader(link)
	root.AddChild(first)
	root.RemoveChild(first)

	second := NewLeader(link)
	root.AddChild(second)
	if link.Leader() != second {
		t.Errorf("link.Leader() = %v, want the second leader", link.Leader())
	}
}

func TestLink_SecondLeaderPanics(t *testing.T) {
	link := NewLink()
	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)
	root.AddChild(NewLeader(link))

	defer func() {
		if recover() == nil {
			t.Error("attaching a second leader did not panic with DebugChecks on")
		}
	}()
	root.AddChild(NewLeader(link))
}

func TestFollowerHandle_Dispose(t *testing.T) {
	link := NewLink()
	h1 := link.RegisterFollower()
	h2 := link.RegisterFollower()
	if got := link.FollowerCount(); got != 2 {
		t.Fatalf("FollowerCount() = %d, want 2", got)
	}

	h1.Dispose()
	if got := link.FollowerCount(); got != 1 {
		t.Errorf("FollowerCount() after dispose = %d, want 1", got)
	}

	// Idempotent: disposing again changes nothing.
	h1.Dispose()
	if got := link.FollowerCount(); got != 1 {
		t.Errorf("FollowerCount() after double dispose = %d, want 1", got)
	}
	if h1.Leader() != nil {
		t.Error("disposed handle still resolves a leader")
	}
	if h2.Link() != link {
		t.Error("disposing one handle affected another")
	}
}

func TestFollowerHandle_ReadsCurrentLeader(t *testing.T) {
	// The handle's leader accessor reflects the link's current leader, not
	// a snapshot taken at registration time.
	link := NewLink()
	h := link.RegisterFollower()
	if h.Leader() != nil {
		t.Fatal("handle resolves a leader before any attached")
	}

	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)
	leader := NewLeader(link)
	root.AddChild(leader)

	if h.Leader() != leader {
		t.Errorf("handle.Leader() = %v, want the newly attached leader", h.Leader())
	}
}

func TestLink_SubscribeNotifyUnsubscribe(t *testing.T) {
	link := NewLink()
	var calls int
	unsub := link.Subscribe(func() { calls++ })

	s := NewScene()
	root := NewContainer()
	s.SetRoot(root)
	leader := NewLeader(link)
	root.AddChild(leader) // attach notifies

	if calls == 0 {
		t.Fatal("listener not called on leader attach")
	}

	before := calls
	leader.SetSize(Size{Width: 10, Height: 10})
	if calls != before+1 {
		t.Errorf("listener calls after size publish = %d, want %d", calls, before+1)
	}

	unsub()
	unsub() // idempotent
	before = calls
	root.RemoveChild(leader)
	if calls != before {
		t.Errorf("listener called after unsubscribe (%d -> %d)", before, calls)
	}
}
