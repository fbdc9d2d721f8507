package puzzle

import (
	"reflect"
	"testing"
)

func TestStandardPeersInvariants(t *testing.T) {
	pt, err := StandardPeers()
	if err != nil {
		t.Fatalf("StandardPeers() errored: %v", err)
	}
	for i := 0; i < GridSize; i++ {
		ps, err := pt.PeersOf(i)
		if err != nil {
			t.Fatalf("PeersOf(%d) errored: %v", i, err)
		}
		if len(ps) != PeerCount {
			t.Errorf("PeersOf(%d) has %d entries, want %d", i, len(ps), PeerCount)
		}
		prev := -1
		for _, p := range ps {
			if p <= prev {
				t.Errorf("PeersOf(%d) not ascending at %d", i, p)
			}
			prev = p
			if p == i {
				t.Errorf("PeersOf(%d) contains itself", i)
			}
			back, err := pt.PeersOf(p)
			if err != nil {
				t.Fatalf("PeersOf(%d) errored: %v", p, err)
			}
			if !contains(back, i) {
				t.Errorf("peer relation asymmetric: %d lists %d, but not back", i, p)
			}
		}
	}
}

func TestStandardPeersKnownEntries(t *testing.T) {
	pt, err := StandardPeers()
	if err != nil {
		t.Fatalf("StandardPeers() errored: %v", err)
	}
	// the full row for the top-left corner is easy to derive by hand
	corner := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 19, 20, 27, 36, 45, 54, 63, 72}
	ps, _ := pt.PeersOf(0)
	if !reflect.DeepEqual(ps, corner) {
		t.Errorf("PeersOf(0) = %v, want %v", ps, corner)
	}
	// spot values carried over from the shipped constraint table
	spots := []struct{ index, position, peer int }{
		{0, 0, 1},
		{2, 3, 4},
		{5, 7, 8},
		{19, 11, 24},
	}
	for _, s := range spots {
		ps, _ := pt.PeersOf(s.index)
		if ps[s.position] != s.peer {
			t.Errorf("PeersOf(%d)[%d] = %d, want %d", s.index, s.position, ps[s.position], s.peer)
		}
	}
}

func TestPeersOfRange(t *testing.T) {
	pt, err := StandardPeers()
	if err != nil {
		t.Fatalf("StandardPeers() errored: %v", err)
	}
	for _, idx := range []int{-1, GridSize, GridSize + 40} {
		ps, err := pt.PeersOf(idx)
		if err == nil {
			t.Fatalf("PeersOf(%d) = %v, want range error", idx, ps)
		}
		e, ok := err.(Error)
		if !ok || e.Scope != ArgumentScope || e.Attribute != IndexAttribute {
			t.Errorf("PeersOf(%d) error = %#v, want ArgumentScope/IndexAttribute", idx, err)
		}
	}
}

func TestValidateCatchesCorruption(t *testing.T) {
	// short row
	pt := computePeerTable()
	pt.peers[17] = pt.peers[17][:PeerCount-1]
	if err := pt.validate(); err == nil {
		t.Errorf("validate missed a short peer row")
	} else if err.(Error).Condition != PeerCountCondition {
		t.Errorf("short row error = %v, want PeerCountCondition", err)
	}

	// out-of-order row
	pt = computePeerTable()
	pt.peers[3][0], pt.peers[3][1] = pt.peers[3][1], pt.peers[3][0]
	if err := pt.validate(); err == nil {
		t.Errorf("validate missed an unordered peer row")
	} else if err.(Error).Condition != UnorderedPeersCondition {
		t.Errorf("unordered row error = %v, want UnorderedPeersCondition", err)
	}

	// asymmetric entry: 73 shares nothing with the top-left corner
	pt = computePeerTable()
	pt.peers[0][PeerCount-1] = 73
	if err := pt.validate(); err == nil {
		t.Errorf("validate missed an asymmetric entry")
	} else if err.(Error).Condition != AsymmetryCondition {
		t.Errorf("asymmetric entry error = %v, want AsymmetryCondition", err)
	}
}
