package dsu

import "testing"

// TestFind_CompressesPath builds a chain by hand and checks every node on it
// points at the root after a single Find.
func TestFind_CompressesPath(t *testing.T) {
	d := New(0)
	for i := 0; i < 5; i++ {
		d.Add()
	}
	// 4 -> 3 -> 2 -> 1 -> 0
	for i := 1; i < 5; i++ {
		d.parent[i] = i - 1
	}

	root, err := d.Find(4)
	if err != nil {
		t.Fatalf("Find(4): %v", err)
	}
	if root != 0 {
		t.Fatalf("Find(4) = %d, want 0", root)
	}
	for i := 0; i < 5; i++ {
		if d.parent[i] != 0 {
			t.Errorf("parent[%d] = %d after compression, want 0", i, d.parent[i])
		}
	}
}

// TestUnion_ByRank verifies that the shallower tree goes under the deeper one
// and that only ties bump the rank.
func TestUnion_ByRank(t *testing.T) {
	d := New(0)
	for i := 0; i < 3; i++ {
		d.Add()
	}

	// tie: 0 becomes parent of 1, rank[0] == 1
	if err := d.Union(0, 1); err != nil {
		t.Fatal(err)
	}
	if d.parent[1] != 0 || d.rank[0] != 1 {
		t.Fatalf("after Union(0,1): parent[1]=%d rank[0]=%d, want 0 and 1", d.parent[1], d.rank[0])
	}

	// 2 has rank 0, so it hangs under 0 even though it is passed first
	if err := d.Union(2, 1); err != nil {
		t.Fatal(err)
	}
	if d.parent[2] != 0 {
		t.Errorf("parent[2] = %d, want 0", d.parent[2])
	}
	if d.rank[0] != 1 {
		t.Errorf("rank[0] = %d, want 1 (no tie)", d.rank[0])
	}
}
