package fgk

import "testing"

// chain builds an arena of k parentless nodes linked 0 <-> 1 <-> ... <-> k-1.
func chain(k int) arena {
	a := make(arena, 0, k)
	for i := range k {
		a.alloc(node{
			weight: uint64(i),
			parent: nilNode, left: nilNode, right: nilNode,
			prev: int32(i - 1), next: int32(i + 1),
			sym: noSymbol,
		})
	}
	a[k-1].next = nilNode
	return a
}

func order(a arena, head int32) []int32 {
	var out []int32
	for cur := head; cur != nilNode; cur = a[cur].next {
		out = append(out, cur)
		if len(out) > len(a) {
			break
		}
	}
	return out
}

func equalOrder(got []int32, want ...int32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func checkBackLinks(t *testing.T, a arena, head int32) {
	t.Helper()
	prev := int32(nilNode)
	for cur := head; cur != nilNode; cur = a[cur].next {
		if a[cur].prev != prev {
			t.Fatalf("node %d: prev=%d want %d", cur, a[cur].prev, prev)
		}
		prev = cur
	}
}

func TestRelinkGeneral(t *testing.T) {
	a := chain(5)
	a.relinkGeneral(1, 3)
	if got := order(a, 0); !equalOrder(got, 0, 3, 2, 1, 4) {
		t.Fatalf("order=%v", got)
	}
	checkBackLinks(t, a, 0)

	// ends of the list
	a = chain(4)
	a.relinkGeneral(0, 3)
	if got := order(a, 3); !equalOrder(got, 3, 1, 2, 0) {
		t.Fatalf("order=%v", got)
	}
	checkBackLinks(t, a, 3)
}

func TestRelinkAdjacent(t *testing.T) {
	a := chain(4)
	a.relinkAdjacent(1, 2)
	if got := order(a, 0); !equalOrder(got, 0, 2, 1, 3) {
		t.Fatalf("order=%v", got)
	}
	checkBackLinks(t, a, 0)

	a = chain(2)
	a.relinkAdjacent(0, 1)
	if got := order(a, 1); !equalOrder(got, 1, 0) {
		t.Fatalf("order=%v", got)
	}
	if a[1].prev != nilNode || a[0].next != nilNode {
		t.Fatalf("ends not cleared: %+v %+v", a[1], a[0])
	}
}

// smallTree returns the arena of
//
//	    4
//	   / \
//	  2   3
//	 / \
//	0   1
//
// with order list 0, 1, 2, 3, 4.
func smallTree() arena {
	a := chain(5)
	a[4].left, a[4].right = 2, 3
	a[2].left, a[2].right = 0, 1
	a[0].parent, a[1].parent = 2, 2
	a[2].parent, a[3].parent = 4, 4
	return a
}

func TestExchangeSiblings(t *testing.T) {
	a := smallTree()
	a.exchange(0, 1)
	if a[2].left != 1 || a[2].right != 0 {
		t.Fatalf("children of 2: %d %d", a[2].left, a[2].right)
	}
	if a[0].parent != 2 || a[1].parent != 2 {
		t.Fatalf("parents changed")
	}
	if got := order(a, 1); !equalOrder(got, 1, 0, 2, 3, 4) {
		t.Fatalf("order=%v", got)
	}
	checkBackLinks(t, a, 1)
}

func TestExchangeAcrossParents(t *testing.T) {
	a := smallTree()
	a.exchange(1, 3)
	if a[2].right != 3 || a[4].right != 1 {
		t.Fatalf("slots not swapped: 2.right=%d 4.right=%d", a[2].right, a[4].right)
	}
	if a[3].parent != 2 || a[1].parent != 4 {
		t.Fatalf("parents not swapped: %d %d", a[3].parent, a[1].parent)
	}
	if got := order(a, 0); !equalOrder(got, 0, 3, 2, 1, 4) {
		t.Fatalf("order=%v", got)
	}
	checkBackLinks(t, a, 0)
	// weights stay with their nodes
	if a[1].weight != 1 || a[3].weight != 3 {
		t.Fatalf("weights moved")
	}
}

func TestLeader(t *testing.T) {
	a := chain(6)
	for i, w := range []uint64{0, 1, 1, 1, 2, 3} {
		a[i].weight = w
	}
	cases := []struct{ q, want int32 }{
		{0, 0},
		{1, 3},
		{2, 3},
		{3, 3},
		{4, 4},
		{5, 5},
	}
	for _, c := range cases {
		if got := a.leader(c.q); got != c.want {
			t.Fatalf("leader(%d)=%d want %d", c.q, got, c.want)
		}
	}
}
