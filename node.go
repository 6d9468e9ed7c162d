package fgk

// node is one element of the code tree and of the order list.
//
// The order list links every node by non-decreasing weight: prev points
// toward lighter nodes and ends at the placeholder, next points toward
// heavier nodes and ends at the root. The two children of an internal node
// are always neighbours in that list, and every ancestor comes after its
// descendants.
type node struct {
	weight              uint64
	parent, left, right int32
	prev, next          int32
	sym                 int16 // noSymbol unless the node is a bound leaf
}

func (n *node) isLeaf() bool { return n.left == nilNode }

// arena owns all nodes; links between them are indices into the slice.
type arena []node

func (a *arena) alloc(n node) int32 {
	*a = append(*a, n)
	return int32(len(*a) - 1)
}

// replaceChild points the child slot of p that holds old at repl.
func (a arena) replaceChild(p, old, repl int32) {
	if a[p].left == old {
		a[p].left = repl
	} else {
		a[p].right = repl
	}
}

// leader returns the last node in the order list that has q's weight.
func (a arena) leader(q int32) int32 {
	w := a[q].weight
	l := q
	for next := a[q].next; next != nilNode && a[next].weight == w; next = a[next].next {
		l = next
	}
	return l
}

// swapSlots exchanges the tree positions of x and y. Both must have a parent
// and neither may be an ancestor of the other. Children move with their node.
func (a arena) swapSlots(x, y int32) {
	px, py := a[x].parent, a[y].parent
	if px == py {
		a[px].left, a[px].right = a[px].right, a[px].left
		return
	}
	a.replaceChild(px, x, y)
	a.replaceChild(py, y, x)
	a[x].parent, a[y].parent = py, px
}

// relinkGeneral exchanges the order-list positions of x and y, which must not
// be neighbours.
func (a arena) relinkGeneral(x, y int32) {
	xp, xn := a[x].prev, a[x].next
	yp, yn := a[y].prev, a[y].next

	a[x].prev, a[x].next = yp, yn
	a[y].prev, a[y].next = xp, xn

	if xp != nilNode {
		a[xp].next = y
	}
	if xn != nilNode {
		a[xn].prev = y
	}
	if yp != nilNode {
		a[yp].next = x
	}
	if yn != nilNode {
		a[yn].prev = x
	}
}

// relinkAdjacent exchanges the order-list positions of x and y where y
// directly follows x.
func (a arena) relinkAdjacent(x, y int32) {
	before, after := a[x].prev, a[y].next

	a[y].prev, a[y].next = before, x
	a[x].prev, a[x].next = y, after

	if before != nilNode {
		a[before].next = y
	}
	if after != nilNode {
		a[after].prev = x
	}
}

// exchange swaps x and y in both the tree and the order list. Each keeps its
// weight, symbol and children.
func (a arena) exchange(x, y int32) {
	a.swapSlots(x, y)
	switch {
	case a[x].next == y:
		a.relinkAdjacent(x, y)
	case a[y].next == x:
		a.relinkAdjacent(y, x)
	default:
		a.relinkGeneral(x, y)
	}
}
