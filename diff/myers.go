package diff

// Sequence returns a minimal edit script turning a into b, comparing
// elements with ==.
func Sequence[E comparable](a, b []E) []Edit[E] {
	return SequenceFunc(a, b, func(x, y E) bool { return x == y })
}

// SequenceFunc is like Sequence but compares elements with eq.
func SequenceFunc[E any](a, b []E, eq func(x, y E) bool) []Edit[E] {
	trace := shortestEdit(a, b, eq)
	if len(trace) == 0 {
		return nil
	}
	// Edits are discovered from the end, so fill the script back to front.
	// Each round of the trace contributes at most one insert or delete, and
	// the snakes contribute min(len(a), len(b)) equal edits at most.
	edits := make([]Edit[E], 0, len(a)+len(b))
	backtrack(trace, len(a), len(b), func(prevX, prevY, x, y int) {
		switch {
		case x == prevX:
			edits = append(edits, Insert[E]{NewIndex: prevY, Value: b[prevY]})
		case y == prevY:
			edits = append(edits, Delete[E]{OldIndex: prevX, Value: a[prevX]})
		default:
			edits = append(edits, Equal[E]{OldIndex: prevX, OldValue: a[prevX], NewIndex: prevY, NewValue: b[prevY]})
		}
	})
	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
	return edits
}

// frontier holds, for each diagonal k = x - y, the furthest x reached so far.
// Diagonal k lives at index k+offset, where offset is len(a)+len(b); the
// slice has room for diagonals -offset through offset+1.
type frontier struct {
	v      []int
	offset int
}

func newFrontier(max int) frontier {
	return frontier{v: make([]int, 2*max+2), offset: max}
}

func (f frontier) get(k int) int { return f.v[k+f.offset] }
func (f frontier) set(k, x int)  { f.v[k+f.offset] = x }

func (f frontier) snapshot() frontier {
	v := make([]int, len(f.v))
	copy(v, f.v)
	return frontier{v: v, offset: f.offset}
}

// down reports whether diagonal k at distance d is reached from diagonal k+1
// (an insertion) rather than from k-1 (a deletion).
func (f frontier) down(k, d int) bool {
	return k == -d || (k != d && f.get(k-1) < f.get(k+1))
}

// shortestEdit runs the forward search and returns one snapshot of the
// frontier per edit distance, taken before that distance is explored. The
// last snapshot belongs to the distance at which both ends were reached.
func shortestEdit[E any](a, b []E, eq func(x, y E) bool) []frontier {
	n, m := len(a), len(b)
	max := n + m
	if max == 0 {
		return nil
	}
	v := newFrontier(max)
	var trace []frontier
	for d := 0; d <= max; d++ {
		trace = append(trace, v.snapshot())
		for k := -d; k <= d; k += 2 {
			var x int
			if v.down(k, d) {
				x = v.get(k + 1)
			} else {
				x = v.get(k-1) + 1
			}
			y := x - k
			for x < n && y < m && eq(a[x], b[y]) {
				x++
				y++
			}
			v.set(k, x)
			if x >= n && y >= m {
				return trace
			}
		}
	}
	return trace
}

// backtrack walks the trace from (n, m) back to (0, 0), calling yield once
// per unit move with the move's start and end points.
func backtrack(trace []frontier, n, m int, yield func(prevX, prevY, x, y int)) {
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y
		prevK := k - 1
		if v.down(k, d) {
			prevK = k + 1
		}
		prevX := v.get(prevK)
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			yield(x-1, y-1, x, y)
			x--
			y--
		}
		if d > 0 {
			yield(prevX, prevY, x, y)
		}
		x, y = prevX, prevY
	}
}
