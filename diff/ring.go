package diff

// contextRing keeps the most recent common lines seen outside a hunk, so
// they can be backfilled as leading context when the next hunk opens. Once
// full, it overwrites the oldest line.
type contextRing struct {
	lines []string
	start int
	len   int
}

func newContextRing(size int) *contextRing {
	return &contextRing{lines: make([]string, size)}
}

func (r *contextRing) push(line string) {
	if len(r.lines) == 0 {
		return
	}
	end := (r.start + r.len) % len(r.lines)
	r.lines[end] = line
	if r.len == len(r.lines) {
		r.start = (r.start + 1) % len(r.lines)
	} else {
		r.len++
	}
}

// drain returns the buffered lines, oldest first, and empties the ring.
func (r *contextRing) drain() []string {
	var lines []string
	for ; r.len > 0; r.len-- {
		lines = append(lines, r.lines[r.start])
		r.start = (r.start + 1) % len(r.lines)
	}
	return lines
}
