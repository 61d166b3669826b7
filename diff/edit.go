package diff

import (
	"fmt"
	"sort"
)

// Edit is one step of an edit script. The only implementations are Insert,
// Delete and Equal; callers are expected to switch over the three of them.
type Edit[E any] interface {
	fmt.Stringer
	edit()
}

// Insert is an element present only in the second sequence, at NewIndex.
type Insert[E any] struct {
	NewIndex int
	Value    E
}

// Delete is an element present only in the first sequence, at OldIndex.
type Delete[E any] struct {
	OldIndex int
	Value    E
}

// Equal is an element common to both sequences.
type Equal[E any] struct {
	OldIndex int
	OldValue E
	NewIndex int
	NewValue E
}

func (Insert[E]) edit() {}
func (Delete[E]) edit() {}
func (Equal[E]) edit()  {}

func (e Insert[E]) String() string { return fmt.Sprintf("+%d %v", e.NewIndex, e.Value) }
func (e Delete[E]) String() string { return fmt.Sprintf("-%d %v", e.OldIndex, e.Value) }
func (e Equal[E]) String() string  { return fmt.Sprintf(" %d %v", e.OldIndex, e.OldValue) }

// Distance returns the number of edits that are not Equal. For a script
// returned by Sequence it is the insert/delete edit distance of the inputs.
func Distance[E any](edits []Edit[E]) int {
	n := 0
	for _, e := range edits {
		if _, ok := e.(Equal[E]); !ok {
			n++
		}
	}
	return n
}

// Changes returns the Insert and Delete edits of a script, ordered by the
// index each refers to (NewIndex for inserts, OldIndex for deletes). Edits
// with the same index keep their script order.
func Changes[E any](edits []Edit[E]) []Edit[E] {
	var changes []Edit[E]
	for _, e := range edits {
		switch e.(type) {
		case Insert[E], Delete[E]:
			changes = append(changes, e)
		case Equal[E]:
		default:
			panic(fmt.Sprintf("unknown edit %T", e))
		}
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changeIndex[E](changes[i]) < changeIndex[E](changes[j])
	})
	return changes
}

func changeIndex[E any](e Edit[E]) int {
	switch e := e.(type) {
	case Insert[E]:
		return e.NewIndex
	case Delete[E]:
		return e.OldIndex
	default:
		panic(fmt.Sprintf("not a change: %T", e))
	}
}
