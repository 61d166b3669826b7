package diff

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMismatch is returned by Apply when a script does not describe its input.
var ErrMismatch = errors.New("edit script does not match sequence")

// Apply replays edits over a and returns the sequence they lead to. Deleted
// elements of a are skipped, inserted values are added and equal elements
// are kept. The A side and B side indices of the script must enumerate
// 0..len(a) and 0..len(result) in order, otherwise the error wraps
// ErrMismatch.
func Apply[E any](a []E, edits []Edit[E]) ([]E, error) {
	var b []E
	x := 0
	for i, e := range edits {
		switch e := e.(type) {
		case Insert[E]:
			if e.NewIndex != len(b) {
				return nil, errors.Wrapf(ErrMismatch, "edit %d: insert at %d, want %d", i, e.NewIndex, len(b))
			}
			b = append(b, e.Value)
		case Delete[E]:
			if e.OldIndex != x || x >= len(a) {
				return nil, errors.Wrapf(ErrMismatch, "edit %d: delete at %d, want %d", i, e.OldIndex, x)
			}
			x++
		case Equal[E]:
			if e.OldIndex != x || x >= len(a) {
				return nil, errors.Wrapf(ErrMismatch, "edit %d: equal at %d, want %d", i, e.OldIndex, x)
			}
			if e.NewIndex != len(b) {
				return nil, errors.Wrapf(ErrMismatch, "edit %d: equal at new index %d, want %d", i, e.NewIndex, len(b))
			}
			b = append(b, a[x])
			x++
		default:
			panic(fmt.Sprintf("unknown edit %T", e))
		}
	}
	if x != len(a) {
		return nil, errors.Wrapf(ErrMismatch, "script covers %d of %d elements", x, len(a))
	}
	return b, nil
}
