// Package explain turns two unequal values into the sentence an assertion
// failure reports, using the diff and strdiff packages to point at what
// differs.
package explain

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/nicolagi/whydiff/diff"
	"github.com/nicolagi/whydiff/strdiff"
)

// Show displays a value in a failure message, wrapped in angle brackets.
func Show(v interface{}) string {
	return "<" + display(v) + ">"
}

// display renders strings quoted, slices, arrays and maps element by element
// (maps sorted by key), nil as null and anything else as fmt would.
func display(v interface{}) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return `"` + rv.String() + `"`
	case reflect.Slice, reflect.Array:
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = display(rv.Index(i).Interface())
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case reflect.Map:
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, display(iter.Key().Interface())+"="+display(iter.Value().Interface()))
		}
		sort.Strings(entries)
		return "{" + strings.Join(entries, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

// Values explains why actual is not the expected value. When both are
// non-nil and differ, their displayed forms are compacted around the first
// and last differing characters:
//
//	:<"test[1]"> but was:<"test[2]">
//
// Otherwise, or when both display the same, as int(1) and int64(1) do, both
// are shown in full.
func Values(expected, actual interface{}, opts ...strdiff.Option) string {
	if expected == nil || actual == nil || reflect.DeepEqual(expected, actual) {
		return ":" + Show(expected) + " but was:" + Show(actual)
	}
	de, da := display(expected), display(actual)
	if de == da {
		return ":<" + de + "> but was:<" + da + ">"
	}
	x := strdiff.New(de, da, opts...)
	e, a := x.Render()
	return ":<" + e + "> but was:<" + a + ">"
}

// List explains why actual does not contain exactly the expected elements
// in order, listing one line per missing or unexpected element.
func List[E comparable](expected, actual []E) string {
	return list(expected, actual, diff.Sequence(expected, actual))
}

// ListFunc is like List but compares elements with eq.
func ListFunc[E any](expected, actual []E, eq func(x, y E) bool) string {
	return list(expected, actual, diff.SequenceFunc(expected, actual, eq))
}

func list[E any](expected, actual []E, edits []diff.Edit[E]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "to contain exactly:%s but was:%s", Show(expected), Show(actual))
	for _, e := range diff.Changes(edits) {
		switch e := e.(type) {
		case diff.Delete[E]:
			fmt.Fprintf(&sb, "\n at index:%d expected:%s", e.OldIndex, Show(e.Value))
		case diff.Insert[E]:
			fmt.Fprintf(&sb, "\n at index:%d unexpected:%s", e.NewIndex, Show(e.Value))
		case diff.Equal[E]:
			panic("diff.Changes returned an equal edit")
		}
	}
	return sb.String()
}
