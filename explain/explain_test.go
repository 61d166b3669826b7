package explain_test

import (
	"strings"
	"testing"

	"github.com/nicolagi/whydiff/explain"
	"github.com/nicolagi/whydiff/strdiff"
	"github.com/stretchr/testify/assert"
)

func TestShow(t *testing.T) {
	testCases := []struct {
		value interface{}
		want  string
	}{
		{nil, "<null>"},
		{"text", `<"text">`},
		{42, "<42>"},
		{[]int{1, 2, 3}, "<[1, 2, 3]>"},
		{[2]string{"a", "b"}, `<["a", "b"]>`},
		{[]interface{}{nil, "x", []int{}}, `<[null, "x", []]>`},
		{map[string]int{"b": 2, "a": 1}, `<{"a"=1, "b"=2}>`},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, explain.Show(c.value))
	}
}

func TestValues(t *testing.T) {
	testCases := []struct {
		description      string
		expected, actual interface{}
		want             string
	}{
		{"strings", "test1", "test2", `:<"test[1]"> but was:<"test[2]">`},
		{"numbers", 1, 2, ":<[1]> but was:<[2]>"},
		{"nil expected", nil, "a", `:<null> but was:<"a">`},
		{"nil actual", 3, nil, ":<3> but was:<null>"},
		{"equal values", []int{1}, []int{1}, ":<[1]> but was:<[1]>"},
		{"whitespace", "a\tb", "a b", `:<"a[\t]b"> but was:<"a[ ]b">`},
		{"lists", []int{1, 2, 3}, []int{1, 2, 4}, ":<[1, 2, [3]]> but was:<[1, 2, [4]]>"},
		{"same display, different types", 1, int64(1), ":<1> but was:<1>"},
		{"same display, different element types", []int{1}, []uint{1}, ":<[1]> but was:<[1]>"},
	}
	for _, c := range testCases {
		assert.Equal(t, c.want, explain.Values(c.expected, c.actual), c.description)
	}
}

func TestValuesCompactsLongStrings(t *testing.T) {
	flank := strings.Repeat("x", 40)
	got := explain.Values(flank+"1"+flank, flank+"2"+flank, strdiff.WithContextLength(3))
	assert.Equal(t, `:<...xxx[1]xxx...> but was:<...xxx[2]xxx...>`, got)
}

func TestList(t *testing.T) {
	got := explain.List([]int{1, 2, 3}, []int{1, 5, 3})
	want := "to contain exactly:<[1, 2, 3]> but was:<[1, 5, 3]>\n" +
		" at index:1 expected:<2>\n" +
		" at index:1 unexpected:<5>"
	assert.Equal(t, want, got)

	got = explain.List([]string{"a", "b"}, []string{"a", "b"})
	assert.Equal(t, `to contain exactly:<["a", "b"]> but was:<["a", "b"]>`, got)

	got = explain.List(nil, []string{"x", "y"})
	want = `to contain exactly:<[]> but was:<["x", "y"]>` + "\n" +
		` at index:0 unexpected:<"x">` + "\n" +
		` at index:1 unexpected:<"y">`
	assert.Equal(t, want, got)
}

func TestListFunc(t *testing.T) {
	eq := func(x, y []int) bool { return len(x) == len(y) }
	got := explain.ListFunc([][]int{{1}, {2, 3}}, [][]int{{9}, {4, 5, 6}}, eq)
	want := "to contain exactly:<[[1], [2, 3]]> but was:<[[9], [4, 5, 6]]>\n" +
		" at index:1 expected:<[2, 3]>\n" +
		" at index:1 unexpected:<[4, 5, 6]>"
	assert.Equal(t, want, got)
}
