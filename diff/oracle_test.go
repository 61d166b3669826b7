package diff_test

import (
	"math/rand"
	"strings"
	"testing"

	avdiff "github.com/andreyvit/diff"
	"github.com/nicolagi/whydiff/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// Without a timeout, diffmatchpatch bisects all the way down and so finds a
// minimal script too. The edits may differ, the distance may not.
func TestSequenceDistanceMatchesDiffMatchPatch(t *testing.T) {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		a := []rune(string(randomBytes(r, "xyz", 30)))
		b := []rune(string(randomBytes(r, "xyz", 30)))
		want := 0
		for _, d := range dmp.DiffMainRunes(a, b, false) {
			if d.Type != diffmatchpatch.DiffEqual {
				want += len([]rune(d.Text))
			}
		}
		got := diff.Distance(diff.Sequence(a, b))
		require.Equal(t, want, got, "distance of %q -> %q", string(a), string(b))
	}
}

// The line diff used by the unified renderer is never longer than the
// semantic line diff of github.com/andreyvit/diff.
func TestLinesNoLongerThanAndreyvit(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	text := func() string {
		var sb strings.Builder
		for _, c := range randomBytes(r, "pqrs", 25) {
			sb.WriteByte(c)
			sb.WriteByte('\n')
		}
		return sb.String()
	}
	for i := 0; i < 100; i++ {
		a, b := text(), text()
		bound := 0
		for _, line := range avdiff.LineDiffAsLines(a, b) {
			if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
				bound++
			}
		}
		got := diff.Distance(diff.Lines(a, b))
		require.LessOrEqual(t, got, bound, "line diff of %q -> %q", a, b)
	}
}
