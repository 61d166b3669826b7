package diff_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"
	"github.com/nicolagi/whydiff/diff"
	"golang.org/x/sync/errgroup"
)

func TestSequenceConcurrentCallers(t *testing.T) {
	defer leaktest.CheckTimeout(t, time.Second)()

	r := rand.New(rand.NewSource(3))
	a := randomBytes(r, "ab", 200)
	b := randomBytes(r, "ab", 200)
	want := diff.Sequence(a, b)

	var g errgroup.Group
	results := make([][]diff.Edit[byte], 32)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = diff.Sequence(a, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i, got := range results {
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("caller %d: edit script mismatch (-want +got):\n%s", i, d)
		}
	}
}
