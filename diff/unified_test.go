package diff_test

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/nicolagi/whydiff/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenNode struct{}

func (brokenNode) SameAs(diff.Node) (bool, error) {
	panic("broken")
}

func (brokenNode) Content() (string, error) {
	panic("broken")
}

type nodeSameAsAny struct {
	brokenNode
}

func (nodeSameAsAny) SameAs(diff.Node) (bool, error) {
	return true, nil
}

type contentErrorNode struct {
	err error
}

func (contentErrorNode) SameAs(diff.Node) (bool, error) {
	return false, nil
}

func (node contentErrorNode) Content() (string, error) {
	return "", node.err
}

type sameAsErrorNode struct {
	brokenNode
	err error
}

func (node sameAsErrorNode) SameAs(diff.Node) (bool, error) {
	return false, node.err
}

func TestUnifiedIfNodesSameNoDiff(t *testing.T) {
	var a, b nodeSameAsAny
	for _, right := range []diff.Node{a, b, nil} {
		out, err := diff.Unified(a, right, rand.Intn(100))
		assert.Empty(t, out)
		assert.Nil(t, err)
	}
}

func TestUnifiedPassesErrors(t *testing.T) {
	t.Run("when SameAs returns an error, Unified fails in turn", func(t *testing.T) {
		cause := fmt.Errorf("an error")
		out, err := diff.Unified(sameAsErrorNode{err: cause}, nodeSameAsAny{}, 5)
		assert.Equal(t, "", out)
		assert.True(t, errors.Is(err, cause))
	})
	t.Run("content errors are returned", func(t *testing.T) {
		a := contentErrorNode{err: errors.New("any error")}
		b := contentErrorNode{}
		for _, pair := range [][2]diff.Node{{a, a}, {a, b}, {b, a}} {
			out, err := diff.Unified(pair[0], pair[1], rand.Intn(100))
			assert.Equal(t, "", out)
			assert.True(t, errors.Is(err, a.err))
		}
	})
}

// From https://www.gnu.org/software/diffutils/manual/html_node/Binary.html:
// diff determines whether a file is text or binary by checking the first few
// bytes in the file. If every byte in that part of the file is non-null, diff
// considers the file to be text; otherwise it considers the file to be binary.
func TestUnifiedRecognizesBinaryFiles(t *testing.T) {
	a := diff.ByteNode{0}
	b := diff.ByteNode{1}
	out, err := diff.Unified(a, b, 3)
	assert.Equal(t, "Binary files differ\n", out)
	assert.Nil(t, err)
	out, err = diff.Unified(a, a, 3)
	assert.Equal(t, "", out)
	assert.Nil(t, err)
}

func TestUnified(t *testing.T) {
	testCases := []struct {
		name         string
		left, right  string
		contextLines int
		want         string
	}{
		{
			name:         "same content",
			left:         "a\nb\n",
			right:        "a\nb\n",
			contextLines: 3,
		},
		{
			name:         "replaced line",
			left:         "a\nb\nc\nd\ne\nf\ng\nh\n",
			right:        "a\nb\nc\nD\ne\nf\ng\nh\n",
			contextLines: 1,
			want:         "@@ -3,3 +3,3 @@\n c\n-d\n+D\n e\n",
		},
		{
			name:         "appended line",
			left:         "a\nb\n",
			right:        "a\nb\nc\n",
			contextLines: 3,
			want:         "@@ -1,2 +1,3 @@\n a\n b\n+c\n",
		},
		{
			name:         "everything removed",
			left:         "x\n",
			right:        "",
			contextLines: 3,
			want:         "@@ -1 +0,0 @@\n-x\n",
		},
		{
			name:         "two hunks",
			left:         "1\n2\n3\n4\n5\n6\n7\n8\n9\n",
			right:        "1\nX\n3\n4\n5\n6\n7\nY\n9\n",
			contextLines: 1,
			want:         "@@ -1,3 +1,3 @@\n 1\n-2\n+X\n 3\n@@ -7,3 +7,3 @@\n 7\n-8\n+Y\n 9\n",
		},
		{
			name:         "close changes share a hunk",
			left:         "1\n2\n3\n4\n5\n",
			right:        "1\nX\n3\nY\n5\n",
			contextLines: 1,
			want:         "@@ -1,5 +1,5 @@\n 1\n-2\n+X\n 3\n-4\n+Y\n 5\n",
		},
		{
			name:         "no context",
			left:         "1\n2\n3\n",
			right:        "1\n3\n",
			contextLines: 0,
			want:         "@@ -2 +1,0 @@\n-2\n",
		},
		{
			name:         "newline added at end of file",
			left:         "a",
			right:        "a\n",
			contextLines: 3,
			want:         "@@ -1 +1 @@\n-a\n\\ No newline at end of file\n+a\n",
		},
		{
			name:         "last line changed and newline added",
			left:         "a\nb",
			right:        "a\nc\n",
			contextLines: 3,
			want:         "@@ -1,2 +1,2 @@\n a\n-b\n\\ No newline at end of file\n+c\n",
		},
		{
			name:         "common last line without newline",
			left:         "x\ny",
			right:        "X\ny",
			contextLines: 3,
			want:         "@@ -1,2 +1,2 @@\n-x\n+X\n y\n\\ No newline at end of file\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := diff.Unified(diff.StringNode(tc.left), diff.StringNode(tc.right), tc.contextLines)
			require.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnifiedFileNodes(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left")
	right := filepath.Join(dir, "right")
	require.Nil(t, os.WriteFile(left, []byte("one\ntwo\n"), 0600))
	require.Nil(t, os.WriteFile(right, []byte("one\n2\n"), 0600))

	out, err := diff.Unified(diff.FileNode(left), diff.FileNode(left), 3)
	assert.Nil(t, err)
	assert.Empty(t, out)

	out, err = diff.Unified(diff.FileNode(left), diff.FileNode(right), 3)
	assert.Nil(t, err)
	assert.Equal(t, "@@ -1,2 +1,2 @@\n one\n-two\n+2\n", out)

	_, err = diff.Unified(diff.FileNode(left), diff.FileNode(filepath.Join(dir, "missing")), 3)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
