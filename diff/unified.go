package diff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const bytesForBinaryFileCheck = 1 << 16

const noNewline = "\\ No newline at end of file"

// Unified wraps UnifiedTo to return a string instead of writing it to a writer.
func Unified(a, b Node, contextLines int) (string, error) {
	var buf bytes.Buffer
	if err := UnifiedTo(&buf, a, b, contextLines); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UnifiedTo writes a unified diff of the two nodes to w, without file name
// headers. Nothing is written if the nodes have the same content. A
// negative number of context lines is treated as zero.
func UnifiedTo(w io.Writer, a, b Node, contextLines int) error {
	if same, err := a.SameAs(b); err != nil {
		return errors.Wrap(err, "UnifiedTo")
	} else if same {
		return nil
	}
	aContent, err := a.Content()
	if err != nil {
		return errors.Wrap(err, "UnifiedTo: left")
	}
	bContent, err := b.Content()
	if err != nil {
		return errors.Wrap(err, "UnifiedTo: right")
	}
	if aContent == bContent {
		return nil
	}
	if isLikelyBinary(aContent) || isLikelyBinary(bContent) {
		_, err := fmt.Fprintln(w, "Binary files differ")
		return err
	}
	if contextLines < 0 {
		contextLines = 0
	}
	return unified(w, Sequence(splitTerminated(aContent), splitTerminated(bContent)), contextLines)
}

func unified(w io.Writer, edits []Edit[string], contextLines int) error {
	// While walking the script we are either in a hunk or in a common
	// segment. The hunk is nil in a common segment, where the most recent
	// common lines are kept in the ring to become leading context.
	var h *hunk
	common := newContextRing(contextLines)

	var leftOffset, rightOffset int
	for _, e := range edits {
		switch e := e.(type) {
		case Equal[string]:
			line := hunkLine(" ", e.OldValue)
			if h != nil {
				h.appendCommon(line)
				if h.isComplete() {
					for _, line := range h.trim() {
						common.push(line)
					}
					if err := h.printTo(w); err != nil {
						return err
					}
					h = nil
				}
			} else {
				common.push(line)
			}
			leftOffset++
			rightOffset++
		case Delete[string]:
			if h == nil {
				h = newHunk(leftOffset, rightOffset, common.drain(), contextLines)
			}
			h.appendDelete(hunkLine("-", e.Value))
			leftOffset++
		case Insert[string]:
			if h == nil {
				h = newHunk(leftOffset, rightOffset, common.drain(), contextLines)
			}
			h.appendInsert(hunkLine("+", e.Value))
			rightOffset++
		default:
			panic(fmt.Sprintf("unknown edit %T", e))
		}
	}
	if h != nil {
		h.trim()
		return h.printTo(w)
	}
	return nil
}

// hunkLine renders a terminated line without its "\n". A line missing the
// terminator is followed by the marker GNU diff prints for it.
func hunkLine(mark, line string) string {
	if strings.HasSuffix(line, "\n") {
		return mark + line[:len(line)-1]
	}
	return mark + line + "\n" + noNewline
}

// Look at a few thousand bytes and see if any of them is null.
func isLikelyBinary(s string) bool {
	if len(s) > bytesForBinaryFileCheck {
		s = s[:bytesForBinaryFileCheck]
	}
	return strings.IndexByte(s, 0) != -1
}
