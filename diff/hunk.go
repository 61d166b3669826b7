package diff

import (
	"fmt"
	"io"
)

// See https://www.gnu.org/software/diffutils/manual/html_node/Hunks.html.
type hunk struct {
	// Location of the hunk: offset and count of lines on the left and on
	// the right. This is rendered for example as "@@ -15,3 +17,5 @@".
	lo, lc int
	ro, rc int

	// Rendered lines, each starting with ' ', '-' or '+'.
	lines []string

	// Number of common lines since the last change. For a unified diff with
	// 3 lines of context, the hunk is closed after 7 common lines, of which
	// the last 4 are given back to the context ring.
	sinceLastChange int

	contextLines int

	printErr error
}

func newHunk(lo, ro int, backfill []string, contextLines int) *hunk {
	n := len(backfill)
	return &hunk{
		lo:           lo - n,
		ro:           ro - n,
		lc:           n,
		rc:           n,
		lines:        backfill,
		contextLines: contextLines,
	}
}

func (h *hunk) appendDelete(line string) {
	h.lines = append(h.lines, line)
	h.sinceLastChange = 0
	h.lc++
}

func (h *hunk) appendInsert(line string) {
	h.lines = append(h.lines, line)
	h.sinceLastChange = 0
	h.rc++
}

func (h *hunk) appendCommon(line string) {
	h.lines = append(h.lines, line)
	h.sinceLastChange++
	h.lc++
	h.rc++
}

func (h *hunk) isComplete() bool {
	return h.sinceLastChange >= 2*h.contextLines+1
}

// trim drops trailing common lines beyond the context size and returns them.
func (h *hunk) trim() []string {
	if h.sinceLastChange <= h.contextLines {
		return nil
	}
	n := h.sinceLastChange - h.contextLines
	dropped := h.lines[len(h.lines)-n:]
	h.lines = h.lines[:len(h.lines)-n]
	h.lc -= n
	h.rc -= n
	h.sinceLastChange = h.contextLines
	return dropped
}

func (h *hunk) printTo(w io.Writer) error {
	h.print(w, "@@ -%s +%s @@\n", hunkRange(h.lo, h.lc), hunkRange(h.ro, h.rc))
	for _, line := range h.lines {
		h.print(w, "%s\n", line)
	}
	return h.printErr
}

func (h *hunk) print(w io.Writer, format string, a ...interface{}) {
	if h.printErr != nil {
		return
	}
	_, h.printErr = fmt.Fprintf(w, format, a...)
}

// hunkRange formats one side of a hunk header. An empty range is shown at
// the line preceding it, as GNU diff does.
func hunkRange(offset, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", offset)
	case 1:
		return fmt.Sprintf("%d", offset+1)
	default:
		return fmt.Sprintf("%d,%d", offset+1, count)
	}
}
