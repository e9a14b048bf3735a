package fix

import "bytes"

// ApplyEdits applies a sorted (ascending, non-overlapping) slice of edits to
// content in a single left-to-right pass. It is the order-independent
// counterpart of Merge's right-to-left application: for any non-overlapping
// edit set, both produce identical text.
func ApplyEdits(content []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - e.Len()
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
