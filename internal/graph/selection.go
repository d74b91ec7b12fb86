package graph

// Selection is a single-node selection: empty string means nothing is
// selected. Modeled as a pure reducer so the toggle and partition logic is
// testable without a rendering surface.

// Reduce applies a click to the current selection. Clicking the selected
// node deselects it; clicking any other node selects it directly.
func Reduce(current, clicked string) string {
	if current == clicked {
		return ""
	}
	return clicked
}

// Partition splits edges touching id into incoming (target == id) and
// outgoing (source == id), preserving order. A self-loop appears in both.
func Partition(edges []Edge, id string) (incoming, outgoing []Edge) {
	incoming = []Edge{}
	outgoing = []Edge{}
	for _, e := range edges {
		if e.Target == id {
			incoming = append(incoming, e)
		}
		if e.Source == id {
			outgoing = append(outgoing, e)
		}
	}
	return incoming, outgoing
}
