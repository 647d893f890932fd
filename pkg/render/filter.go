package render

import (
	"slices"

	"m7s.live/inspector/pkg/box"
)

// Filter keeps the boxes whose type is in names. The search goes down through
// the boxes that do not match only, a kept box brings its whole subtree.
func Filter(nodes []*box.Node, names []string) (kept []*box.Node) {
	for _, node := range nodes {
		if slices.Contains(names, node.Name()) {
			kept = append(kept, node)
		} else {
			kept = append(kept, Filter(node.Children(), names)...)
		}
	}
	return
}

// TotalSize adds up the declared sizes of the given boxes.
func TotalSize(nodes []*box.Node) (total uint64) {
	for _, node := range nodes {
		total += node.Size
	}
	return
}
