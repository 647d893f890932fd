package render

import (
	"fmt"
	"io"
	"strings"

	"m7s.live/inspector/pkg/box"
)

const (
	red   = "\x1b[0;31m"
	green = "\x1b[0;32m"
	reset = "\x1b[0m"
)

type textWriter struct {
	strings.Builder
	Options
}

func (w *textWriter) paint(color, s string) string {
	if !w.Color {
		return s
	}
	return color + s + reset
}

// Text writes one block per box: a title with its offset and size, a rule,
// then one line per field. Contained boxes follow, indented by one tab.
func Text(w io.Writer, nodes []*box.Node, opts Options) error {
	tw := &textWriter{Options: opts}
	for i, node := range nodes {
		if i > 0 {
			tw.WriteByte('\n')
		}
		tw.node(node, "")
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

func (w *textWriter) node(node *box.Node, pad string) {
	title := node.Name()
	if node.IsUUID() {
		title += " " + node.UserTypeString()
	}
	fmt.Fprintf(w, "%s%s (offset: %d, size: %d)\n", pad, w.paint(red, title), node.Offset, node.Size)
	fmt.Fprintf(w, "%s-------------------------------\n", pad)
	if node.Payload == nil {
		fmt.Fprintf(w, "%sno data available yet on this box\n", pad)
		return
	}
	for _, field := range node.Values() {
		fmt.Fprintf(w, "%s%s %s\n", pad, w.paint(green, field.Name+":"), w.value(field.Value, pad))
	}
	for _, child := range node.Children() {
		w.WriteByte('\n')
		w.node(child, pad+"\t")
	}
}

func (w *textWriter) value(v box.Value, pad string) string {
	if s, _, ok := scalar(v); ok {
		return s
	}
	switch v := v.(type) {
	case box.Matrix:
		var b strings.Builder
		for i := range 3 {
			row := v.Row(i)
			fmt.Fprintf(&b, "\n%s\t%d\t%d\t%d", pad, row[0], row[1], row[2])
		}
		return b.String()
	case box.Collection:
		if !w.ShowAll {
			return collapsed
		}
		records := make([]string, len(v))
		for i, record := range v {
			var b strings.Builder
			for _, field := range record {
				fmt.Fprintf(&b, "\n%s\t%s %s", pad, w.paint(green, field.Name+":"), w.value(field.Value, pad+"\t"))
			}
			records[i] = b.String()
		}
		return strings.Join(records, "\n")
	}
	return fmt.Sprintf("%v", v)
}
