package render

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
	"m7s.live/inspector/pkg/box"
)

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func integer(v int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
}

func uinteger(v uint64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(v, 10)}
}

func mapping(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: pairs}
}

// YAML writes the tree as a sequence of boxes, fields keep their declared order.
func YAML(w io.Writer, nodes []*box.Node, opts Options) error {
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{boxesNode(nodes, opts)}}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func boxesNode(nodes []*box.Node, opts Options) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{}}
	for _, node := range nodes {
		m := mapping(str("type"), str(node.Name()))
		if name := box.DefaultRegistry.LongName(node.Type); name != "" {
			m.Content = append(m.Content, str("name"), str(name))
		}
		m.Content = append(m.Content,
			str("offset"), integer(node.Offset),
			str("size"), uinteger(node.Size),
		)
		if node.IsUUID() {
			m.Content = append(m.Content, str("usertype"), str(node.UserTypeString()))
		}
		if node.Payload == nil {
			m.Content = append(m.Content, str("decoded"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"})
			seq.Content = append(seq.Content, m)
			continue
		}
		if values := node.Values(); len(values) > 0 {
			m.Content = append(m.Content, str("values"), fieldsNode(values, opts))
		}
		if children := node.Children(); len(children) > 0 {
			m.Content = append(m.Content, str("children"), boxesNode(children, opts))
		}
		seq.Content = append(seq.Content, m)
	}
	return seq
}

func fieldsNode(fields []box.Field, opts Options) *yaml.Node {
	m := mapping()
	for _, field := range fields {
		m.Content = append(m.Content, str(field.Name), valueNode(field.Value, opts))
	}
	return m
}

func valueNode(v box.Value, opts Options) *yaml.Node {
	switch v := v.(type) {
	case box.Matrix:
		rows := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range 3 {
			row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, n := range v.Row(i) {
				row.Content = append(row.Content, uinteger(uint64(n)))
			}
			rows.Content = append(rows.Content, row)
		}
		return rows
	case box.Collection:
		if !opts.ShowAll {
			return str(collapsed)
		}
		records := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{}}
		for _, record := range v {
			records.Content = append(records.Content, fieldsNode(record, opts))
		}
		return records
	case box.Utf8Array:
		list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: []*yaml.Node{}}
		for _, s := range v {
			list.Content = append(list.Content, str(s))
		}
		return list
	}
	s, tag, _ := scalar(v)
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}
}
