package box

// ContainerBox is any box whose content is only other boxes (moov, trak, moof, traf...).
type ContainerBox struct {
	children []*Node
}

func (c *ContainerBox) Values() []Field {
	return nil
}

func (c *ContainerBox) Children() []*Node {
	return c.children
}

func (c *ContainerBox) TakeChildren() (children []*Node) {
	children, c.children = c.children, nil
	return
}

func decodeContainer(p *Parser, content int64, box *BasicBox) (IBox, error) {
	children, err := p.ParseChildren(content, box)
	if err != nil {
		return nil, err
	}
	return &ContainerBox{children: children}, nil
}

// leaf is embedded by the payloads that hold no boxes.
type leaf struct{}

func (leaf) Children() []*Node {
	return nil
}

// SkippedBox is a known box whose content is not worth decoding (mdat, free, skip).
type SkippedBox struct {
	leaf
	Length int64
}

func (s *SkippedBox) Values() []Field {
	return nil
}

func decodeSkipped(p *Parser, content int64, box *BasicBox) (IBox, error) {
	skipped := &SkippedBox{Length: p.left(box, content)}
	if content == ToEnd {
		return skipped, p.SkipToEnd()
	}
	return skipped, p.Skip(content)
}
