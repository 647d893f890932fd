package box

import "strings"

// aligned(8) class HandlerBox extends FullBox(‘hdlr’, version = 0, 0) {
//     unsigned int(32) pre_defined = 0;
//     unsigned int(32) handler_type;
//     const unsigned int(32)[3] reserved = 0;
//     string name;
// }

type HandlerBox struct {
	leaf
	FullBox
	PreDefined  uint32
	HandlerType string
	Reserved    []uint32
	Name        string
}

func decodeHdlr(p *Parser, content int64, box *BasicBox) (IBox, error) {
	if content != ToEnd && content < 24 {
		return nil, tooSmall(box)
	}
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	hdlr := &HandlerBox{
		FullBox:     full,
		PreDefined:  r.u32(),
		HandlerType: r.str(4),
		Reserved:    r.u32s(3),
	}
	name := r.str(int(p.left(box, content)))
	if r.err != nil {
		return nil, r.err
	}
	// QuickTime writes a counted string, ISO a NUL terminated one
	hdlr.Name = strings.TrimSuffix(name, "\x00")
	return hdlr, nil
}

func (hdlr *HandlerBox) Values() []Field {
	return append(hdlr.values(),
		Field{"pre_defined", Uint32(hdlr.PreDefined)},
		Field{"handler_type", Utf8(hdlr.HandlerType)},
		Field{"reserved", Uint32Array(hdlr.Reserved)},
		Field{"name", Utf8(hdlr.Name)},
	)
}
