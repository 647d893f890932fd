package box

import (
	"io"
	"log/slog"
	"math"
	"slices"

	"m7s.live/inspector/pkg/util"
)

// ToEnd is the content length of a box that runs to the end of the stream,
// and the budget of a level parsed until the stream is exhausted.
const ToEnd int64 = -1

type Parser struct {
	*util.BufReader
	*slog.Logger
	Registry Registry
}

type Option func(*Parser)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.Logger = logger
	}
}

func WithRegistry(registry Registry) Option {
	return func(p *Parser) {
		p.Registry = registry
	}
}

func NewParser(r io.ReadSeeker, opts ...Option) (p *Parser, err error) {
	p = &Parser{
		Logger:   slog.Default(),
		Registry: DefaultRegistry,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.BufReader, err = util.NewBufReader(r); err != nil {
		return nil, &IOError{Err: err}
	}
	return
}

// Parse reads every top-level box of r.
func Parse(r io.ReadSeeker, opts ...Option) ([]*Node, error) {
	p, err := NewParser(r, opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseChildren(ToEnd, nil)
}

// ParseChildren reads consecutive boxes until budget bytes have been consumed,
// or until the end of the stream when budget is ToEnd.
func (p *Parser) ParseChildren(budget int64, parent *BasicBox) (nodes []*Node, err error) {
	remaining := budget
	for {
		if budget == ToEnd {
			var empty bool
			if empty, err = p.IsEmpty(); err != nil {
				return nil, wrapError(err, parent)
			} else if empty {
				return
			}
		} else if remaining == 0 {
			return
		} else if remaining < BasicBoxLen {
			return nil, &BoxTooSmallError{Offset: p.Pos(), Size: uint64(remaining), Parent: parent}
		}
		var node *Node
		if node, err = p.parseBox(remaining, parent); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		if budget != ToEnd {
			if node.Size == sizeToEndOfBox {
				remaining = 0
			} else {
				remaining -= int64(node.Size)
			}
		}
	}
}

func (p *Parser) parseBox(remaining int64, parent *BasicBox) (*Node, error) {
	box := &BasicBox{Offset: p.Pos(), HeaderSize: BasicBoxLen, Parent: parent}
	size, err := p.ReadBE32()
	if err != nil {
		return nil, wrapError(err, parent)
	}
	name, err := p.ReadString(4)
	if err != nil {
		return nil, wrapError(err, parent)
	}
	box.Type, box.Size = [4]byte([]byte(name)), uint64(size)
	if size == sizeLargeSize {
		if box.Size, err = p.ReadBE64(); err != nil {
			return nil, wrapError(err, parent)
		}
		box.HeaderSize = LargeBoxLen
		// only the 32-bit field can say "to end", a largesize of 0 is just too small
		if box.Size < LargeBoxLen {
			return nil, &BoxTooSmallError{Offset: box.Offset, Size: box.Size, Type: name, Parent: parent}
		}
	}
	if box.IsUUID() {
		box.HeaderSize += UserTypeLen
	}
	if box.Size != sizeToEndOfBox && box.Size < uint64(box.HeaderSize) {
		return nil, &BoxTooSmallError{Offset: box.Offset, Size: box.Size, Type: name, Parent: parent}
	}
	if remaining != ToEnd {
		if box.Size > uint64(remaining) {
			return nil, &BoxTooLargeError{Box: box, Remaining: uint64(remaining)}
		}
		if box.Size == sizeToEndOfBox && remaining < int64(box.HeaderSize) {
			return nil, &BoxTooSmallError{Offset: box.Offset, Size: uint64(remaining), Type: name, Parent: parent}
		}
	} else if box.Size > math.MaxInt64-uint64(box.Offset) {
		return nil, &BoxTooLargeError{Box: box, Remaining: uint64(p.Size() - box.Offset)}
	}
	if box.IsUUID() {
		if err = p.ReadNto(UserTypeLen, box.UserType[:]); err != nil {
			return nil, wrapError(err, parent)
		}
	}

	content, end := ToEnd, p.Size()
	switch {
	case box.Size != sizeToEndOfBox:
		content, end = int64(box.Size)-int64(box.HeaderSize), box.End()
	case remaining != ToEnd:
		content, end = remaining-int64(box.HeaderSize), box.Offset+remaining
	}

	node := &Node{BasicBox: box}
	if decoder, ok := p.Registry[box.Type]; ok {
		if node.Payload, err = decoder.Decode(p, content, box); err != nil {
			return nil, wrapError(err, box)
		}
		p.Debug("box", "path", box.Path(), "offset", box.Offset, "size", box.Size)
	} else {
		if content == ToEnd {
			err = p.SkipToEnd()
		} else {
			err = p.Skip(content)
		}
		if err != nil {
			return nil, wrapError(err, box)
		}
		p.Debug("skip unknown box", "path", box.Path(), "offset", box.Offset, "size", box.Size)
	}
	if pos := p.Pos(); pos != end {
		return nil, &ConsumptionError{Box: box, Expected: end, Actual: pos}
	}
	return node, nil
}

// ReadFullBox reads the version and flags of a full box. versions lists the
// accepted versions, any version is accepted when it is empty.
func (p *Parser) ReadFullBox(box *BasicBox, versions ...uint8) (full FullBox, err error) {
	if full.Version, err = p.ReadByte(); err != nil {
		return
	}
	if len(versions) > 0 && !slices.Contains(versions, full.Version) {
		return full, &InvalidVersionError{Box: box, Expected: versions, Actual: full.Version}
	}
	var flags [3]byte
	if err = p.ReadNto(3, flags[:]); err == nil {
		full.Flags = NewFlags(flags)
	}
	return
}

// left is the number of content bytes of box not read yet.
func (p *Parser) left(box *BasicBox, content int64) int64 {
	if content == ToEnd {
		return p.Remaining()
	}
	return box.Offset + int64(box.HeaderSize) + content - p.Pos()
}

func tooSmall(box *BasicBox) error {
	return &BoxTooSmallError{Offset: box.Offset, Size: box.Size, Type: box.Name(), Parent: box.Parent}
}

// fields reads consecutive big-endian fields and keeps the first error.
type fields struct {
	*Parser
	err error
}

func (p *Parser) fields() *fields {
	return &fields{Parser: p}
}

func (r *fields) ok() bool {
	return r.err == nil
}

func (r *fields) u8() (v uint8) {
	if r.err == nil {
		v, r.err = r.ReadByte()
	}
	return
}

func (r *fields) u16() (v uint16) {
	if r.err == nil {
		v, r.err = r.ReadBE16()
	}
	return
}

func (r *fields) u32() (v uint32) {
	if r.err == nil {
		v, r.err = r.ReadBE32()
	}
	return
}

func (r *fields) u64() (v uint64) {
	if r.err == nil {
		v, r.err = r.ReadBE64()
	}
	return
}

func (r *fields) i16() (v int16) {
	if r.err == nil {
		v, r.err = r.ReadI16()
	}
	return
}

func (r *fields) i32() (v int32) {
	if r.err == nil {
		v, r.err = r.ReadI32()
	}
	return
}

func (r *fields) i64() (v int64) {
	if r.err == nil {
		v, r.err = r.ReadI64()
	}
	return
}

// u32or64 reads a 64-bit field when wide is set and a 32-bit one otherwise.
func (r *fields) u32or64(wide bool) uint64 {
	if wide {
		return r.u64()
	}
	return uint64(r.u32())
}

func (r *fields) str(n int) (s string) {
	if r.err == nil {
		s, r.err = r.ReadString(n)
	}
	return
}

func (r *fields) bytes(n int) (b []byte) {
	if r.err == nil {
		b, r.err = r.ReadBytes(n)
	}
	return
}

func (r *fields) uuid() (id [16]byte) {
	if r.err == nil {
		r.err = r.ReadNto(len(id), id[:])
	}
	return
}

func (r *fields) u32s(n int) []uint32 {
	s := make([]uint32, n)
	for i := range s {
		s[i] = r.u32()
	}
	return s
}
