package box

// aligned(8) class MovieFragmentRandomAccessOffsetBox extends FullBox(‘mfro’, version, 0) {
//     unsigned int(32) size;
// }

type MovieFragmentRandomAccessOffsetBox struct {
	leaf
	FullBox
	MfraSize uint32
}

func decodeMfro(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	mfro := &MovieFragmentRandomAccessOffsetBox{FullBox: full}
	if mfro.MfraSize, err = p.ReadBE32(); err != nil {
		return nil, err
	}
	return mfro, nil
}

func (mfro *MovieFragmentRandomAccessOffsetBox) Values() []Field {
	return append(mfro.values(), Field{"size", Uint32(mfro.MfraSize)})
}
