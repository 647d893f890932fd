package box

// aligned(8) class MovieFragmentHeaderBox extends FullBox(‘mfhd’, 0, 0){
//     unsigned int(32) sequence_number;
// }

type MovieFragmentHeaderBox struct {
	leaf
	FullBox
	SequenceNumber uint32
}

func decodeMfhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	mfhd := &MovieFragmentHeaderBox{FullBox: full}
	if mfhd.SequenceNumber, err = p.ReadBE32(); err != nil {
		return nil, err
	}
	return mfhd, nil
}

func (mfhd *MovieFragmentHeaderBox) Values() []Field {
	return append(mfhd.values(), Field{"sequence_number", Uint32(mfhd.SequenceNumber)})
}
