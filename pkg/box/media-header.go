package box

// aligned(8) class VideoMediaHeaderBox extends FullBox(‘vmhd’, version = 0, 1) {
//     template unsigned int(16) graphicsmode = 0; // copy, see below
//     template unsigned int(16)[3] opcolor = {0, 0, 0};
// }

type VideoMediaHeaderBox struct {
	leaf
	FullBox
	GraphicsMode uint16
	OpColor      []uint16
}

func decodeVmhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	vmhd := &VideoMediaHeaderBox{FullBox: full, GraphicsMode: r.u16()}
	vmhd.OpColor = []uint16{r.u16(), r.u16(), r.u16()}
	if r.err != nil {
		return nil, r.err
	}
	return vmhd, nil
}

func (vmhd *VideoMediaHeaderBox) Values() []Field {
	return append(vmhd.values(),
		Field{"graphicsmode", Uint16(vmhd.GraphicsMode)},
		Field{"opcolor", Uint16Array(vmhd.OpColor)},
	)
}

// aligned(8) class SoundMediaHeaderBox extends FullBox(‘smhd’, version = 0, 0) {
//     template int(16) balance = 0;
//     const unsigned int(16) reserved = 0;
// }

type SoundMediaHeaderBox struct {
	leaf
	FullBox
	Balance  uint16
	Reserved uint16
}

func decodeSmhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	smhd := &SoundMediaHeaderBox{FullBox: full, Balance: r.u16(), Reserved: r.u16()}
	if r.err != nil {
		return nil, r.err
	}
	return smhd, nil
}

func (smhd *SoundMediaHeaderBox) Values() []Field {
	return append(smhd.values(),
		Field{"balance", fixed8(smhd.Balance)},
		Field{"reserved", Uint16(smhd.Reserved)},
	)
}
