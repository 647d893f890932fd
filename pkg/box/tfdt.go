package box

// aligned(8) class TrackFragmentBaseMediaDecodeTimeBox extends FullBox(‘tfdt’, version, 0) {
//     if (version==1) {
//         unsigned int(64) baseMediaDecodeTime;
//     } else { // version==0
//         unsigned int(32) baseMediaDecodeTime;
//     }
// }

type TrackFragmentBaseMediaDecodeTimeBox struct {
	leaf
	FullBox
	BaseMediaDecodeTime uint64
}

func decodeTfdt(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	tfdt := &TrackFragmentBaseMediaDecodeTimeBox{FullBox: full, BaseMediaDecodeTime: r.u32or64(full.Version == 1)}
	return tfdt, r.err
}

func (tfdt *TrackFragmentBaseMediaDecodeTimeBox) Values() []Field {
	return append(tfdt.values(), Field{"base_media_decode_time", Uint64(tfdt.BaseMediaDecodeTime)})
}
