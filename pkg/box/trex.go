package box

// aligned(8) class TrackExtendsBox extends FullBox(‘trex’, 0, 0){
//     unsigned int(32) track_ID;
//     unsigned int(32) default_sample_description_index;
//     unsigned int(32) default_sample_duration;
//     unsigned int(32) default_sample_size;
//     unsigned int(32) default_sample_flags
// }

type TrackExtendsBox struct {
	leaf
	FullBox
	TrackID                       uint32
	DefaultSampleDescriptionIndex uint32
	DefaultSampleDuration         uint32
	DefaultSampleSize             uint32
	DefaultSampleFlags            uint32
}

func decodeTrex(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	trex := &TrackExtendsBox{
		FullBox:                       full,
		TrackID:                       r.u32(),
		DefaultSampleDescriptionIndex: r.u32(),
		DefaultSampleDuration:         r.u32(),
		DefaultSampleSize:             r.u32(),
		DefaultSampleFlags:            r.u32(),
	}
	if r.err != nil {
		return nil, r.err
	}
	return trex, nil
}

func (trex *TrackExtendsBox) Values() []Field {
	return append(trex.values(),
		Field{"track_id", Uint32(trex.TrackID)},
		Field{"default_sample_description_index", Uint32(trex.DefaultSampleDescriptionIndex)},
		Field{"default_sample_duration", Uint32(trex.DefaultSampleDuration)},
		Field{"default_sample_size", Uint32(trex.DefaultSampleSize)},
		Field{"default_sample_flags", Uint32(trex.DefaultSampleFlags)},
	)
}
