package box

// aligned(8) class TrackHeaderBox extends FullBox(‘tkhd’, version, flags){
//     if (version==1) {
//         unsigned int(64) creation_time;
//         unsigned int(64) modification_time;
//         unsigned int(32) track_ID;
//         const unsigned int(32) reserved = 0;
//         unsigned int(64) duration;
//     } else { // version==0
//         unsigned int(32) creation_time;
//         unsigned int(32) modification_time;
//         unsigned int(32) track_ID;
//         const unsigned int(32) reserved = 0;
//         unsigned int(32) duration;
//     }
//     const unsigned int(32)[2] reserved = 0;
//     template int(16) layer = 0;
//     template int(16) alternate_group = 0;
//     template int(16) volume = {if track_is_audio 0x0100 else 0};
//     const unsigned int(16) reserved = 0;
//     template int(32)[9] matrix= { 0x00010000,0,0,0,0x00010000,0,0,0,0x40000000 };
//     unsigned int(32) width;
//     unsigned int(32) height;
// }

type TrackHeaderBox struct {
	leaf
	FullBox
	CreationTime     uint64
	ModificationTime uint64
	TrackID          uint32
	Reserved1        uint32
	Duration         uint64
	Reserved2        []uint32
	Layer            int16
	AlternateGroup   int16
	Volume           uint16
	Reserved3        uint16
	Matrix           Matrix
	Width            uint32
	Height           uint32
}

func decodeTkhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r, wide := p.fields(), full.Version == 1
	tkhd := &TrackHeaderBox{
		FullBox:          full,
		CreationTime:     r.u32or64(wide),
		ModificationTime: r.u32or64(wide),
		TrackID:          r.u32(),
		Reserved1:        r.u32(),
		Duration:         r.u32or64(wide),
		Reserved2:        r.u32s(2),
		Layer:            r.i16(),
		AlternateGroup:   r.i16(),
		Volume:           r.u16(),
		Reserved3:        r.u16(),
		Matrix:           Matrix(r.u32s(9)),
		Width:            r.u32(),
		Height:           r.u32(),
	}
	if r.err != nil {
		return nil, r.err
	}
	return tkhd, nil
}

func (tkhd *TrackHeaderBox) Values() []Field {
	return append(tkhd.values(),
		Field{"creation_time", Uint64(tkhd.CreationTime)},
		Field{"modification_time", Uint64(tkhd.ModificationTime)},
		Field{"track_id", Uint32(tkhd.TrackID)},
		Field{"reserved_1", Uint32(tkhd.Reserved1)},
		Field{"duration", Uint64(tkhd.Duration)},
		Field{"reserved_2", Uint32Array(tkhd.Reserved2)},
		Field{"layer", Int16(tkhd.Layer)},
		Field{"alternate_group", Int16(tkhd.AlternateGroup)},
		Field{"volume", fixed8(tkhd.Volume)},
		Field{"reserved_3", Uint16(tkhd.Reserved3)},
		Field{"matrix", tkhd.Matrix},
		Field{"width", fixed16(tkhd.Width)},
		Field{"height", fixed16(tkhd.Height)},
	)
}
