package box

// aligned(8) class MovieHeaderBox extends FullBox(‘mvhd’, version, 0) {
//     if (version==1) {
//         unsigned int(64) creation_time;
//         unsigned int(64) modification_time;
//         unsigned int(32) timescale;
//         unsigned int(64) duration;
//     } else { // version==0
//         unsigned int(32) creation_time;
//         unsigned int(32) modification_time;
//         unsigned int(32) timescale;
//         unsigned int(32) duration;
//     }
//     template int(32) rate = 0x00010000; // typically 1.0
//     template int(16) volume = 0x0100; // typically, full volume
//     const bit(16) reserved = 0;
//     const unsigned int(32)[2] reserved = 0;
//     template int(32)[9] matrix = { 0x00010000,0,0,0,0x00010000,0,0,0,0x40000000 };
//     bit(32)[6] pre_defined = 0;
//     unsigned int(32) next_track_ID;
// }

type MovieHeaderBox struct {
	leaf
	FullBox
	CreationTime     uint64
	ModificationTime uint64
	Timescale        uint32
	Duration         uint64
	Rate             uint32
	Volume           uint16
	Reserved1        uint16
	Reserved2        []uint32
	Matrix           Matrix
	PreDefined       []uint32
	NextTrackID      uint32
}

func decodeMvhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r, wide := p.fields(), full.Version == 1
	mvhd := &MovieHeaderBox{
		FullBox:          full,
		CreationTime:     r.u32or64(wide),
		ModificationTime: r.u32or64(wide),
		Timescale:        r.u32(),
		Duration:         r.u32or64(wide),
		Rate:             r.u32(),
		Volume:           r.u16(),
		Reserved1:        r.u16(),
		Reserved2:        r.u32s(2),
		Matrix:           Matrix(r.u32s(9)),
		PreDefined:       r.u32s(6),
		NextTrackID:      r.u32(),
	}
	if r.err != nil {
		return nil, r.err
	}
	return mvhd, nil
}

func (mvhd *MovieHeaderBox) Values() []Field {
	return append(mvhd.values(),
		Field{"creation_time", Uint64(mvhd.CreationTime)},
		Field{"modification_time", Uint64(mvhd.ModificationTime)},
		Field{"timescale", Uint32(mvhd.Timescale)},
		Field{"duration", Uint64(mvhd.Duration)},
		Field{"rate", fixed16(mvhd.Rate)},
		Field{"volume", fixed8(mvhd.Volume)},
		Field{"reserved_1", Uint16(mvhd.Reserved1)},
		Field{"reserved_2", Uint32Array(mvhd.Reserved2)},
		Field{"matrix", mvhd.Matrix},
		Field{"pre_defined", Uint32Array(mvhd.PreDefined)},
		Field{"next_track_id", Uint32(mvhd.NextTrackID)},
	)
}
