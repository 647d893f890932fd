package box

import "github.com/yapingcat/gomedia/go-codec"

// aligned(8) class MediaHeaderBox extends FullBox(‘mdhd’, version, 0) {
// if (version==1) {
//   unsigned int(64) creation_time;
//   unsigned int(64) modification_time;
//   unsigned int(32) timescale;
//   unsigned int(64) duration;
// } else { // version==0
//   unsigned int(32) creation_time;
//   unsigned int(32) modification_time;
//   unsigned int(32) timescale;
//   unsigned int(32) duration;
// }
// bit(1) pad = 0;
// unsigned int(5)[3] language; // ISO-639-2/T language code
// unsigned int(16) pre_defined = 0;
// }

type MediaHeaderBox struct {
	leaf
	FullBox
	CreationTime     uint64
	ModificationTime uint64
	Timescale        uint32
	Duration         uint64
	Pad              uint8
	Language         [3]byte
	PreDefined       uint16
}

func decodeMdhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r, wide := p.fields(), full.Version == 1
	mdhd := &MediaHeaderBox{
		FullBox:          full,
		CreationTime:     r.u32or64(wide),
		ModificationTime: r.u32or64(wide),
		Timescale:        r.u32(),
		Duration:         r.u32or64(wide),
	}
	lang := r.bytes(2)
	mdhd.PreDefined = r.u16()
	if r.err != nil {
		return nil, r.err
	}
	bs := codec.NewBitStream(lang)
	mdhd.Pad = bs.GetBit()
	for i := range mdhd.Language {
		// each letter is stored as its offset from 0x60
		mdhd.Language[i] = bs.Uint8(5) + 0x60
	}
	return mdhd, nil
}

func (mdhd *MediaHeaderBox) Values() []Field {
	return append(mdhd.values(),
		Field{"creation_time", Uint64(mdhd.CreationTime)},
		Field{"modification_time", Uint64(mdhd.ModificationTime)},
		Field{"timescale", Uint32(mdhd.Timescale)},
		Field{"duration", Uint64(mdhd.Duration)},
		Field{"pad", Uint8(mdhd.Pad)},
		Field{"language", Utf8(mdhd.Language[:])},
		Field{"pre_defined", Uint16(mdhd.PreDefined)},
	)
}
