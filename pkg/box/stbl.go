package box

// aligned(8) class TimeToSampleBox extends FullBox(’stts’, version = 0, 0) {
//     unsigned int(32) entry_count;
//     for (i=0; i < entry_count; i++) {
//         unsigned int(32) sample_count;
//         unsigned int(32) sample_delta;
//     }
// }

type STTSEntry struct {
	SampleCount uint32
	SampleDelta uint32
}

type TimeToSampleBox struct {
	leaf
	FullBox
	EntryCount uint32
	Entries    []STTSEntry
}

func decodeStts(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	stts := &TimeToSampleBox{FullBox: full, EntryCount: r.u32()}
	for i := uint32(0); r.ok() && i < stts.EntryCount; i++ {
		stts.Entries = append(stts.Entries, STTSEntry{SampleCount: r.u32(), SampleDelta: r.u32()})
	}
	if r.err != nil {
		return nil, r.err
	}
	return stts, nil
}

func (stts *TimeToSampleBox) Values() []Field {
	entries := make(Collection, 0, len(stts.Entries))
	for _, entry := range stts.Entries {
		entries = append(entries, []Field{
			{"sample_count", Uint32(entry.SampleCount)},
			{"sample_delta", Uint32(entry.SampleDelta)},
		})
	}
	return append(stts.values(),
		Field{"entry_count", Uint32(stts.EntryCount)},
		Field{"entries", entries},
	)
}

// aligned(8) class SampleToChunkBox extends FullBox(‘stsc’, version = 0, 0) {
//     unsigned int(32) entry_count;
//     for (i=1; i <= entry_count; i++) {
//         unsigned int(32) first_chunk;
//         unsigned int(32) samples_per_chunk;
//         unsigned int(32) sample_description_index;
//     }
// }

type STSCEntry struct {
	FirstChunk             uint32
	SamplesPerChunk        uint32
	SampleDescriptionIndex uint32
}

type SampleToChunkBox struct {
	leaf
	FullBox
	EntryCount uint32
	Entries    []STSCEntry
}

func decodeStsc(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	stsc := &SampleToChunkBox{FullBox: full, EntryCount: r.u32()}
	for i := uint32(0); r.ok() && i < stsc.EntryCount; i++ {
		stsc.Entries = append(stsc.Entries, STSCEntry{
			FirstChunk:             r.u32(),
			SamplesPerChunk:        r.u32(),
			SampleDescriptionIndex: r.u32(),
		})
	}
	if r.err != nil {
		return nil, r.err
	}
	return stsc, nil
}

func (stsc *SampleToChunkBox) Values() []Field {
	entries := make(Collection, 0, len(stsc.Entries))
	for _, entry := range stsc.Entries {
		entries = append(entries, []Field{
			{"first_chunk", Uint32(entry.FirstChunk)},
			{"samples_per_chunk", Uint32(entry.SamplesPerChunk)},
			{"sample_description_index", Uint32(entry.SampleDescriptionIndex)},
		})
	}
	return append(stsc.values(),
		Field{"entry_count", Uint32(stsc.EntryCount)},
		Field{"entries", entries},
	)
}

// aligned(8) class SampleSizeBox extends FullBox(‘stsz’, version = 0, 0) {
//     unsigned int(32) sample_size;
//     unsigned int(32) sample_count;
//     if (sample_size==0) {
//         for (i=1; i <= sample_count; i++) {
//             unsigned int(32) entry_size;
//         }
//     }
// }

type SampleSizeBox struct {
	leaf
	FullBox
	SampleSize  uint32
	SampleCount uint32
	EntrySizes  []uint32
}

func decodeStsz(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	stsz := &SampleSizeBox{FullBox: full, SampleSize: r.u32(), SampleCount: r.u32()}
	if stsz.SampleSize == 0 {
		for i := uint32(0); r.ok() && i < stsz.SampleCount; i++ {
			stsz.EntrySizes = append(stsz.EntrySizes, r.u32())
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return stsz, nil
}

func (stsz *SampleSizeBox) Values() []Field {
	values := append(stsz.values(),
		Field{"sample_size", Uint32(stsz.SampleSize)},
		Field{"sample_count", Uint32(stsz.SampleCount)},
	)
	if stsz.SampleSize == 0 {
		entries := make(Collection, 0, len(stsz.EntrySizes))
		for _, size := range stsz.EntrySizes {
			entries = append(entries, []Field{{"entry_size", Uint32(size)}})
		}
		values = append(values, Field{"entries", entries})
	}
	return values
}

// aligned(8) class ChunkOffsetBox extends FullBox(‘stco’, version = 0, 0) {
//     unsigned int(32) entry_count;
//     for (i=1; i <= entry_count; i++) {
//         unsigned int(32) chunk_offset;
//     }
// }
// aligned(8) class ChunkLargeOffsetBox extends FullBox(‘co64’, version = 0, 0) {
//     unsigned int(32) entry_count;
//     for (i=1; i <= entry_count; i++) {
//         unsigned int(64) chunk_offset;
//     }
// }

type ChunkOffsetBox struct {
	leaf
	FullBox
	EntryCount   uint32
	ChunkOffsets []uint64
}

func decodeChunkOffsets(p *Parser, box *BasicBox, wide bool) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	stco := &ChunkOffsetBox{FullBox: full, EntryCount: r.u32()}
	for i := uint32(0); r.ok() && i < stco.EntryCount; i++ {
		stco.ChunkOffsets = append(stco.ChunkOffsets, r.u32or64(wide))
	}
	if r.err != nil {
		return nil, r.err
	}
	return stco, nil
}

func decodeStco(p *Parser, content int64, box *BasicBox) (IBox, error) {
	return decodeChunkOffsets(p, box, false)
}

func decodeCo64(p *Parser, content int64, box *BasicBox) (IBox, error) {
	return decodeChunkOffsets(p, box, true)
}

func (stco *ChunkOffsetBox) Values() []Field {
	entries := make(Collection, 0, len(stco.ChunkOffsets))
	for _, offset := range stco.ChunkOffsets {
		entries = append(entries, []Field{{"chunk_offset", Uint64(offset)}})
	}
	return append(stco.values(),
		Field{"entry_count", Uint32(stco.EntryCount)},
		Field{"entries", entries},
	)
}

// aligned(8) class SyncSampleBox extends FullBox(‘stss’, version = 0, 0) {
//     unsigned int(32) entry_count;
//     for (i=0; i < entry_count; i++) {
//         unsigned int(32) sample_number;
//     }
// }

type SyncSampleBox struct {
	leaf
	FullBox
	EntryCount    uint32
	SampleNumbers []uint32
}

func decodeStss(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	stss := &SyncSampleBox{FullBox: full, EntryCount: r.u32()}
	for i := uint32(0); r.ok() && i < stss.EntryCount; i++ {
		stss.SampleNumbers = append(stss.SampleNumbers, r.u32())
	}
	if r.err != nil {
		return nil, r.err
	}
	return stss, nil
}

func (stss *SyncSampleBox) Values() []Field {
	return append(stss.values(),
		Field{"entry_count", Uint32(stss.EntryCount)},
		Field{"sample_number", Uint32Array(stss.SampleNumbers)},
	)
}
