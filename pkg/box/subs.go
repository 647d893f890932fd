package box

// aligned(8) class SubSampleInformationBox extends FullBox(‘subs’, version, flags) {
//     unsigned int(32) entry_count;
//     int i,j;
//     for (i=0; i < entry_count; i++) {
//         unsigned int(32) sample_delta;
//         unsigned int(16) subsample_count;
//         if (subsample_count > 0) {
//             for (j=0; j < subsample_count; j++) {
//                 if(version == 1) {
//                     unsigned int(32) subsample_size;
//                 } else {
//                     unsigned int(16) subsample_size;
//                 }
//                 unsigned int(8) subsample_priority;
//                 unsigned int(8) discardable;
//                 unsigned int(32) codec_specific_parameters;
//             }
//         }
//     }
// }

type SubSample struct {
	Size                    uint32
	Priority                uint8
	Discardable             uint8
	CodecSpecificParameters uint32
}

type SubsEntry struct {
	SampleDelta uint32
	SubSamples  []SubSample
}

type SubSampleInformationBox struct {
	leaf
	FullBox
	EntryCount uint32
	Entries    []SubsEntry
}

func decodeSubs(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	subs := &SubSampleInformationBox{FullBox: full, EntryCount: r.u32()}
	for i := uint32(0); r.ok() && i < subs.EntryCount; i++ {
		entry := SubsEntry{SampleDelta: r.u32()}
		count := r.u16()
		for j := uint16(0); r.ok() && j < count; j++ {
			var sub SubSample
			if full.Version == 1 {
				sub.Size = r.u32()
			} else {
				sub.Size = uint32(r.u16())
			}
			sub.Priority = r.u8()
			sub.Discardable = r.u8()
			sub.CodecSpecificParameters = r.u32()
			entry.SubSamples = append(entry.SubSamples, sub)
		}
		subs.Entries = append(subs.Entries, entry)
	}
	if r.err != nil {
		return nil, r.err
	}
	return subs, nil
}

func (subs *SubSampleInformationBox) Values() []Field {
	entries := make(Collection, 0, len(subs.Entries))
	for _, entry := range subs.Entries {
		subSamples := make(Collection, 0, len(entry.SubSamples))
		for _, sub := range entry.SubSamples {
			subSamples = append(subSamples, []Field{
				{"subsample_size", Uint32(sub.Size)},
				{"subsample_priority", Uint8(sub.Priority)},
				{"discardable", Uint8(sub.Discardable)},
				{"codec_specific_parameters", Uint32(sub.CodecSpecificParameters)},
			})
		}
		entries = append(entries, []Field{
			{"sample_delta", Uint32(entry.SampleDelta)},
			{"subsample_count", Uint16(len(entry.SubSamples))},
			{"subsamples", subSamples},
		})
	}
	return append(subs.values(),
		Field{"entry_count", Uint32(subs.EntryCount)},
		Field{"entries", entries},
	)
}
