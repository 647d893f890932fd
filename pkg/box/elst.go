package box

// aligned(8) class EditListBox extends FullBox(‘elst’, version, 0) {
//     unsigned int(32) entry_count;
//     for (i=1; i <= entry_count; i++) {
//         if (version==1) {
//             unsigned int(64) segment_duration;
//             int(64) media_time;
//         } else { // version==0
//             unsigned int(32) segment_duration;
//             int(32) media_time;
//         }
//         int(16) media_rate_integer;
//         int(16) media_rate_fraction = 0;
//     }
// }

type ElstEntry struct {
	SegmentDuration   uint64
	MediaTime         int64
	MediaRateInteger  int16
	MediaRateFraction int16
}

type EditListBox struct {
	leaf
	FullBox
	EntryCount uint32
	Entries    []ElstEntry
}

func decodeElst(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r, wide := p.fields(), full.Version == 1
	elst := &EditListBox{FullBox: full, EntryCount: r.u32()}
	for i := uint32(0); r.ok() && i < elst.EntryCount; i++ {
		var entry ElstEntry
		entry.SegmentDuration = r.u32or64(wide)
		if wide {
			entry.MediaTime = r.i64()
		} else {
			entry.MediaTime = int64(r.i32())
		}
		entry.MediaRateInteger = r.i16()
		entry.MediaRateFraction = r.i16()
		elst.Entries = append(elst.Entries, entry)
	}
	if r.err != nil {
		return nil, r.err
	}
	return elst, nil
}

func (elst *EditListBox) Values() []Field {
	entries := make(Collection, 0, len(elst.Entries))
	for _, entry := range elst.Entries {
		entries = append(entries, []Field{
			{"segment_duration", Uint64(entry.SegmentDuration)},
			{"media_time", Int64(entry.MediaTime)},
			{"media_rate_integer", Int16(entry.MediaRateInteger)},
			{"media_rate_fraction", Int16(entry.MediaRateFraction)},
		})
	}
	return append(elst.values(),
		Field{"entry_count", Uint32(elst.EntryCount)},
		Field{"entries", entries},
	)
}
