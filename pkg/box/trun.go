package box

// aligned(8) class TrackRunBox extends FullBox(‘trun’, version, tr_flags) {
//      unsigned int(32) sample_count;
//      // the following are optional fields
//      signed int(32) data_offset;
//       unsigned int(32) first_sample_flags;
//      // all fields in the following array are optional
//      {
//          unsigned int(32) sample_duration;
//          unsigned int(32) sample_size;
//          unsigned int(32) sample_flags
//          if (version == 0)
//          {
//              unsigned int(32) sample_composition_time_offset;
//          }
//          else
//          {
//              signed int(32) sample_composition_time_offset;
//          }
//      }[ sample_count ]
// }

const (
	TR_FLAG_DATA_OFFSET                  uint32 = 0x000001
	TR_FLAG_DATA_FIRST_SAMPLE_FLAGS      uint32 = 0x000004
	TR_FLAG_DATA_SAMPLE_DURATION         uint32 = 0x000100
	TR_FLAG_DATA_SAMPLE_SIZE             uint32 = 0x000200
	TR_FLAG_DATA_SAMPLE_FLAGS            uint32 = 0x000400
	TR_FLAG_DATA_SAMPLE_COMPOSITION_TIME uint32 = 0x000800

	trSampleFields = TR_FLAG_DATA_SAMPLE_DURATION | TR_FLAG_DATA_SAMPLE_SIZE | TR_FLAG_DATA_SAMPLE_FLAGS | TR_FLAG_DATA_SAMPLE_COMPOSITION_TIME
)

type TrunEntry struct {
	SampleDuration              *uint32
	SampleSize                  *uint32
	SampleFlags                 *uint32
	SampleCompositionTimeOffset *int64
}

type TrackRunBox struct {
	leaf
	FullBox
	SampleCount      uint32
	DataOffset       *int32
	FirstSampleFlags *uint32
	Entries          []TrunEntry
}

func decodeTrun(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r, flags := p.fields(), full.Flags
	trun := &TrackRunBox{FullBox: full, SampleCount: r.u32()}
	trun.DataOffset = optional(flags.Has(TR_FLAG_DATA_OFFSET), r.i32)
	trun.FirstSampleFlags = optional(flags.Has(TR_FLAG_DATA_FIRST_SAMPLE_FLAGS), r.u32)
	compositionOffset := func() int64 {
		if full.Version == 0 {
			return int64(r.u32())
		}
		return int64(r.i32())
	}
	// with no per-sample field set the count alone describes the run
	for i := uint32(0); flags.Has(trSampleFields) && r.ok() && i < trun.SampleCount; i++ {
		trun.Entries = append(trun.Entries, TrunEntry{
			SampleDuration:              optional(flags.Has(TR_FLAG_DATA_SAMPLE_DURATION), r.u32),
			SampleSize:                  optional(flags.Has(TR_FLAG_DATA_SAMPLE_SIZE), r.u32),
			SampleFlags:                 optional(flags.Has(TR_FLAG_DATA_SAMPLE_FLAGS), r.u32),
			SampleCompositionTimeOffset: optional(flags.Has(TR_FLAG_DATA_SAMPLE_COMPOSITION_TIME), compositionOffset),
		})
	}
	if r.err != nil {
		return nil, r.err
	}
	return trun, nil
}

func (trun *TrackRunBox) Values() []Field {
	values := append(trun.values(), Field{"sample_count", Uint32(trun.SampleCount)})
	if trun.DataOffset != nil {
		values = append(values, Field{"data_offset", Int32(*trun.DataOffset)})
	}
	if trun.FirstSampleFlags != nil {
		values = append(values, Field{"first_sample_flags", Uint32(*trun.FirstSampleFlags)})
	}
	samples := make(Collection, 0, len(trun.Entries))
	for _, entry := range trun.Entries {
		var sample []Field
		if entry.SampleDuration != nil {
			sample = append(sample, Field{"sample_duration", Uint32(*entry.SampleDuration)})
		}
		if entry.SampleSize != nil {
			sample = append(sample, Field{"sample_size", Uint32(*entry.SampleSize)})
		}
		if entry.SampleFlags != nil {
			sample = append(sample, Field{"sample_flags", Uint32(*entry.SampleFlags)})
		}
		if entry.SampleCompositionTimeOffset != nil {
			sample = append(sample, Field{"sample_composition_time_offset", Int64(*entry.SampleCompositionTimeOffset)})
		}
		samples = append(samples, sample)
	}
	return append(values, Field{"samples", samples})
}
