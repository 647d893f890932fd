package box

// aligned(8) class TrackFragmentHeaderBox extends FullBox(‘tfhd’, 0, tf_flags){
//     unsigned int(32) track_ID;
//     // all the following are optional fields
//     unsigned int(64) base_data_offset;
//     unsigned int(32) sample_description_index;
//     unsigned int(32) default_sample_duration;
//     unsigned int(32) default_sample_size;
//     unsigned int(32) default_sample_flags
// }

const (
	TF_FLAG_BASE_DATA_OFFSET                 uint32 = 0x000001
	TF_FLAG_SAMPLE_DESCRIPTION_INDEX_PRESENT uint32 = 0x000002
	TF_FLAG_DEFAULT_SAMPLE_DURATION_PRESENT  uint32 = 0x000008
	TF_FLAG_DEFAULT_SAMPLE_SIZE_PRESENT      uint32 = 0x000010
	TF_FLAG_DEFAULT_SAMPLE_FLAGS_PRESENT     uint32 = 0x000020
	TF_FLAG_DURATION_IS_EMPTY                uint32 = 0x010000
	TF_FLAG_DEFAULT_BASE_IS_MOOF             uint32 = 0x020000
)

// Optional fields are nil when their flag is clear.
type TrackFragmentHeaderBox struct {
	leaf
	FullBox
	TrackID                uint32
	BaseDataOffset         *uint64
	SampleDescriptionIndex *uint32
	DefaultSampleDuration  *uint32
	DefaultSampleSize      *uint32
	DefaultSampleFlags     *uint32
}

func optional[T any](present bool, read func() T) *T {
	if !present {
		return nil
	}
	v := read()
	return &v
}

func decodeTfhd(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	tfhd := &TrackFragmentHeaderBox{FullBox: full, TrackID: r.u32()}
	tfhd.BaseDataOffset = optional(full.Flags.Has(TF_FLAG_BASE_DATA_OFFSET), r.u64)
	tfhd.SampleDescriptionIndex = optional(full.Flags.Has(TF_FLAG_SAMPLE_DESCRIPTION_INDEX_PRESENT), r.u32)
	tfhd.DefaultSampleDuration = optional(full.Flags.Has(TF_FLAG_DEFAULT_SAMPLE_DURATION_PRESENT), r.u32)
	tfhd.DefaultSampleSize = optional(full.Flags.Has(TF_FLAG_DEFAULT_SAMPLE_SIZE_PRESENT), r.u32)
	tfhd.DefaultSampleFlags = optional(full.Flags.Has(TF_FLAG_DEFAULT_SAMPLE_FLAGS_PRESENT), r.u32)
	if r.err != nil {
		return nil, r.err
	}
	return tfhd, nil
}

func (tfhd *TrackFragmentHeaderBox) Values() []Field {
	values := append(tfhd.values(), Field{"track_id", Uint32(tfhd.TrackID)})
	if tfhd.BaseDataOffset != nil {
		values = append(values, Field{"base_data_offset", Uint64(*tfhd.BaseDataOffset)})
	}
	if tfhd.SampleDescriptionIndex != nil {
		values = append(values, Field{"sample_description_index", Uint32(*tfhd.SampleDescriptionIndex)})
	}
	if tfhd.DefaultSampleDuration != nil {
		values = append(values, Field{"default_sample_duration", Uint32(*tfhd.DefaultSampleDuration)})
	}
	if tfhd.DefaultSampleSize != nil {
		values = append(values, Field{"default_sample_size", Uint32(*tfhd.DefaultSampleSize)})
	}
	if tfhd.DefaultSampleFlags != nil {
		values = append(values, Field{"default_sample_flags", Uint32(*tfhd.DefaultSampleFlags)})
	}
	return values
}
