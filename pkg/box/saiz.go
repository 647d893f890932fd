package box

// aligned(8) class SampleAuxiliaryInformationSizesBox extends FullBox(‘saiz’, version = 0, flags) {
//     if (flags & 1) {
//         unsigned int(32) aux_info_type;
//         unsigned int(32) aux_info_type_parameter;
//     }
//     unsigned int(8) default_sample_info_size;
//     unsigned int(32) sample_count;
//     if (default_sample_info_size == 0) {
//         unsigned int(8) sample_info_size[ sample_count ];
//     }
// }

const SAIZ_FLAG_AUX_INFO_TYPE uint32 = 0x000001

type SampleAuxiliaryInformationSizesBox struct {
	leaf
	FullBox
	AuxInfoType           uint32
	AuxInfoTypeParameter  uint32
	DefaultSampleInfoSize uint8
	SampleCount           uint32
	SampleInfoSizes       []uint8
}

func decodeSaiz(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	saiz := &SampleAuxiliaryInformationSizesBox{FullBox: full}
	if full.Flags.Has(SAIZ_FLAG_AUX_INFO_TYPE) {
		saiz.AuxInfoType = r.u32()
		saiz.AuxInfoTypeParameter = r.u32()
	}
	saiz.DefaultSampleInfoSize = r.u8()
	saiz.SampleCount = r.u32()
	if saiz.DefaultSampleInfoSize == 0 {
		for i := uint32(0); r.ok() && i < saiz.SampleCount; i++ {
			saiz.SampleInfoSizes = append(saiz.SampleInfoSizes, r.u8())
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return saiz, nil
}

func (saiz *SampleAuxiliaryInformationSizesBox) Values() []Field {
	values := saiz.values()
	if saiz.Flags.Has(SAIZ_FLAG_AUX_INFO_TYPE) {
		values = append(values,
			Field{"aux_info_type", Uint32(saiz.AuxInfoType)},
			Field{"aux_info_type_parameter", Uint32(saiz.AuxInfoTypeParameter)},
		)
	}
	values = append(values,
		Field{"default_sample_info_size", Uint8(saiz.DefaultSampleInfoSize)},
		Field{"sample_count", Uint32(saiz.SampleCount)},
	)
	if saiz.DefaultSampleInfoSize == 0 {
		sizes := make(Collection, 0, len(saiz.SampleInfoSizes))
		for _, size := range saiz.SampleInfoSizes {
			sizes = append(sizes, []Field{{"sample_info_size", Uint8(size)}})
		}
		values = append(values, Field{"sample_info_sizes", sizes})
	}
	return values
}
