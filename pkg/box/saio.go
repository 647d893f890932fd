package box

// aligned(8) class SampleAuxiliaryInformationOffsetsBox extends FullBox(‘saio’, version, flags) {
//     if (flags & 1) {
//         unsigned int(32) aux_info_type;
//         unsigned int(32) aux_info_type_parameter;
//     }
//     unsigned int(32) entry_count;
//     if ( version == 0 ) {
//         unsigned int(32) offset[ entry_count ];
//     } else {
//         unsigned int(64) offset[ entry_count ];
//     }
// }

const SAIO_FLAG_AUX_INFO_TYPE uint32 = 0x000001

type SampleAuxiliaryInformationOffsetsBox struct {
	leaf
	FullBox
	AuxInfoType          uint32
	AuxInfoTypeParameter uint32
	EntryCount           uint32
	Offsets              []uint64
}

func decodeSaio(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	saio := &SampleAuxiliaryInformationOffsetsBox{FullBox: full}
	if full.Flags.Has(SAIO_FLAG_AUX_INFO_TYPE) {
		saio.AuxInfoType = r.u32()
		saio.AuxInfoTypeParameter = r.u32()
	}
	saio.EntryCount = r.u32()
	for i := uint32(0); r.ok() && i < saio.EntryCount; i++ {
		saio.Offsets = append(saio.Offsets, r.u32or64(full.Version == 1))
	}
	if r.err != nil {
		return nil, r.err
	}
	return saio, nil
}

func (saio *SampleAuxiliaryInformationOffsetsBox) Values() []Field {
	values := saio.values()
	if saio.Flags.Has(SAIO_FLAG_AUX_INFO_TYPE) {
		values = append(values,
			Field{"aux_info_type", Uint32(saio.AuxInfoType)},
			Field{"aux_info_type_parameter", Uint32(saio.AuxInfoTypeParameter)},
		)
	}
	entries := make(Collection, 0, len(saio.Offsets))
	for _, offset := range saio.Offsets {
		entries = append(entries, []Field{{"offset", Uint64(offset)}})
	}
	return append(values,
		Field{"entry_count", Uint32(saio.EntryCount)},
		Field{"offsets", entries},
	)
}
