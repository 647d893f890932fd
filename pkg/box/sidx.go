package box

// aligned(8) class SegmentIndexBox extends FullBox(‘sidx’, version, 0) {
//     unsigned int(32) reference_ID;
//     unsigned int(32) timescale;
//     if (version==0) {
//         unsigned int(32) earliest_presentation_time;
//         unsigned int(32) first_offset;
//     } else {
//         unsigned int(64) earliest_presentation_time;
//         unsigned int(64) first_offset;
//     }
//     unsigned int(16) reserved = 0;
//     unsigned int(16) reference_count;
//     for(i=1; i <= reference_count; i++) {
//         bit (1) reference_type;
//         unsigned int(31) referenced_size;
//         unsigned int(32) subsegment_duration;
//         bit(1) starts_with_SAP;
//         unsigned int(3) SAP_type;
//         unsigned int(28) SAP_delta_time;
//     }
// }

type SidxReference struct {
	ReferenceType      uint8
	ReferencedSize     uint32
	SubsegmentDuration uint32
	StartsWithSAP      bool
	SAPType            uint8
	SAPDeltaTime       uint32
}

type SegmentIndexBox struct {
	leaf
	FullBox
	ReferenceID              uint32
	Timescale                uint32
	EarliestPresentationTime uint64
	FirstOffset              uint64
	Reserved                 uint16
	ReferenceCount           uint16
	References               []SidxReference
}

func decodeSidx(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r, wide := p.fields(), full.Version == 1
	sidx := &SegmentIndexBox{
		FullBox:                  full,
		ReferenceID:              r.u32(),
		Timescale:                r.u32(),
		EarliestPresentationTime: r.u32or64(wide),
		FirstOffset:              r.u32or64(wide),
		Reserved:                 r.u16(),
		ReferenceCount:           r.u16(),
	}
	for i := uint16(0); r.ok() && i < sidx.ReferenceCount; i++ {
		typeAndSize, duration, sap := r.u32(), r.u32(), r.u32()
		sidx.References = append(sidx.References, SidxReference{
			ReferenceType:      uint8(typeAndSize >> 31),
			ReferencedSize:     typeAndSize & 0x7fffffff,
			SubsegmentDuration: duration,
			StartsWithSAP:      sap>>31 == 1,
			SAPType:            uint8(sap>>28) & 0x07,
			SAPDeltaTime:       sap & 0x0fffffff,
		})
	}
	if r.err != nil {
		return nil, r.err
	}
	return sidx, nil
}

func (sidx *SegmentIndexBox) Values() []Field {
	references := make(Collection, 0, len(sidx.References))
	for _, ref := range sidx.References {
		references = append(references, []Field{
			{"reference_type", Uint8(ref.ReferenceType)},
			{"referenced_size", Uint32(ref.ReferencedSize)},
			{"subsegment_duration", Uint32(ref.SubsegmentDuration)},
			{"starts_with_sap", Bool(ref.StartsWithSAP)},
			{"sap_type", Uint8(ref.SAPType)},
			{"sap_delta_time", Uint32(ref.SAPDeltaTime)},
		})
	}
	return append(sidx.values(),
		Field{"reference_id", Uint32(sidx.ReferenceID)},
		Field{"timescale", Uint32(sidx.Timescale)},
		Field{"earliest_presentation_time", Uint64(sidx.EarliestPresentationTime)},
		Field{"first_offset", Uint64(sidx.FirstOffset)},
		Field{"reserved", Uint16(sidx.Reserved)},
		Field{"reference_count", Uint16(sidx.ReferenceCount)},
		Field{"references", references},
	)
}
