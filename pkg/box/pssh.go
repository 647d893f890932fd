package box

import "github.com/google/uuid"

// aligned(8) class ProtectionSystemSpecificHeaderBox extends FullBox(‘pssh’, version, flags=0) {
//     unsigned int(8)[16] SystemID;
//     if (version > 0) {
//         unsigned int(32) KID_count;
//         {
//             unsigned int(8)[16] KID;
//         } [KID_count];
//     }
//     unsigned int(32) DataSize;
//     unsigned int(8)[DataSize] Data;
// }

type ProtectionSystemSpecificHeaderBox struct {
	leaf
	FullBox
	SystemID uuid.UUID
	KIDs     []uuid.UUID
	Data     []byte
}

func decodePssh(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0, 1)
	if err != nil {
		return nil, err
	}
	r := p.fields()
	pssh := &ProtectionSystemSpecificHeaderBox{FullBox: full, SystemID: r.uuid()}
	if full.Version > 0 {
		count := r.u32()
		for i := uint32(0); r.ok() && i < count; i++ {
			pssh.KIDs = append(pssh.KIDs, r.uuid())
		}
	}
	size := r.u32()
	if r.ok() && int64(size) > p.left(box, content) {
		return nil, &BoxTooLargeError{Box: box, Remaining: uint64(p.left(box, content))}
	}
	pssh.Data = r.bytes(int(size))
	if r.err != nil {
		return nil, r.err
	}
	return pssh, nil
}

func (pssh *ProtectionSystemSpecificHeaderBox) Values() []Field {
	values := append(pssh.values(), Field{"system_id", Utf8(pssh.SystemID.String())})
	if pssh.Version > 0 {
		kids := make(Collection, 0, len(pssh.KIDs))
		for _, kid := range pssh.KIDs {
			kids = append(kids, []Field{{"kid", Utf8(kid.String())}})
		}
		values = append(values,
			Field{"kid_count", Uint32(len(pssh.KIDs))},
			Field{"kids", kids},
		)
	}
	return append(values,
		Field{"data_size", Uint32(len(pssh.Data))},
		Field{"data", Uint8Array(pssh.Data)},
	)
}
