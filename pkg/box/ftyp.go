package box

// aligned(8) class FileTypeBox extends Box(‘ftyp’) {
//     unsigned int(32) major_brand;
//     unsigned int(32) minor_version;
//     unsigned int(32) compatible_brands[]; // to end of the box
// }
//
// styp shares the layout.

type FileTypeBox struct {
	leaf
	MajorBrand       string
	MinorVersion     uint32
	CompatibleBrands []string
}

func decodeFtyp(p *Parser, content int64, box *BasicBox) (IBox, error) {
	if content != ToEnd && content < 8 {
		return nil, tooSmall(box)
	}
	r := p.fields()
	ftyp := &FileTypeBox{
		MajorBrand:   r.str(4),
		MinorVersion: r.u32(),
	}
	for left := p.left(box, content); r.ok() && left > 0; left = p.left(box, content) {
		if left < 4 {
			return nil, tooSmall(box)
		}
		ftyp.CompatibleBrands = append(ftyp.CompatibleBrands, r.str(4))
	}
	if r.err != nil {
		return nil, r.err
	}
	return ftyp, nil
}

func (ftyp *FileTypeBox) Values() []Field {
	return []Field{
		{"major_brand", Utf8(ftyp.MajorBrand)},
		{"minor_brand", Uint32(ftyp.MinorVersion)},
		{"compatible_brands", Utf8Array(ftyp.CompatibleBrands)},
	}
}
