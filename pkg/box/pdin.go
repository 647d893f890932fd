package box

// aligned(8) class ProgressiveDownloadInfoBox extends FullBox(‘pdin’, version = 0, 0) {
//     for (i=0; ; i++) { // to end of box
//         unsigned int(32) rate;
//         unsigned int(32) initial_delay;
//     }
// }

type PdinEntry struct {
	Rate         uint32
	InitialDelay uint32
}

type ProgressiveDownloadInfoBox struct {
	leaf
	FullBox
	Entries []PdinEntry
}

func decodePdin(p *Parser, content int64, box *BasicBox) (IBox, error) {
	full, err := p.ReadFullBox(box, 0)
	if err != nil {
		return nil, err
	}
	pdin := &ProgressiveDownloadInfoBox{FullBox: full}
	r := p.fields()
	for left := p.left(box, content); r.ok() && left > 0; left = p.left(box, content) {
		if left < 8 {
			return nil, tooSmall(box)
		}
		pdin.Entries = append(pdin.Entries, PdinEntry{Rate: r.u32(), InitialDelay: r.u32()})
	}
	if r.err != nil {
		return nil, r.err
	}
	return pdin, nil
}

func (pdin *ProgressiveDownloadInfoBox) Values() []Field {
	entries := make(Collection, 0, len(pdin.Entries))
	for _, entry := range pdin.Entries {
		entries = append(entries, []Field{
			{"rate", Uint32(entry.Rate)},
			{"initial_delay", Uint32(entry.InitialDelay)},
		})
	}
	return append(pdin.values(), Field{"entries", entries})
}
