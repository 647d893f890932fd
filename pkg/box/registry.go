package box

import "maps"

// DecodeFunc decodes the content of one box. The reader is positioned on the
// first content byte and content is the number of content bytes, or ToEnd.
// The parser checks afterwards that exactly content bytes were consumed.
type DecodeFunc func(p *Parser, content int64, box *BasicBox) (IBox, error)

type Decoder struct {
	Name   string // long box name, e.g. "Movie Box"
	Decode DecodeFunc
}

type Registry map[[4]byte]Decoder

var DefaultRegistry = Registry{
	TypeFTYP: {"File Type Box", decodeFtyp},
	TypeSTYP: {"Segment Type Box", decodeFtyp},
	TypePDIN: {"Progressive Download Information Box", decodePdin},
	TypeFREE: {"Free Space Box", decodeSkipped},
	TypeSKIP: {"Free Space Box", decodeSkipped},
	TypeMDAT: {"Media Data Box", decodeSkipped},
	TypeSIDX: {"Segment Index Box", decodeSidx},

	TypeMOOV: {"Movie Box", decodeContainer},
	TypeMVHD: {"Movie Header Box", decodeMvhd},
	TypeTRAK: {"Track Box", decodeContainer},
	TypeTKHD: {"Track Header Box", decodeTkhd},
	TypeEDTS: {"Edit Box", decodeContainer},
	TypeELST: {"Edit List Box", decodeElst},
	TypeMDIA: {"Media Box", decodeContainer},
	TypeMDHD: {"Media Header Box", decodeMdhd},
	TypeHDLR: {"Handler Reference Box", decodeHdlr},
	TypeMINF: {"Media Information Box", decodeContainer},
	TypeVMHD: {"Video Media Header Box", decodeVmhd},
	TypeSMHD: {"Sound Media Header Box", decodeSmhd},
	TypeDINF: {"Data Information Box", decodeContainer},
	TypeSTBL: {"Sample Table Box", decodeContainer},
	TypeSTTS: {"Decoding Time to Sample Box", decodeStts},
	TypeSTSC: {"Sample To Chunk Box", decodeStsc},
	TypeSTSZ: {"Sample Size Box", decodeStsz},
	TypeSTCO: {"Chunk Offset Box", decodeStco},
	TypeCO64: {"Chunk Large Offset Box", decodeCo64},
	TypeSTSS: {"Sync Sample Box", decodeStss},
	TypeSUBS: {"Sub-Sample Information Box", decodeSubs},
	TypeSAIZ: {"Sample Auxiliary Information Sizes Box", decodeSaiz},
	TypeSAIO: {"Sample Auxiliary Information Offsets Box", decodeSaio},
	TypeUDTA: {"User Data Box", decodeContainer},
	TypeMVEX: {"Movie Extends Box", decodeContainer},
	TypeTREX: {"Track Extends Box", decodeTrex},
	TypePSSH: {"Protection System Specific Header Box", decodePssh},

	TypeMOOF: {"Movie Fragment Box", decodeContainer},
	TypeMFHD: {"Movie Fragment Header Box", decodeMfhd},
	TypeTRAF: {"Track Fragment Box", decodeContainer},
	TypeTFHD: {"Track Fragment Header Box", decodeTfhd},
	TypeTFDT: {"Track Fragment Decode Time Box", decodeTfdt},
	TypeTRUN: {"Track Fragment Run Box", decodeTrun},
	TypeMFRA: {"Movie Fragment Random Access Box", decodeContainer},
	TypeMFRO: {"Movie Fragment Random Access Offset Box", decodeMfro},
}

// With returns a copy of the registry with d registered for t.
func (r Registry) With(t [4]byte, d Decoder) Registry {
	registry := maps.Clone(r)
	registry[t] = d
	return registry
}

// LongName is the descriptive name of a box type, empty when unknown.
func (r Registry) LongName(t [4]byte) string {
	return r[t].Name
}
