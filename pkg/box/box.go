package box

import (
	"strings"

	"github.com/google/uuid"
)

const (
	BasicBoxLen    = 8
	LargeBoxLen    = 16
	UserTypeLen    = 16
	FullBoxLen     = 12
	sizeToEndOfBox = 0
	sizeLargeSize  = 1
)

func f(s string) [4]byte {
	return [4]byte([]byte(s))
}

var (
	TypeFTYP = f("ftyp")
	TypeSTYP = f("styp")
	TypePDIN = f("pdin")
	TypeMOOV = f("moov")
	TypeMVHD = f("mvhd")
	TypeTRAK = f("trak")
	TypeTKHD = f("tkhd")
	TypeEDTS = f("edts")
	TypeELST = f("elst")
	TypeMDIA = f("mdia")
	TypeMDHD = f("mdhd")
	TypeHDLR = f("hdlr")
	TypeMINF = f("minf")
	TypeVMHD = f("vmhd")
	TypeSMHD = f("smhd")
	TypeDINF = f("dinf")
	TypeSTBL = f("stbl")
	TypeSTTS = f("stts")
	TypeSTSC = f("stsc")
	TypeSTSZ = f("stsz")
	TypeSTCO = f("stco")
	TypeCO64 = f("co64")
	TypeSTSS = f("stss")
	TypeSUBS = f("subs")
	TypeSAIZ = f("saiz")
	TypeSAIO = f("saio")
	TypeUDTA = f("udta")
	TypeMVEX = f("mvex")
	TypeTREX = f("trex")
	TypePSSH = f("pssh")
	TypeMOOF = f("moof")
	TypeMFHD = f("mfhd")
	TypeTRAF = f("traf")
	TypeTFHD = f("tfhd")
	TypeTFDT = f("tfdt")
	TypeTRUN = f("trun")
	TypeSIDX = f("sidx")
	TypeMFRA = f("mfra")
	TypeMFRO = f("mfro")
	TypeMDAT = f("mdat")
	TypeFREE = f("free")
	TypeSKIP = f("skip")
	TypeUUID = f("uuid")
)

//	aligned(8) class Box (unsigned int(32) boxtype, optional unsigned int(8)[16] extended_type) {
//	    unsigned int(32) size;
//	    unsigned int(32) type = boxtype;
//	    if (size==1) {
//	       unsigned int(64) largesize;
//	    } else if (size==0) {
//	       // box extends to end of file
//	    }
//	    if (boxtype=='uuid') {
//	    unsigned int(8)[16] usertype = extended_type;
//	 }
//	}
//
// BasicBox is where a box was found: its header fields and the box enclosing
// it. It is never modified once the parser has built it, so nodes, payloads
// and errors share the same pointer.
type BasicBox struct {
	Offset     int64
	Size       uint64 // as declared, 0 means up to the end of the enclosing range
	Type       [4]byte
	UserType   [16]byte
	HeaderSize int
	Parent     *BasicBox
}

func (box *BasicBox) Name() string {
	return string(box.Type[:])
}

func (box *BasicBox) IsUUID() bool {
	return box.Type == TypeUUID
}

func (box *BasicBox) UserTypeString() string {
	if !box.IsUUID() {
		return ""
	}
	return uuid.UUID(box.UserType).String()
}

// End is the absolute offset right after the box, or -1 when the declared
// size is 0.
func (box *BasicBox) End() int64 {
	if box.Size == sizeToEndOfBox {
		return -1
	}
	return box.Offset + int64(box.Size)
}

func (box *BasicBox) Depth() (depth int) {
	for p := box.Parent; p != nil; p = p.Parent {
		depth++
	}
	return
}

// Path returns the chain of box types from the top level, like "moof/traf/trun".
func (box *BasicBox) Path() string {
	var names []string
	for p := box; p != nil; p = p.Parent {
		names = append(names, p.Name())
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// IBox is a decoded box payload.
type IBox interface {
	// Values lists the box fields in the order the box type declares them.
	Values() []Field
	// Children is a read-only view of the contained boxes, nil for leaf boxes.
	Children() []*Node
}

// Container is implemented by payloads made of other boxes.
type Container interface {
	IBox
	// TakeChildren hands the contained boxes over to the caller.
	TakeChildren() []*Node
}

// Node is one parsed box. Payload is nil when the box type is unknown.
type Node struct {
	*BasicBox
	Payload IBox
}

func (node *Node) Values() []Field {
	if node.Payload == nil {
		return nil
	}
	return node.Payload.Values()
}

func (node *Node) Children() []*Node {
	if node.Payload == nil {
		return nil
	}
	return node.Payload.Children()
}

// Value looks a field up by name.
func (node *Node) Value(name string) (Value, bool) {
	for _, field := range node.Values() {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Walk visits the nodes depth first in file order until fn returns false.
func Walk(nodes []*Node, fn func(*Node) bool) bool {
	for _, node := range nodes {
		if !fn(node) || !Walk(node.Children(), fn) {
			return false
		}
	}
	return true
}

// Find returns every box of the given type, depth first.
func Find(nodes []*Node, t [4]byte) (found []*Node) {
	Walk(nodes, func(node *Node) bool {
		if node.Type == t {
			found = append(found, node)
		}
		return true
	})
	return
}

// aligned(8) class FullBox(unsigned int(32) boxtype, unsigned int(8) v, bit(24) f) extends Box(boxtype) {
//     unsigned int(8) version = v;
//     bit(24) flags = f;
// }

type FullBox struct {
	Version uint8
	Flags   Flags
}

func (box *FullBox) values() []Field {
	return []Field{
		{"version", Uint8(box.Version)},
		{"flags", box.Flags},
	}
}
