package render

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"m7s.live/inspector/pkg/box"
)

func mkbox(typ string, content ...[]byte) []byte {
	body := bytes.Join(content, nil)
	b := binary.BigEndian.AppendUint32(nil, uint32(8+len(body)))
	b = append(b, typ...)
	return append(b, body...)
}

func be32(v ...uint32) (b []byte) {
	for _, n := range v {
		b = binary.BigEndian.AppendUint32(b, n)
	}
	return
}

var ftyp = []byte{0x00, 0x00, 0x00, 0x14, 0x66, 0x74, 0x79, 0x70, 0x69, 0x73, 0x6F, 0x6D, 0x00, 0x00, 0x02, 0x00, 0x69, 0x73, 0x6F, 0x6D}

func parse(t *testing.T, data ...[]byte) []*box.Node {
	t.Helper()
	nodes, err := box.Parse(bytes.NewReader(bytes.Join(data, nil)))
	if err != nil {
		t.Fatal(err)
	}
	return nodes
}

func fragment() []byte {
	return mkbox("moof",
		mkbox("mfhd", be32(0, 1)),
		mkbox("traf", mkbox("tfhd", be32(0x020000, 1))),
	)
}

func TestText(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		var out strings.Builder
		if err := Text(&out, parse(t, ftyp, mkbox("abcd", be32(1))), Options{}); err != nil {
			t.Fatal(err)
		}
		expected := "ftyp (offset: 0, size: 20)\n" +
			"-------------------------------\n" +
			"major_brand: isom\n" +
			"minor_brand: 512\n" +
			"compatible_brands: isom\n" +
			"\n" +
			"abcd (offset: 20, size: 12)\n" +
			"-------------------------------\n" +
			"no data available yet on this box\n"
		if out.String() != expected {
			t.Errorf("unexpected output:\n%s", out.String())
		}
	})
	t.Run("nested", func(t *testing.T) {
		var out strings.Builder
		if err := Text(&out, parse(t, fragment()), Options{}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "\n\t\ttfhd (offset: 32, size: 16)\n") {
			t.Errorf("tfhd not indented twice:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "\tsequence_number: 1\n") {
			t.Errorf("missing sequence number:\n%s", out.String())
		}
	})
}

func TestCollections(t *testing.T) {
	stts := mkbox("stts", be32(0, 2, 10, 3000, 1, 1500))
	t.Run("collapsed", func(t *testing.T) {
		var out strings.Builder
		if err := Text(&out, parse(t, stts), Options{}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "entries: "+collapsed+"\n") {
			t.Errorf("collection not collapsed:\n%s", out.String())
		}
	})
	t.Run("expanded", func(t *testing.T) {
		var out strings.Builder
		if err := Text(&out, parse(t, stts), Options{ShowAll: true}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "\tsample_count: 10\n\tsample_delta: 3000\n\n\tsample_count: 1\n\tsample_delta: 1500\n") {
			t.Errorf("collection not expanded:\n%s", out.String())
		}
	})
	t.Run("color", func(t *testing.T) {
		var out strings.Builder
		if err := Text(&out, parse(t, stts), Options{Color: true}); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), red+"stts"+reset) {
			t.Errorf("title not painted: %q", out.String())
		}
	})
}

func TestYAML(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		var out bytes.Buffer
		if err := YAML(&out, parse(t, ftyp, fragment(), mkbox("abcd")), Options{}); err != nil {
			t.Fatal(err)
		}
		var doc []struct {
			Type     string
			Name     string
			Offset   int64
			Size     uint64
			Decoded  *bool
			Values   map[string]any
			Children []map[string]any
		}
		if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
			t.Fatal(err)
		}
		if len(doc) != 3 || doc[0].Type != "ftyp" || doc[0].Size != 20 || doc[1].Offset != 20 {
			t.Fatalf("unexpected document %+v", doc)
		}
		if doc[0].Name != "File Type Box" || doc[2].Name != "" {
			t.Errorf("unexpected long names %q, %q", doc[0].Name, doc[2].Name)
		}
		if doc[0].Values["major_brand"] != "isom" || doc[0].Values["minor_brand"] != 512 {
			t.Errorf("unexpected ftyp values %v", doc[0].Values)
		}
		if len(doc[1].Children) != 2 || doc[2].Decoded == nil || *doc[2].Decoded {
			t.Errorf("unexpected boxes %+v", doc[1:])
		}
		if s := out.String(); strings.Index(s, "major_brand") > strings.Index(s, "minor_brand") {
			t.Error("field order lost")
		}
	})
}

func TestFilter(t *testing.T) {
	nodes := parse(t, ftyp, fragment())
	t.Run("descends", func(t *testing.T) {
		kept := Filter(nodes, []string{"tfhd", "mfhd"})
		if len(kept) != 2 || kept[0].Name() != "mfhd" || kept[1].Name() != "tfhd" {
			t.Fatalf("kept %v", kept)
		}
		if TotalSize(kept) != 32 {
			t.Errorf("total size %d", TotalSize(kept))
		}
	})
	t.Run("keeps subtree", func(t *testing.T) {
		kept := Filter(nodes, []string{"moof", "tfhd"})
		if len(kept) != 1 || kept[0].Name() != "moof" {
			t.Fatalf("kept %v", kept)
		}
	})
	t.Run("nothing", func(t *testing.T) {
		if kept := Filter(nodes, []string{"mdat"}); len(kept) != 0 || TotalSize(kept) != 0 {
			t.Errorf("kept %v", kept)
		}
	})
	t.Run("all", func(t *testing.T) {
		if TotalSize(nodes) != 20+48 {
			t.Errorf("total size %d", TotalSize(nodes))
		}
	})
}
