package box

import (
	"errors"
	"testing"
)

func decodeOne(t *testing.T, data []byte) *Node {
	t.Helper()
	nodes, err := parseBytes(t, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(nodes))
	}
	return nodes[0]
}

func TestHdlr(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		node := decodeOne(t, mkbox("hdlr", fullHeader(0, 0), be32(0), []byte("vide"), be32(0, 0, 0), []byte("VideoHandler\x00")))
		hdlr := node.Payload.(*HandlerBox)
		if hdlr.HandlerType != "vide" || hdlr.Name != "VideoHandler" {
			t.Errorf("unexpected %+v", hdlr)
		}
		if len(hdlr.Values()) != 6 {
			t.Errorf("expected 6 values, got %d", len(hdlr.Values()))
		}
	})
	t.Run("empty name", func(t *testing.T) {
		node := decodeOne(t, mkbox("hdlr", fullHeader(0, 0), be32(0), []byte("soun"), be32(0, 0, 0)))
		if hdlr := node.Payload.(*HandlerBox); hdlr.Name != "" {
			t.Errorf("name %q", hdlr.Name)
		}
	})
	t.Run("too short", func(t *testing.T) {
		_, err := parseBytes(t, mkbox("hdlr", fullHeader(0, 0), be32(0)))
		if !errors.Is(err, ErrBoxTooSmall) {
			t.Fatalf("expected box too small, got %v", err)
		}
	})
}

func TestTrun(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		flags := TR_FLAG_DATA_OFFSET | TR_FLAG_DATA_SAMPLE_SIZE | TR_FLAG_DATA_SAMPLE_COMPOSITION_TIME
		data := mkbox("trun", fullHeader(1, flags), be32(2), be32(0xfffffff0),
			be32(100), be32(0xfffffc18),
			be32(200), be32(1000),
		)
		trun := decodeOne(t, data).Payload.(*TrackRunBox)
		if trun.SampleCount != 2 || trun.DataOffset == nil || *trun.DataOffset != -16 || trun.FirstSampleFlags != nil {
			t.Fatalf("unexpected %+v", trun)
		}
		first := trun.Entries[0]
		if first.SampleDuration != nil || *first.SampleSize != 100 || *first.SampleCompositionTimeOffset != -1000 {
			t.Errorf("unexpected first sample %+v", first)
		}
		if *trun.Entries[1].SampleSize != 200 || *trun.Entries[1].SampleCompositionTimeOffset != 1000 {
			t.Errorf("unexpected second sample %+v", trun.Entries[1])
		}
	})
	t.Run("count without sample fields", func(t *testing.T) {
		data := mkbox("trun", fullHeader(0, TR_FLAG_DATA_OFFSET), be32(0xffffffff), be32(8))
		trun := decodeOne(t, data).Payload.(*TrackRunBox)
		if trun.SampleCount != 0xffffffff || *trun.DataOffset != 8 || len(trun.Entries) != 0 {
			t.Errorf("unexpected %+v", trun)
		}
	})
	t.Run("version 0 offsets are unsigned", func(t *testing.T) {
		data := mkbox("trun", fullHeader(0, TR_FLAG_DATA_SAMPLE_COMPOSITION_TIME), be32(1), be32(0xfffffc18))
		trun := decodeOne(t, data).Payload.(*TrackRunBox)
		if *trun.Entries[0].SampleCompositionTimeOffset != 0xfffffc18 {
			t.Errorf("offset %d", *trun.Entries[0].SampleCompositionTimeOffset)
		}
	})
}

func TestTfhd(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		flags := TF_FLAG_BASE_DATA_OFFSET | TF_FLAG_DEFAULT_SAMPLE_SIZE_PRESENT
		tfhd := decodeOne(t, mkbox("tfhd", fullHeader(0, flags), be32(1), be64(1024), be32(512))).Payload.(*TrackFragmentHeaderBox)
		if tfhd.TrackID != 1 || *tfhd.BaseDataOffset != 1024 || *tfhd.DefaultSampleSize != 512 {
			t.Errorf("unexpected %+v", tfhd)
		}
		if tfhd.SampleDescriptionIndex != nil || tfhd.DefaultSampleDuration != nil || tfhd.DefaultSampleFlags != nil {
			t.Error("absent fields decoded")
		}
		if len(tfhd.Values()) != 5 {
			t.Errorf("expected 5 values, got %d", len(tfhd.Values()))
		}
	})
}

func TestSidx(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("sidx", fullHeader(1, 0), be32(1, 90000), be64(0, 0), be16(0, 1),
			be32(0x80000400, 180000, 0x9000000a))
		sidx := decodeOne(t, data).Payload.(*SegmentIndexBox)
		if sidx.ReferenceCount != 1 || len(sidx.References) != 1 {
			t.Fatalf("unexpected %+v", sidx)
		}
		ref := sidx.References[0]
		if ref.ReferenceType != 1 || ref.ReferencedSize != 0x400 || ref.SubsegmentDuration != 180000 {
			t.Errorf("unexpected reference %+v", ref)
		}
		if !ref.StartsWithSAP || ref.SAPType != 1 || ref.SAPDeltaTime != 10 {
			t.Errorf("unexpected sap %+v", ref)
		}
	})
}

func TestMdhd(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("mdhd", fullHeader(0, 0), be32(0, 0, 90000, 180000), be16(0x55c4, 0))
		mdhd := decodeOne(t, data).Payload.(*MediaHeaderBox)
		if mdhd.Timescale != 90000 || mdhd.Duration != 180000 || string(mdhd.Language[:]) != "und" {
			t.Errorf("unexpected %+v", mdhd)
		}
	})
}

func TestSaizSaio(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("traf",
			mkbox("saiz", fullHeader(0, 0), []byte{0}, be32(3), []byte{8, 16, 24}),
			mkbox("saio", fullHeader(1, SAIO_FLAG_AUX_INFO_TYPE), []byte("cenc"), be32(0), be32(1), be64(4096)),
		)
		children := decodeOne(t, data).Children()
		saiz := children[0].Payload.(*SampleAuxiliaryInformationSizesBox)
		if saiz.SampleCount != 3 || len(saiz.SampleInfoSizes) != 3 || saiz.SampleInfoSizes[2] != 24 {
			t.Errorf("unexpected %+v", saiz)
		}
		saio := children[1].Payload.(*SampleAuxiliaryInformationOffsetsBox)
		if saio.AuxInfoType != 0x63656e63 || saio.EntryCount != 1 || saio.Offsets[0] != 4096 {
			t.Errorf("unexpected %+v", saio)
		}
	})
}

func TestSubs(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("subs", fullHeader(0, 0), be32(1), be32(1), be16(2),
			be16(10), []byte{1, 0}, be32(0),
			be16(20), []byte{0, 1}, be32(7),
		)
		subs := decodeOne(t, data).Payload.(*SubSampleInformationBox)
		if len(subs.Entries) != 1 || len(subs.Entries[0].SubSamples) != 2 {
			t.Fatalf("unexpected %+v", subs)
		}
		if sub := subs.Entries[0].SubSamples[1]; sub.Size != 20 || sub.Discardable != 1 || sub.CodecSpecificParameters != 7 {
			t.Errorf("unexpected %+v", sub)
		}
	})
}

func TestSampleTables(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("stbl",
			mkbox("stts", fullHeader(0, 0), be32(1, 10, 3000)),
			mkbox("stsc", fullHeader(0, 0), be32(1, 1, 10, 1)),
			mkbox("stsz", fullHeader(0, 0), be32(0, 2, 300, 400)),
			mkbox("co64", fullHeader(0, 0), be32(1), be64(1<<33)),
			mkbox("stss", fullHeader(0, 0), be32(2, 1, 6)),
		)
		children := decodeOne(t, data).Children()
		if len(children) != 5 {
			t.Fatalf("expected 5 children, got %d", len(children))
		}
		if stts := children[0].Payload.(*TimeToSampleBox); stts.Entries[0].SampleDelta != 3000 {
			t.Errorf("unexpected %+v", stts)
		}
		if stsz := children[2].Payload.(*SampleSizeBox); len(stsz.EntrySizes) != 2 || stsz.EntrySizes[1] != 400 {
			t.Errorf("unexpected %+v", stsz)
		}
		if co64 := children[3].Payload.(*ChunkOffsetBox); co64.ChunkOffsets[0] != 1<<33 {
			t.Errorf("unexpected %+v", co64)
		}
		if stss := children[4].Payload.(*SyncSampleBox); stss.SampleNumbers[1] != 6 {
			t.Errorf("unexpected %+v", stss)
		}
	})
}

func TestElst(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("elst", fullHeader(0, 0), be32(1, 5000, 0xffffffff), be16(1, 0))
		elst := decodeOne(t, data).Payload.(*EditListBox)
		if entry := elst.Entries[0]; entry.SegmentDuration != 5000 || entry.MediaTime != -1 || entry.MediaRateInteger != 1 {
			t.Errorf("unexpected %+v", entry)
		}
	})
}

func TestPssh(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		data := mkbox("pssh", fullHeader(1, 0), make([]byte, 16), be32(1), make([]byte, 16), be32(3), []byte{1, 2, 3})
		pssh := decodeOne(t, data).Payload.(*ProtectionSystemSpecificHeaderBox)
		if len(pssh.KIDs) != 1 || len(pssh.Data) != 3 {
			t.Errorf("unexpected %+v", pssh)
		}
	})
	t.Run("data larger than box", func(t *testing.T) {
		data := mkbox("pssh", fullHeader(0, 0), make([]byte, 16), be32(100), []byte{1, 2, 3})
		if _, err := parseBytes(t, data); !errors.Is(err, ErrBoxTooLarge) {
			t.Fatalf("expected box too large, got %v", err)
		}
	})
}

func TestPdin(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		pdin := decodeOne(t, mkbox("pdin", fullHeader(0, 0), be32(1000, 20, 2000, 10))).Payload.(*ProgressiveDownloadInfoBox)
		if len(pdin.Entries) != 2 || pdin.Entries[1].InitialDelay != 10 {
			t.Errorf("unexpected %+v", pdin)
		}
	})
}
