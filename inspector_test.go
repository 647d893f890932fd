package inspector

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"m7s.live/inspector/pkg"
	"m7s.live/inspector/pkg/box"
	"m7s.live/inspector/pkg/config"
	"m7s.live/inspector/pkg/db"
)

func mkbox(typ string, content ...[]byte) []byte {
	body := bytes.Join(content, nil)
	b := binary.BigEndian.AppendUint32(nil, uint32(8+len(body)))
	b = append(b, typ...)
	return append(b, body...)
}

func writeSample(t *testing.T) string {
	t.Helper()
	data := bytes.Join([][]byte{
		mkbox("ftyp", []byte("iso6"), make([]byte, 4), []byte("iso6")),
		mkbox("moof",
			mkbox("mfhd", make([]byte, 4), []byte{0, 0, 0, 9}),
			mkbox("traf", mkbox("tfhd", []byte{0, 2, 0, 0}, []byte{0, 0, 0, 1})),
		),
		mkbox("mdat", make([]byte, 32)),
	}, nil)
	path := filepath.Join(t.TempDir(), "sample.mp4")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRun(t *testing.T) {
	path := writeSample(t)
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		if err := New(config.Inspect{Format: "text"}, &out, quiet()).Run(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		for _, title := range []string{"ftyp (offset: 0, size: 20)", "\tmfhd (offset: 28, size: 16)", "mdat (offset: 68, size: 40)"} {
			if !strings.Contains(out.String(), title) {
				t.Errorf("missing %q in:\n%s", title, out.String())
			}
		}
	})
	t.Run("filtered size", func(t *testing.T) {
		var out bytes.Buffer
		conf := config.Inspect{OnlySize: true, OnlyBoxes: []string{"mfhd", "mdat"}}
		if err := New(conf, &out, quiet()).Run(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		if out.String() != "56\n" {
			t.Errorf("size %q", out.String())
		}
	})
	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		conf := config.Inspect{Format: "yaml", OnlyBoxes: []string{"tfhd"}}
		if err := New(conf, &out, quiet()).Run(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), "- type: tfhd\n") {
			t.Errorf("unexpected yaml:\n%s", out.String())
		}
	})
	t.Run("index", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "boxes.db")
		conf := config.Inspect{OnlySize: true, DB: "sqlite", DSN: dsn}
		if err := New(conf, &bytes.Buffer{}, quiet()).Run(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		index, err := db.Open("sqlite", dsn)
		if err != nil {
			t.Fatal(err)
		}
		records, err := db.Boxes(index, path, "tfhd")
		if err != nil || len(records) != 1 || records[0].Path != "moof/traf/tfhd" {
			t.Errorf("unexpected records %v %+v", err, records)
		}
	})
}

func TestRunErrors(t *testing.T) {
	path := writeSample(t)
	t.Run("no input", func(t *testing.T) {
		if err := New(config.Inspect{}, &bytes.Buffer{}, quiet()).Run(context.Background(), ""); !errors.Is(err, pkg.ErrNoInput) {
			t.Errorf("expected no input, got %v", err)
		}
	})
	t.Run("format", func(t *testing.T) {
		err := New(config.Inspect{Format: "xml"}, &bytes.Buffer{}, quiet()).Run(context.Background(), path)
		if !errors.Is(err, pkg.ErrUnknownFormat) {
			t.Errorf("expected unknown format, got %v", err)
		}
	})
	t.Run("driver", func(t *testing.T) {
		err := New(config.Inspect{DB: "nosuchdb"}, &bytes.Buffer{}, quiet()).Run(context.Background(), path)
		if !errors.Is(err, pkg.ErrUnknownDriver) {
			t.Errorf("expected unknown driver, got %v", err)
		}
	})
	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := New(config.Inspect{}, &bytes.Buffer{}, quiet()).Run(ctx, path)
		if !errors.Is(err, context.Canceled) || !errors.Is(err, box.ErrIO) {
			t.Errorf("expected cancellation, got %v", err)
		}
	})
	t.Run("corrupt", func(t *testing.T) {
		corrupt := filepath.Join(t.TempDir(), "corrupt.mp4")
		os.WriteFile(corrupt, append(mkbox("moov"), 0, 0, 0, 4, 'f', 'r', 'e', 'e'), 0644)
		var out bytes.Buffer
		err := New(config.Inspect{}, &out, quiet()).Run(context.Background(), corrupt)
		if !errors.Is(err, box.ErrBoxTooSmall) || out.Len() != 0 {
			t.Errorf("expected box too small and no output, got %v", err)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run(t.Name(), func(t *testing.T) {
		var console bytes.Buffer
		dir := t.TempDir()
		logger, err := NewLogger(config.Inspect{LogLevel: "debug", LogDir: dir, LogSize: 1 << 20, LogFiles: 2}, &console, false)
		if err != nil {
			t.Fatal(err)
		}
		logger.Debug("box", "type", "moov")
		if !strings.Contains(console.String(), "type=moov") {
			t.Errorf("console output %q", console.String())
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) == 0 {
			t.Errorf("no log file written: %v", err)
		}
	})
}
