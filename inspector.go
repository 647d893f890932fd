package inspector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"m7s.live/inspector/pkg"
	"m7s.live/inspector/pkg/box"
	"m7s.live/inspector/pkg/config"
	"m7s.live/inspector/pkg/db"
	"m7s.live/inspector/pkg/render"
)

type Inspector struct {
	*slog.Logger
	config.Inspect
	Out io.Writer
}

func New(conf config.Inspect, out io.Writer, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{Logger: logger, Inspect: conf, Out: out}
}

// contextReader stops the parse once ctx is done.
type contextReader struct {
	ctx context.Context
	io.ReadSeeker
}

func (r contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.ReadSeeker.Read(p)
}

// Run parses the file at path, indexes it when a database is configured,
// then prints the selected boxes or their total size.
func (i *Inspector) Run(ctx context.Context, path string) error {
	if path == "" {
		return pkg.ErrNoInput
	}
	var write func(io.Writer, []*box.Node, render.Options) error
	switch i.Format {
	case "text", "":
		write = render.Text
	case "yaml":
		write = render.YAML
	default:
		return fmt.Errorf("%w: %s", pkg.ErrUnknownFormat, i.Format)
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := i.With("file", path)
	logger.Info("parse")
	nodes, err := box.Parse(contextReader{ctx, file}, box.WithLogger(logger))
	if err != nil {
		logger.Error("parse failed", "error", err)
		return err
	}
	logger.Info("parsed", "boxes", len(nodes), "size", humanize.IBytes(render.TotalSize(nodes)))
	if logger.Enabled(ctx, pkg.TraceLevel) {
		box.Walk(nodes, func(node *box.Node) bool {
			for _, field := range node.Values() {
				logger.Log(ctx, pkg.TraceLevel, "field", "path", node.Path(), "name", field.Name, "value", field.Value)
			}
			return true
		})
	}
	if i.DB != "" {
		if err = i.store(path, nodes); err != nil {
			logger.Error("index failed", "db", i.DB, "error", err)
			return err
		}
	}
	if len(i.OnlyBoxes) > 0 {
		nodes = render.Filter(nodes, i.OnlyBoxes)
	}
	if i.OnlySize {
		_, err = fmt.Fprintln(i.Out, render.TotalSize(nodes))
		return err
	}
	return write(i.Out, nodes, render.Options{ShowAll: i.ShowAll, Color: i.Color})
}

func (i *Inspector) store(path string, nodes []*box.Node) error {
	index, err := db.Open(i.DB, i.DSN)
	if err != nil {
		return err
	}
	if sqlDB, err := index.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err = db.SaveTree(index, path, nodes); err != nil {
		return err
	}
	i.Info("indexed", "file", path, "dsn", i.DSN)
	return nil
}
