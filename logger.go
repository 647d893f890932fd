package inspector

import (
	"io"
	"log/slog"

	"github.com/alchemy/rotoslog"
	"github.com/phsym/console-slog"
	"m7s.live/inspector/pkg"
	"m7s.live/inspector/pkg/config"
)

const logTimeFormat = "2006-01-02 15:04:05.000"

// NewLogger logs to w, and to rotated files as well when a log directory is configured.
func NewLogger(conf config.Inspect, w io.Writer, color bool) (*slog.Logger, error) {
	level := pkg.ParseLevel(conf.LogLevel)
	handler := pkg.NewMultiLogHandler(level,
		console.NewHandler(w, &console.HandlerOptions{NoColor: !color, Level: level, TimeFormat: logTimeFormat}),
	)
	if conf.LogDir != "" {
		builder := func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
			return console.NewHandler(w, &console.HandlerOptions{NoColor: true, Level: level, TimeFormat: logTimeFormat})
		}
		file, err := rotoslog.NewHandler(rotoslog.LogHandlerBuilder(builder), rotoslog.LogDir(conf.LogDir), rotoslog.MaxFileSize(conf.LogSize), rotoslog.MaxRotatedFiles(conf.LogFiles))
		if err != nil {
			return nil, err
		}
		handler.Add(file)
	}
	return slog.New(handler), nil
}
