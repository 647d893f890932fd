package config

import "strings"

type Inspect struct {
	OnlyBoxes []string `desc:"only show boxes of these types"`
	OnlySize  bool     `desc:"print the total size of the shown boxes instead of their content"`
	ShowAll   bool     `desc:"expand collections such as sample tables"`
	Format    string   `default:"text" desc:"output format, text or yaml"`
	Color     bool     `default:"true" desc:"paint titles and field names in text output"`
	LogLevel  string   `default:"warn" desc:"log level: trace, debug, info, warn, error"`
	LogDir    string   `desc:"also log to rotated files in this directory"`
	LogSize   uint64   `default:"1048576" desc:"log file size in bytes"`
	LogFiles  uint64   `default:"7" desc:"number of rotated log files kept"`
	DB        string   `desc:"database driver to index the boxes into, e.g. sqlite"`
	DSN       string   `default:"boxes.db" desc:"database source name"`
}

// SetBoxes accepts a comma separated list, as given on the command line.
func (c *Inspect) SetBoxes(list string) {
	c.OnlyBoxes = c.OnlyBoxes[:0]
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			c.OnlyBoxes = append(c.OnlyBoxes, name)
		}
	}
}
