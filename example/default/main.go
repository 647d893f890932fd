package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"m7s.live/inspector"
	"m7s.live/inspector/pkg/config"
)

func main() {
	conf := flag.String("c", "config.yaml", "config file")
	boxes := flag.String("b", "", "only show these boxes, comma separated, e.g. moof,trun")
	onlySize := flag.Bool("s", false, "print the total size of the shown boxes")
	showAll := flag.Bool("a", false, "expand collections such as sample tables")
	format := flag.String("f", "", "output format, text or yaml")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var cfg config.Inspect
	if _, err := config.Load(&cfg, *conf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			cfg.SetBoxes(*boxes)
		case "s":
			cfg.OnlySize = *onlySize
		case "a":
			cfg.ShowAll = *showAll
		case "f":
			cfg.Format = *format
		}
	})
	cfg.Color = cfg.Color && isatty.IsTerminal(os.Stdout.Fd())
	logger, err := inspector.NewLogger(cfg, os.Stderr, isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ins := inspector.New(cfg, os.Stdout, logger)
	code := 0
	for i, path := range flag.Args() {
		if flag.NArg() > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("==> %s <==\n", path)
		}
		if err = ins.Run(ctx, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			code = 1
		}
	}
	os.Exit(code)
}
