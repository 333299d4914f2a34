package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kilo-editor/kilo/internal/config"
	"github.com/kilo-editor/kilo/internal/editor"
	"github.com/kilo-editor/kilo/internal/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config load failed, using defaults", "error", err)
	}

	filename := ""
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	if err := editor.New(cfg).Run(filename); err != nil {
		logger.Error("fatal", "error", err)
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		os.Exit(1)
	}
}
