package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/highlands/lib/config"
	"github.com/fosdem/highlands/lib/demo"
	hlog "github.com/fosdem/highlands/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) > 2 {
		log.Fatalf("Usage: %s [config file]", os.Args[0])
	}

	cfg := config.Default()
	if len(os.Args) == 2 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(hlog.NewHandler(&slog.HandlerOptions{Level: level})))

	demo.MakeWindowAndRender(cfg)
}
