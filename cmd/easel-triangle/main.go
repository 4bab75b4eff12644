package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/vkngwrapper/easel/config"
)

//go:generate glslc shaders/triangle.vert -o shaders/triangle.vert.spv
//go:generate glslc shaders/triangle.frag -o shaders/triangle.frag.spv

func main() {
	runtime.LockOSThread()

	configPath := flag.String("config", "easel.toml", "path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err = run(logger, cfg)
	if err != nil {
		logger.Error("easel-triangle failed", slog.String("error", fmt.Sprintf("%+v", err)))
		os.Exit(1)
	}
}
