package main

import (
	"flag"
	"runtime"

	"neonhex/internal/logger"
	"neonhex/pkg/config"
	"neonhex/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	renderMode := flag.String("mode", "", "Render mode: perimeter, crossgap or full (overrides config)")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("logfile", "", "Also write logs to this file")
	flag.Parse()

	log := logger.NewLogger(*logLevel)
	if *logFile != "" {
		multi, err := logger.NewMultiLogger(*logLevel, *logFile)
		if err != nil {
			log.Warnf("failed to open log file: %v", err)
		} else {
			log = multi
			defer log.Close()
		}
	}
	log.Info("Starting neonhex terrain viewer...")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("%v", err)
	}
	if *renderMode != "" {
		cfg.Graphics.RenderMode = *renderMode
	}

	viewer, err := engine.NewEngine(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	log.Info("Engine initialized, starting main loop...")
	viewer.Run()
}
