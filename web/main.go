package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of JSON scene files")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	// Create and start web server
	webServer := server.NewServer(*port)
	webServer.SetScenesDir(*scenesDir)
	core.SetLogger(slog.New(webServer.ConsoleHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))))

	core.Logger().Info("Whitted Raytracer Web Server", "port", *port)

	if err := webServer.Start(); err != nil {
		core.Logger().Error("error starting server", "err", err)
		os.Exit(1)
	}
}
