package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/motopark/internal/config"
	"github.com/woozymasta/motopark/internal/logger"
	"github.com/woozymasta/motopark/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to optional configuration file"`
	KMLFile    string `short:"k" long:"kml"    env:"KML_FILE"       description:"KML file to serve (overrides config output)"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
	Zoom       int    `short:"z" long:"zoom"   env:"MAP_ZOOM"       description:"Initial map zoom"     default:"11"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.KMLFile != "" {
		cfg.Output = opts.KMLFile
	}

	srvCtx, err := server.NewServerContext(cfg, opts.Zoom)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("kml", cfg.Output).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, server.NewHandler(srvCtx)); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
