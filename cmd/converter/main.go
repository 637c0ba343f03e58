package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woozymasta/motopark/internal/config"
	"github.com/woozymasta/motopark/internal/logger"
	"github.com/woozymasta/motopark/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"  env:"CONFIG_FILE"  description:"Path to optional configuration file"`
	Output     string        `short:"o" long:"output"  env:"OUTPUT_FILE"  description:"Output KML file (overrides config)"`
	Timeout    time.Duration `short:"t" long:"timeout" env:"HTTP_TIMEOUT" description:"HTTP timeout, 0 disables it (overrides config)"`
	Indent     bool          `short:"i" long:"indent"  description:"Pretty print the KML document"`
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

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
	}

	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := processor.NewConverter(cfg)
	conv.Indent = opts.Indent

	res, err := conv.Run(ctx)
	if err != nil {
		stop()
		os.Exit(report(err))
	}

	log.Info().
		Str("path", res.Path).
		Int("placemarks", res.Placemarks).
		Msg("KML file generated successfully")
}

// report logs a pipeline failure and returns the exit code.
func report(err error) int {
	var fetchErr *processor.FetchError
	event := log.Error().Err(err).Str("stage", processor.Stage(err))

	switch {
	case errors.As(err, &fetchErr):
		if fetchErr.StatusCode != 0 {
			event = event.Int("status", fetchErr.StatusCode)
		}
		event.Msg("Error fetching data from API")
	case processor.Stage(err) == "parse":
		event.Msg("Error parsing JSON")
	case processor.Stage(err) == "schema":
		event.Msg("Unexpected feature collection layout")
	default:
		event.Msg("Failed to write KML file")
	}

	return 1
}
