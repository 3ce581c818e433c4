// SPDX-License-Identifier: EPL-2.0

// Command padbx plays a sampler kit from the terminal.
//
//	padbx -k ./mykit
//
// Keys 1234 qwer asdf zxcv hit pads 0-15; space stops every pad. Without
// -k a folder picker asks for the kit directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ik5/padbx"
	"github.com/ik5/padbx/asset"
	"github.com/ik5/padbx/formats"
	"github.com/ik5/padbx/graph"
	"github.com/ik5/padbx/kit"
	"github.com/ik5/padbx/midiin"
	"github.com/ik5/padbx/sequence"
	"github.com/ik5/padbx/tone"
	"github.com/spf13/pflag"
	"github.com/sqweek/dialog"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type options struct {
	kitDir   string
	rate     int
	latency  time.Duration
	headless bool
	midiIn   string
	midiBase int
	debug    bool
	dump     bool
	bounce   int
	out      string
	wave     string
	octave   int
}

func parseFlags() options {
	var o options

	pflag.StringVarP(&o.kitDir, "kit", "k", "", "kit directory holding sampler.json")
	pflag.IntVarP(&o.rate, "rate", "r", 48000, "output sample rate")
	pflag.DurationVar(&o.latency, "latency", 40*time.Millisecond, "output buffer length")
	pflag.BoolVar(&o.headless, "headless", false, "keep time without audio output")
	pflag.StringVar(&o.midiIn, "midi-in", "", `MIDI input port for pads ("list" prints the ports)`)
	pflag.IntVar(&o.midiBase, "midi-base", midiin.DefaultBase, "MIDI note of pad 0")
	pflag.BoolVar(&o.debug, "debug", false, "debug logging")
	pflag.BoolVar(&o.dump, "dump", false, "print the parsed kit and exit")
	pflag.IntVar(&o.bounce, "bounce", -1, "render this pad to --out and exit")
	pflag.StringVarP(&o.out, "out", "o", "bounce.wav", "bounce output file")
	pflag.StringVar(&o.wave, "wave", tone.Triangle.String(), "piano waveform: sine, square, sawtooth or triangle")
	pflag.IntVar(&o.octave, "octave", padbx.DefaultOctave, "octave of the first piano key")
	pflag.Parse()

	return o
}

func initLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
	slog.SetDefault(logger)

	return logger
}

func main() {
	opts := parseFlags()
	logger := initLogger(opts.debug)

	if err := run(opts, logger); err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			logger.Info("no kit chosen")
			os.Exit(1)
		}
		logger.Error("padbx failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	if opts.midiIn == "list" {
		defer midi.CloseDriver()
		for _, name := range midiin.Ports() {
			fmt.Println(name)
		}
		return nil
	}

	wave, err := tone.ParseWave(opts.wave)
	if err != nil {
		return err
	}

	dir, err := chooseKit(opts.kitDir)
	if err != nil {
		return err
	}

	doc, err := kit.LoadDir(dir)
	if err != nil {
		return err
	}
	seq, err := sequence.LoadDir(dir)
	if err != nil {
		return err
	}

	if opts.dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(os.Stdout, doc)
		if seq != nil {
			cfg.Fdump(os.Stdout, seq)
		}
		return nil
	}

	store := asset.NewStore(asset.DirFetcher{Dir: dir}, asset.NewDecoder(formats.NewRegistry()),
		asset.WithLogger(logger),
		asset.WithReverseCache(true))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.bounce >= 0 {
		return bounce(ctx, store, doc, opts, logger)
	}

	dev, err := openDevice(opts)
	if err != nil {
		return err
	}
	defer dev.Close()

	eng := padbx.New(dev, store, doc,
		padbx.WithLogger(logger),
		padbx.WithSequence(seq),
		padbx.WithOctave(opts.octave),
		padbx.WithWave(wave),
		padbx.WithStatus(printStatus))

	if err := eng.Preload(ctx); err != nil {
		return err
	}
	logger.Info("kit loaded", "dir", dir, "samples", store.Len(), "rate", dev.SampleRate())

	if opts.midiIn != "" {
		defer midi.CloseDriver()

		stopMIDI, err := listenMIDI(ctx, eng, opts, logger)
		if err != nil {
			return err
		}
		defer stopMIDI()
	}

	return newConsole(eng, logger).run(ctx)
}

type device interface {
	graph.Device
	Close() error
}

func openDevice(opts options) (device, error) {
	if opts.headless {
		return graph.NewSilent(opts.rate), nil
	}

	dev, err := graph.NewOto(opts.rate, opts.latency)
	if err != nil {
		return nil, fmt.Errorf("open audio output: %w", err)
	}
	return dev, nil
}

func bounce(ctx context.Context, store *asset.Store, doc *kit.Document, opts options, logger *slog.Logger) error {
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	err = padbx.Bounce(ctx, store, doc.Table().Get(opts.bounce), padbx.BounceOptions{
		SampleRate: opts.rate,
		Logger:     logger,
	}, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Info("bounced pad", "pad", opts.bounce, "out", opts.out)
	return nil
}

func listenMIDI(ctx context.Context, eng *padbx.Engine, opts options, logger *slog.Logger) (func(), error) {
	in, err := midiin.Port(opts.midiIn)
	if err != nil {
		return nil, err
	}

	return midiin.Listen(in, opts.midiBase, kit.PadCount, func(pad int, velocity uint8) {
		logger.Debug("midi pad", "pad", pad, "velocity", velocity)
		if err := eng.Hit(ctx, pad); err != nil && !errors.Is(err, context.Canceled) {
			logger.Debug("midi hit failed", "pad", pad, "err", err)
		}
	}, logger)
}
