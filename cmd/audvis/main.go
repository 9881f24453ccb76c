// SPDX-License-Identifier: EPL-2.0

// Command audvis plays an MP3 (or Ogg Vorbis) file and shows its tags, cover
// art, play time and a live spectrum in the terminal.
//
//	audvis <file>
//
// Settings come from the environment, see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ik5/audvis"
	"github.com/ik5/audvis/audio"
	"github.com/ik5/audvis/device"
	"github.com/ik5/audvis/internal/config"
	"github.com/ik5/audvis/internal/logger"
	"github.com/ik5/audvis/playback"
	"github.com/ik5/audvis/present"
	"github.com/ik5/audvis/spectrum"
)

var errUsage = errors.New("usage: audvis <file>")

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "audvis: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	cfg := config.LoadConfig()
	log, logCloser := logger.New(cfg)
	defer logCloser.Close()

	track, err := audvis.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}

	log.Info("track loaded",
		slog.String("path", args[0]),
		slog.String("format", track.Format),
		slog.String("title", track.Title),
		slog.Int64("audio_offset", track.AudioOffset),
		slog.Int("audio_bytes", len(track.Audio)),
		slog.Int64("skipped", track.Skipped),
	)

	codec, err := track.OpenCodec(audvis.NewRegistry())
	if err != nil {
		return fmt.Errorf("open codec: %w", err)
	}
	defer codec.Close()

	h, err := codec.DecodeHeader()
	if err != nil {
		return fmt.Errorf("read stream header: %w", err)
	}

	scfg := audio.ConfigFor(h, codec.Format())
	duration := playback.EstimateDuration(int64(len(track.Audio)), h)

	fft := spectrum.NewFFT(scfg.SamplesPerFrame)
	state := playback.NewState(duration, fft.Len())

	pipe, err := playback.New(codec, scfg, fft, state)
	if err != nil {
		return err
	}

	log.Info("stream",
		slog.Int("bitrate", h.BitRate),
		slog.Int("sample_rate", h.SampleRate),
		slog.Int("channels", h.Channels),
		slog.Int("samples_per_frame", h.SamplesPerFrame),
		slog.Uint64("duration_ms", uint64(duration)),
	)

	dev, err := openDevice(cfg, scfg, pipe, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Warn("closing device", slog.Any("error", err))
		}
	}()

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	input, err := present.NewTermInput(os.Stdin)
	if err != nil {
		return fmt.Errorf("terminal input: %w", err)
	}
	defer input.Close()

	surface, err := present.NewTermSurface(os.Stdout, present.Meta{
		Title:  track.Title,
		Artist: track.Artist,
		Album:  track.Album,
		Cover:  track.Cover,
	}, present.Layout{
		Width:      width,
		Height:     height,
		PlotPoints: cfg.PlotPoints,
		CoverCols:  cfg.CoverCols,
	}, log)
	if err != nil {
		return err
	}
	defer surface.Close()

	if err := dev.Start(); err != nil {
		return fmt.Errorf("start %s output: %w", cfg.Output, err)
	}

	loop := &present.Loop{
		Budget:  present.BudgetFor(cfg.FPS),
		State:   state,
		Player:  dev,
		Input:   input,
		Surface: surface,
		Logger:  log,
	}

	if err := play(ctx, loop, log); err != nil {
		return err
	}

	if err := pipe.Err(); err != nil {
		log.Warn("playback stopped early",
			slog.Any("error", err),
			slog.Uint64("position_ms", uint64(state.Clock.Current())),
		)
	}

	return nil
}

// play runs the presentation loop next to a signal watcher. Either one ends
// both.
func play(ctx context.Context, loop *present.Loop, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()

		err := loop.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		select {
		case sig := <-sigs:
			log.Info("signal received", slog.String("signal", sig.String()))
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}

func openDevice(cfg *config.Config, scfg audio.StreamConfig, pipe *playback.Pipeline, log *slog.Logger) (device.Device, error) {
	spec := device.Spec{
		SampleRate:  scfg.SampleRate,
		Channels:    scfg.Channels,
		BlockFrames: scfg.SamplesPerFrame,
	}

	opts := device.Options{Logger: log}

	if cfg.Output == config.OutputHeadless && cfg.RecordPath != "" {
		rec, err := openRecorder(cfg.RecordPath, spec.SampleRate, spec.Channels)
		if err != nil {
			return nil, err
		}
		opts.Sink = rec
	}

	dev, err := device.Open(cfg.Output, spec, pipe.Fill, opts)
	if err != nil {
		if opts.Sink != nil {
			_ = opts.Sink.Close()
		}
		return nil, fmt.Errorf("open %s output: %w", cfg.Output, err)
	}

	return dev, nil
}
