package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmvillar/strum/internal/catalog"
	"github.com/jmvillar/strum/internal/config"
	"github.com/jmvillar/strum/internal/httpapi"
	"github.com/jmvillar/strum/internal/library"
	"github.com/jmvillar/strum/internal/media"
	"github.com/jmvillar/strum/internal/playback"
	"github.com/jmvillar/strum/internal/player"
)

func run() error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeStore()

	lib, err := library.New(store)
	if err != nil {
		return fmt.Errorf("loading library: %w", err)
	}

	files, err := media.NewStore(cfg.MediaDir)
	if err != nil {
		return fmt.Errorf("opening media dir: %w", err)
	}

	// The browser plays the audio; the server only tracks playback
	// state unless local output is enabled.
	var out player.Interface = player.NewNull()
	if cfg.Playback.LocalOutput {
		out = player.New()
	}
	session := playback.NewSession(out, cfg.Playback.Volume)
	defer session.Close()
	lib.AttachSession(session)

	go logSessionEvents(log, session.Subscribe())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	server := httpapi.New(lib, session, files, log)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, cfg.Listen)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		return server.Close()
	case err := <-errCh:
		return err
	}
}

func openStore(cfg *config.Config) (library.Store, func(), error) {
	if cfg.Storage.Backend == "memory" {
		return library.NewMemStore(), func() {}, nil
	}
	cat, err := catalog.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return cat, func() { cat.Close() }, nil
}

func logSessionEvents(log *slog.Logger, sub *playback.Subscription) {
	for {
		select {
		case ev := <-sub.StateChanged:
			log.Debug("playback state", "from", ev.Previous, "to", ev.Current)
		case ev := <-sub.SongChanged:
			if ev.Current != nil {
				log.Info("now playing", "id", ev.Current.ID, "title", ev.Current.Title, "artist", ev.Current.Artist)
			}
		case ev := <-sub.Error:
			log.Warn("playback error", "op", ev.Operation, "path", ev.Path, "err", ev.Err)
		case <-sub.Done:
			return
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
