// Command scget searches for tracks, lets the user pick from the matches,
// then downloads the picks and writes ID3 tags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/charmbracelet/huh"
	"golang.org/x/sync/errgroup"

	"github.com/hexasonic/soundcloud/lib/cfg"
	"github.com/hexasonic/soundcloud/lib/sc"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the config file")
		all        = flag.Bool("all", false, "download every match instead of picking one")
		parallel   = flag.Int("parallel", 4, "concurrent downloads with -all")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: scget [flags] <query>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	conf, err := cfg.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := sc.NewClient(conf.ClientID)
	tracks, err := client.Tracks().Query(query).Get(ctx)
	if err != nil {
		slog.Error("search failed", "query", query, "err", err)
		os.Exit(1)
	}
	if len(tracks) == 0 {
		fmt.Println("no tracks found")
		return
	}

	picks := tracks
	if !*all && len(tracks) > 1 {
		pick, err := pickTrack(tracks)
		if err != nil {
			slog.Error("selection aborted", "err", err)
			os.Exit(1)
		}
		picks = tracks[pick : pick+1]
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*parallel)
	for i := range picks {
		track := &picks[i]
		g.Go(func() error {
			return fetch(ctx, client, conf.DownloadDir, track)
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("download failed", "err", err)
		os.Exit(1)
	}
}

func pickTrack(tracks []sc.Track) (int, error) {
	opts := make([]huh.Option[int], len(tracks))
	for i, t := range tracks {
		opts[i] = huh.NewOption(fmt.Sprintf("%s by %s", t.Title, t.User.Username), i)
	}

	var pick int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Pick a track").
			Options(opts...).
			Value(&pick),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}

	return pick, nil
}

func fetch(ctx context.Context, client *sc.Client, dir string, track *sc.Track) error {
	path := filepath.Join(dir, track.Permalink+".mp3")
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	written, err := client.Download(ctx, track, file)
	if errors.Is(err, sc.ErrTrackNotDownloadable) {
		slog.Info("not downloadable, streaming instead", "track", track.Permalink)
		written, err = client.Stream(ctx, track, file)
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("fetch %s: %w", track.Permalink, err)
	}

	slog.Info("saved", "track", track.Permalink, "bytes", written)
	return tagFile(path, track)
}

func tagFile(path string, track *sc.Track) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("tag %s: %w", path, err)
	}
	defer tag.Close()

	tag.SetTitle(track.Title)
	tag.SetArtist(track.User.Username)
	if track.Genre != nil {
		tag.SetGenre(*track.Genre)
	}

	return tag.Save()
}
