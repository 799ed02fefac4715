// Command scsearch searches tracks and prints one title per line, or emits
// the result set as an RSS feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/hexasonic/soundcloud/lib/cfg"
	"github.com/hexasonic/soundcloud/lib/sc"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to the config file")
		genres     = flag.String("genres", "", "comma-separated genre filter")
		tags       = flag.String("tags", "", "comma-separated tag filter")
		license    = flag.String("license", "", "license filter, e.g. cc-by-sa")
		rss        = flag.Bool("rss", false, "emit the result set as an RSS feed")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: scsearch [flags] <query>")
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
	tracks, err := client.Tracks().
		Query(query).
		Genres(splitComma(*genres)...).
		Tags(splitComma(*tags)...).
		License(*license).
		Get(ctx)
	if err != nil {
		slog.Error("search failed", "query", query, "err", err)
		os.Exit(1)
	}

	if len(tracks) == 0 {
		fmt.Println("no tracks found")
		return
	}

	if *rss {
		feed := sc.TracksFeed(
			"Track search: "+query,
			"https://soundcloud.com/search?q="+url.QueryEscape(query),
			tracks,
		)
		out, err := feed.ToRss()
		if err != nil {
			slog.Error("rendering feed", "err", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	for _, t := range tracks {
		fmt.Println(t.Title)
	}
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
