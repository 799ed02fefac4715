package sc

import (
	"context"
	"testing"
	"time"

	"github.com/valyala/fasthttp"
)

func TestSingleTrackGet(t *testing.T) {
	client, log := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		if got := string(ctx.Path()); got != "/tracks/18201932" {
			t.Errorf("path = %q, want %q", got, "/tracks/18201932")
		}
		ctx.SetBodyString(`{"id":18201932,"title":"Tree Eater","downloadable":false}`)
	})

	track, err := client.Track(18201932).Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if track.ID != 18201932 {
		t.Fatalf("id = %d, want 18201932", track.ID)
	}
	if log.count() != 1 {
		t.Fatalf("server saw %d requests, want 1", log.count())
	}
}

func TestSingleTrackGetBadJSON(t *testing.T) {
	client, _ := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"id":`)
	})

	_, err := client.Track(1).Get(context.Background())
	if kind := kindOf(t, err); kind != KindJSON {
		t.Fatalf("kind = %v, want %v", kind, KindJSON)
	}
}

func TestTracksQueryRoundTrip(t *testing.T) {
	client, log := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		if got := string(ctx.Path()); got != "/tracks" {
			t.Errorf("path = %q, want /tracks", got)
		}
		if got := string(ctx.QueryArgs().Peek("q")); got != "noisia" {
			t.Errorf("q = %q, want %q", got, "noisia")
		}
		if got := string(ctx.QueryArgs().Peek("client_id")); got != testClientID {
			t.Errorf("client_id = %q, want %q", got, testClientID)
		}
		ctx.SetBodyString(`[{"id":1,"title":"Split the Atom"},{"id":2,"title":"Diplodocus"}]`)
	})

	tracks, err := client.Tracks().Query("noisia").Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if log.count() != 1 {
		t.Fatalf("server saw %d requests, want 1", log.count())
	}

	want := []string{"Split the Atom", "Diplodocus"}
	if len(tracks) != len(want) {
		t.Fatalf("got %d tracks, want %d", len(tracks), len(want))
	}
	for i, title := range want {
		if tracks[i].Title != title {
			t.Errorf("tracks[%d].Title = %q, want %q", i, tracks[i].Title, title)
		}
	}
}

func TestTracksEmptyResult(t *testing.T) {
	for name, body := range map[string]string{
		"empty array": `[]`,
		"null":        `null`,
		"no body":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
				ctx.SetBodyString(body)
			})

			tracks, err := client.Tracks().Query("nothing matches this").Get(context.Background())
			if err != nil {
				t.Fatalf("empty result must not be an error, got %v", err)
			}
			if len(tracks) != 0 {
				t.Fatalf("got %d tracks, want none", len(tracks))
			}
		})
	}
}

func TestTrackBuilderSetters(t *testing.T) {
	client := NewClient(testClientID)

	b := client.Tracks().
		Query("noisia").
		Genres("Drum & Bass", "Electronic").
		Tags("neuro").
		Ids(10, 20).
		License("cc-by-sa").
		BPMFrom(170).
		BPMTo(180).
		DurationFrom(2 * time.Minute).
		DurationTo(10 * time.Minute).
		VisibilityFilter(FilterPublic)

	want := map[string]string{
		"q":              "noisia",
		"genres":         "Drum & Bass,Electronic",
		"tags":           "neuro",
		"ids":            "10,20",
		"license":        "cc-by-sa",
		"bpm[from]":      "170",
		"bpm[to]":        "180",
		"duration[from]": "120000",
		"duration[to]":   "600000",
		"filter":         "public",
	}
	for key, val := range want {
		if got := b.params.Get(key); got != val {
			t.Errorf("params[%q] = %q, want %q", key, got, val)
		}
	}
}

func TestTrackBuilderZeroValuesAreNoOps(t *testing.T) {
	client := NewClient(testClientID)

	b := client.Tracks().
		Query("noisia").
		Query("").
		Genres().
		Tags().
		Ids().
		License("").
		BPMFrom(0).
		DurationTo(0).
		VisibilityFilter("")

	if got := b.params.Get("q"); got != "noisia" {
		t.Errorf("q = %q, want %q (empty setter must not unset)", got, "noisia")
	}
	if len(b.params) != 1 {
		t.Errorf("params = %v, want only q", b.params)
	}
}

func TestTrackBuildersDoNotAlias(t *testing.T) {
	client := NewClient(testClientID)

	a := client.Tracks().Query("one")
	b := client.Tracks().Query("two")

	if got := a.params.Get("q"); got != "one" {
		t.Fatalf("first builder q = %q, want %q", got, "one")
	}
	if got := b.params.Get("q"); got != "two" {
		t.Fatalf("second builder q = %q, want %q", got, "two")
	}
}

func TestVisibilityFilterInvalid(t *testing.T) {
	client, log := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`[]`)
	})

	_, err := client.Tracks().VisibilityFilter("friends-only").Get(context.Background())
	if kind := kindOf(t, err); kind != KindInvalidFilter {
		t.Fatalf("kind = %v, want %v", kind, KindInvalidFilter)
	}
	if log.count() != 0 {
		t.Fatalf("invalid filter must fail before any request, server saw %d", log.count())
	}
}
