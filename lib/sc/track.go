package sc

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Request builders for tracks. Builders accumulate criteria and are consumed
// by their terminal Get call; setters never talk to the network.

// Filter restricts a track search by visibility.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPublic  Filter = "public"
	FilterPrivate Filter = "private"
)

// SingleTrackRequestBuilder requests one track by its id.
type SingleTrackRequestBuilder struct {
	client *Client
	id     uint64
}

// Track returns a builder for a single track-by-id request.
func (c *Client) Track(id uint64) *SingleTrackRequestBuilder {
	return &SingleTrackRequestBuilder{client: c, id: id}
}

// ID returns the id the builder was constructed with.
func (b *SingleTrackRequestBuilder) ID() uint64 {
	return b.id
}

// Get performs the request and decodes the response into one Track.
func (b *SingleTrackRequestBuilder) Get(ctx context.Context) (*Track, error) {
	var track Track
	path := "/tracks/" + strconv.FormatUint(b.id, 10)
	if err := b.client.getJSON(ctx, path, nil, &track); err != nil {
		return nil, err
	}

	return &track, nil
}

// TrackRequestBuilder searches tracks with multiple criteria. Obtain one from
// Client.Tracks, chain setters, then call Get. Setters mutate the builder and
// return it for chaining; two chains never alias because every call to
// Client.Tracks starts from a fresh builder. A zero-valued argument leaves
// the criterion untouched; previously set values cannot be unset.
type TrackRequestBuilder struct {
	client *Client
	params url.Values
	err    error
}

// Tracks returns a builder for searching tracks.
func (c *Client) Tracks() *TrackRequestBuilder {
	return &TrackRequestBuilder{client: c, params: url.Values{}}
}

// Query sets the free-text search query.
func (b *TrackRequestBuilder) Query(q string) *TrackRequestBuilder {
	if q != "" {
		b.params.Set("q", q)
	}
	return b
}

// Genres restricts results to the given genres.
func (b *TrackRequestBuilder) Genres(genres ...string) *TrackRequestBuilder {
	if len(genres) > 0 {
		b.params.Set("genres", strings.Join(genres, ","))
	}
	return b
}

// Tags restricts results to tracks carrying all of the given tags.
func (b *TrackRequestBuilder) Tags(tags ...string) *TrackRequestBuilder {
	if len(tags) > 0 {
		b.params.Set("tags", strings.Join(tags, ","))
	}
	return b
}

// Ids restricts results to the given track ids.
func (b *TrackRequestBuilder) Ids(ids ...uint64) *TrackRequestBuilder {
	if len(ids) > 0 {
		strs := make([]string, len(ids))
		for i, id := range ids {
			strs[i] = strconv.FormatUint(id, 10)
		}
		b.params.Set("ids", strings.Join(strs, ","))
	}
	return b
}

// License restricts results to one license, e.g. "cc-by-sa".
func (b *TrackRequestBuilder) License(license string) *TrackRequestBuilder {
	if license != "" {
		b.params.Set("license", license)
	}
	return b
}

// BPMFrom sets the lower bound for beats per minute.
func (b *TrackRequestBuilder) BPMFrom(bpm uint64) *TrackRequestBuilder {
	if bpm > 0 {
		b.params.Set("bpm[from]", strconv.FormatUint(bpm, 10))
	}
	return b
}

// BPMTo sets the upper bound for beats per minute.
func (b *TrackRequestBuilder) BPMTo(bpm uint64) *TrackRequestBuilder {
	if bpm > 0 {
		b.params.Set("bpm[to]", strconv.FormatUint(bpm, 10))
	}
	return b
}

// DurationFrom sets the minimum track duration.
func (b *TrackRequestBuilder) DurationFrom(d time.Duration) *TrackRequestBuilder {
	if d > 0 {
		b.params.Set("duration[from]", strconv.FormatInt(d.Milliseconds(), 10))
	}
	return b
}

// DurationTo sets the maximum track duration.
func (b *TrackRequestBuilder) DurationTo(d time.Duration) *TrackRequestBuilder {
	if d > 0 {
		b.params.Set("duration[to]", strconv.FormatInt(d.Milliseconds(), 10))
	}
	return b
}

// VisibilityFilter restricts results by visibility. An unknown filter value
// is reported from Get, before any request is made.
func (b *TrackRequestBuilder) VisibilityFilter(f Filter) *TrackRequestBuilder {
	switch f {
	case "":
	case FilterAll, FilterPublic, FilterPrivate:
		b.params.Set("filter", string(f))
	default:
		if b.err == nil {
			b.err = invalidFilter("unknown visibility: " + string(f))
		}
	}
	return b
}

// Get performs the search. No matches decode to an empty slice; that is a
// successful result, not an error.
func (b *TrackRequestBuilder) Get(ctx context.Context) ([]Track, error) {
	if b.err != nil {
		return nil, b.err
	}

	var tracks []Track
	if err := b.client.getJSON(ctx, "/tracks", b.params, &tracks); err != nil {
		return nil, err
	}

	return tracks, nil
}
