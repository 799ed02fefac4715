package sc

// Plain records mapping one-to-one to API JSON objects. Optional fields are
// pointers: the API omits them depending on the record's visibility and
// privacy settings, and absence is meaningful, so they are never substituted
// with zero values.

type Track struct {
	ID           uint64 `json:"id"`
	CreatedAt    string `json:"created_at"`
	UserID       uint64 `json:"user_id"`
	Duration     uint64 `json:"duration"`
	Commentable  bool   `json:"commentable"`
	State        string `json:"state"`
	Sharing      string `json:"sharing"`
	TagList      string `json:"tag_list"`
	Permalink    string `json:"permalink"`
	Streamable   bool   `json:"streamable"`
	Downloadable bool   `json:"downloadable"`
	Title        string `json:"title"`
	URI          string `json:"uri"`
	PermalinkURL string `json:"permalink_url"`
	WaveformURL  string `json:"waveform_url"`
	License      string `json:"license"`
	User         User   `json:"user"`

	Genre        *string  `json:"genre"`
	Description  *string  `json:"description"`
	ArtworkURL   *string  `json:"artwork_url"`
	PurchaseURL  *string  `json:"purchase_url"`
	VideoURL     *string  `json:"video_url"`
	TrackType    *string  `json:"track_type"`
	ISRC         *string  `json:"isrc"`
	BPM          *float64 `json:"bpm"`
	KeySignature *string  `json:"key_signature"`

	// Only the flag AND the URL together make a transfer eligible.
	StreamURL   *string `json:"stream_url"`
	DownloadURL *string `json:"download_url"`

	PlaybackCount    uint64 `json:"playback_count"`
	DownloadCount    uint64 `json:"download_count"`
	FavoritingsCount uint64 `json:"favoritings_count"`
	CommentCount     uint64 `json:"comment_count"`
}

// Tags splits the track's tag_list. Multi-word tags come double-quoted.
func (t Track) Tags() []string {
	return TagListParser(t.TagList)
}

type User struct {
	ID           uint64 `json:"id"`
	Permalink    string `json:"permalink"`
	Username     string `json:"username"`
	URI          string `json:"uri"`
	PermalinkURL string `json:"permalink_url"`
	AvatarURL    string `json:"avatar_url"`

	Country     *string `json:"country"`
	FullName    *string `json:"full_name"`
	City        *string `json:"city"`
	Description *string `json:"description"`
	DiscogsName *string `json:"discogs-name"`
	MyspaceName *string `json:"myspace-name"`
	Website     *string `json:"website"`
	// Custom title for the website link.
	WebsiteTitle *string `json:"website-title"`
	Online       *bool   `json:"online"`

	TrackCount           *uint64 `json:"track_count"`
	PlaylistCount        *uint64 `json:"playlist_count"`
	FollowersCount       *uint64 `json:"followers_count"`
	FollowingsCount      *uint64 `json:"followings_count"`
	PublicFavoritesCount *uint64 `json:"public_favorites_count"`
}

type Comment struct {
	ID uint64 `json:"id"`
	// Time of creation, kept as the unparsed string the API sends.
	CreatedAt string `json:"created_at"`
	URI       string `json:"uri"`
	Body      string `json:"body"`
	// Offset into the track, in milliseconds.
	Timestamp *uint64 `json:"timestamp"`
	UserID    uint64  `json:"user_id"`
	User      User    `json:"user"`
	TrackID   uint64  `json:"track_id"`
}

// App is a registered client application.
type App struct {
	ID           uint64  `json:"id"`
	URI          string  `json:"uri"`
	PermalinkURL string  `json:"permalink_url"`
	ExternalURL  string  `json:"external_url"`
	Creator      *string `json:"creator"`
}

// TagListParser splits a space-separated tag list where multi-word tags are
// wrapped in double quotes.
func TagListParser(taglist string) (res []string) {
	inString := false
	cur := []rune{}
	for i, c := range taglist {
		if c == '"' {
			if i == len(taglist)-1 {
				res = append(res, string(cur))
				return
			}

			inString = !inString
			continue
		}

		if !inString && c == ' ' {
			res = append(res, string(cur))
			cur = []rune{}
			continue
		}

		cur = append(cur, c)
	}

	if len(cur) != 0 {
		res = append(res, string(cur))
	}

	return
}
