package sc

import (
	"time"

	"github.com/gorilla/feeds"
)

// Layout of the created_at strings the API sends, e.g.
// "2009/08/13 18:30:10 +0000".
const createdAtLayout = "2006/01/02 15:04:05 -0700"

// TracksFeed renders a track listing as a feed, one item per track. Records
// with an unparseable created_at simply get no item timestamp.
func TracksFeed(title, link string, tracks []Track) *feeds.Feed {
	feed := &feeds.Feed{
		Title:   title,
		Link:    &feeds.Link{Href: link},
		Created: time.Now(),
	}

	for _, t := range tracks {
		item := &feeds.Item{
			Title:  t.Title,
			Link:   &feeds.Link{Href: t.PermalinkURL},
			Id:     t.URI,
			Author: &feeds.Author{Name: t.User.Username},
		}
		if t.Description != nil {
			item.Description = *t.Description
		}
		if created, err := time.Parse(createdAtLayout, t.CreatedAt); err == nil {
			item.Created = created
		}

		feed.Items = append(feed.Items, item)
	}

	return feed
}
