// Package ingest monitors RSS and Atom feeds for case study candidates,
// scores entries and feeds accepted ones into the moderation queue.
package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/casefolio/casefolio/internal/text"
)

// FeedEntry is one parsed feed item with markup stripped.
type FeedEntry struct {
	Title       string
	Link        string
	Description string
	Content     string
	Date        time.Time
}

// ParseFeed parses an RSS or Atom document. Entries missing a title or a
// usable link are dropped; entries without any date fall back to now. Dates
// are truncated to the day in UTC.
func ParseFeed(body string, now time.Time) ([]FeedEntry, error) {
	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := text.StripMarkup(item.Title)
		link := extractLink(item)
		if title == "" || link == "" {
			continue
		}
		entries = append(entries, FeedEntry{
			Title:       title,
			Link:        link,
			Description: text.StripMarkup(item.Description),
			Content:     text.StripMarkup(item.Content),
			Date:        entryDate(item, now),
		})
	}
	return entries, nil
}

// extractLink prefers the item link and falls back to a GUID that looks like
// a URL, a common pattern in older RSS feeds.
func extractLink(item *gofeed.Item) string {
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	if guid := strings.TrimSpace(item.GUID); strings.HasPrefix(guid, "http") {
		return guid
	}
	return ""
}

func entryDate(item *gofeed.Item, now time.Time) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Truncate(24 * time.Hour)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Truncate(24 * time.Hour)
	default:
		return now.UTC().Truncate(24 * time.Hour)
	}
}
