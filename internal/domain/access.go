package domain

import "strings"

// AccessClassifier decides the access tier of a record from its URL and
// source name. The rule tables are data, not code, so the heuristic can be
// corrected without touching any matching logic. The zero tier is free:
// most web content is.
type AccessClassifier struct {
	PaidDomains []string // URL substrings that indicate paywalled hosts
	PaidSources []string // source names that usually paywall
	FreeDomains []string // URL substrings that indicate free hosts
}

// DefaultAccessClassifier returns the built-in rule tables.
func DefaultAccessClassifier() *AccessClassifier {
	return &AccessClassifier{
		PaidDomains: []string{
			"store.hbr.org",
			"hbr.org/store",
			"hbs.edu/faculty",
			"ssrn.com",
			"jstor.org",
			"springer.com",
			"wiley.com",
			"sciencedirect.com",
			"emerald.com",
			"tandfonline.com",
		},
		PaidSources: []string{
			"HBS",
			"Harvard Business School",
			"Harvard Business Review",
			"MIT Sloan",
			"Stanford GSB",
			"Kellogg",
			"Wharton",
			"INSEAD",
		},
		FreeDomains: []string{
			"youtube.com", "youtu.be", "medium.com", "substack.com",
			"lennysnewsletter.com", "firstround.com", "review.firstround.com",
			"a16z.com", "andrewchen.com", "reforge.com/blog", "stratechery.com",
			"notboring.co", "generalist.com", "caseyaccidental.com",
			"brianbalfour.com", "svpg.com", "mindtheproduct.com",
			"productcoalition.com", "growth.design", "builtformars.com",
			"ycombinator.com", "sequoiacap.com", "nfx.com", "intercom.com",
			"amplitude.com", "mixpanel.com", "segment.com", "productboard.com",
			"pendo.io", "spotify.design", "airbnb.design", "uber.com/blog",
			"engineering.atspotify.com", "slack.engineering",
			"netflixtechblog.com", "dropbox.tech", "stripe.com/blog",
			"github.blog", "blog.google", "engineering.fb.com",
			"linkedin.com/pulse", "ted.com", "slideshare.net",
			"speakerdeck.com", "docs.google.com", "notion.so", "figma.com",
			"miro.com", "twitter.com", "x.com", "news.ycombinator.com",
			"techcrunch.com", "wired.com", "theverge.com", "arstechnica.com",
			"producthunt.com", "wikipedia.org",
		},
	}
}

// Classify returns the access tier for a record URL and source name.
// Paid rules win over free rules, with one carve-out: HBR articles hosted on
// hbr.org outside the store are free even though the source is paywalled.
func (c *AccessClassifier) Classify(rawURL, source string) Access {
	u := strings.ToLower(rawURL)
	src := strings.ToLower(source)

	for _, d := range c.PaidDomains {
		if strings.Contains(u, strings.ToLower(d)) {
			return AccessPaid
		}
	}

	for _, ps := range c.PaidSources {
		psl := strings.ToLower(ps)
		if !strings.Contains(src, psl) {
			continue
		}
		if strings.Contains(psl, "harvard") &&
			strings.Contains(u, "hbr.org") &&
			!strings.Contains(u, "store") &&
			!strings.Contains(u, "hbs.edu") {
			return AccessFree
		}
		return AccessPaid
	}

	for _, d := range c.FreeDomains {
		if strings.Contains(u, d) {
			return AccessFree
		}
	}

	return AccessFree
}
