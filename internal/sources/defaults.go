package sources

// DefaultSources returns the built-in feed list, used when no sources file
// is configured. Callers get a fresh slice each time.
func DefaultSources() []Source {
	return []Source{
		{
			Name:       "Lenny's Newsletter",
			FeedURL:    "https://www.lennysnewsletter.com/feed",
			WebsiteURL: "https://www.lennysnewsletter.com",
			Category:   "product-launch",
			Quality:    QualityHigh,
			Keywords:   []string{"how", "builds product", "case study", "growth", "strategy"},
		},
		{
			Name:       "First Round Review",
			FeedURL:    "https://review.firstround.com/feed.xml",
			WebsiteURL: "https://review.firstround.com",
			Category:   "product-launch",
			Quality:    QualityHigh,
			Keywords:   []string{"product-market fit", "founder", "startup", "growth", "strategy"},
		},
		{
			Name:       "Reforge Blog",
			FeedURL:    "https://www.reforge.com/blog/rss.xml",
			WebsiteURL: "https://www.reforge.com/blog",
			Category:   "growth-acquisition",
			Quality:    QualityHigh,
			Keywords:   []string{"growth", "retention", "monetization", "strategy"},
		},
		{
			Name:       "a16z",
			FeedURL:    "https://a16z.com/feed/",
			WebsiteURL: "https://a16z.com",
			Category:   "platform-strategy",
			Quality:    QualityHigh,
			Keywords:   []string{"marketplace", "network effects", "platform", "AI"},
		},
		{
			Name:       "Andrew Chen",
			FeedURL:    "https://andrewchen.com/feed/",
			WebsiteURL: "https://andrewchen.com",
			Category:   "growth-acquisition",
			Quality:    QualityHigh,
			Keywords:   []string{"growth", "marketplace", "network effects", "viral"},
		},
		{
			Name:       "Casey Winters",
			FeedURL:    "https://caseyaccidental.com/feed/",
			WebsiteURL: "https://caseyaccidental.com",
			Category:   "growth-acquisition",
			Quality:    QualityHigh,
			Keywords:   []string{"growth", "marketplace", "PLG", "loops"},
		},
		{
			Name:       "Brian Balfour",
			FeedURL:    "https://brianbalfour.com/feed",
			WebsiteURL: "https://brianbalfour.com",
			Category:   "growth-acquisition",
			Quality:    QualityHigh,
			Keywords:   []string{"growth", "PMF", "four fits", "strategy"},
		},
		{
			Name:       "SVPG (Marty Cagan)",
			FeedURL:    "https://www.svpg.com/feed/",
			WebsiteURL: "https://www.svpg.com",
			Category:   "product-launch",
			Quality:    QualityHigh,
			Keywords:   []string{"product", "teams", "discovery", "empowered"},
		},
		{
			Name:       "Stratechery",
			FeedURL:    "https://stratechery.com/feed/",
			WebsiteURL: "https://stratechery.com",
			Category:   "platform-strategy",
			Quality:    QualityHigh,
			Keywords:   []string{"strategy", "aggregation", "platform", "business model"},
		},
		{
			Name:       "Not Boring",
			FeedURL:    "https://www.notboring.co/feed",
			WebsiteURL: "https://www.notboring.co",
			Category:   "platform-strategy",
			Quality:    QualityHigh,
			Keywords:   []string{"strategy", "company", "business", "growth"},
		},
		{
			Name:       "The Generalist",
			FeedURL:    "https://www.generalist.com/feed",
			WebsiteURL: "https://www.generalist.com",
			Category:   "platform-strategy",
			Quality:    QualityHigh,
			Keywords:   []string{"company", "strategy", "deep dive", "analysis"},
		},
		{
			Name:       "Mind the Product",
			FeedURL:    "https://www.mindtheproduct.com/feed/",
			WebsiteURL: "https://www.mindtheproduct.com",
			Category:   "product-launch",
			Quality:    QualityMedium,
			Keywords:   []string{"case study", "product", "PM", "strategy"},
		},
		{
			Name:       "Product Coalition",
			FeedURL:    "https://productcoalition.com/feed",
			WebsiteURL: "https://productcoalition.com",
			Category:   "product-launch",
			Quality:    QualityMedium,
			Keywords:   []string{"case study", "product", "growth", "retention"},
		},
		{
			Name:       "Growth.Design",
			FeedURL:    "https://growth.design/feed.xml",
			WebsiteURL: "https://growth.design",
			Category:   "retention-engagement",
			Quality:    QualityHigh,
			Keywords:   []string{"case study", "psychology", "UX", "growth"},
		},
		{
			Name:       "Built for Mars",
			FeedURL:    "https://builtformars.com/feed",
			WebsiteURL: "https://builtformars.com",
			Category:   "user-research",
			Quality:    QualityHigh,
			Keywords:   []string{"UX", "case study", "analysis", "comparison"},
		},
		{
			Name:       "Y Combinator Blog",
			FeedURL:    "https://www.ycombinator.com/blog/rss/",
			WebsiteURL: "https://www.ycombinator.com/library",
			Category:   "product-launch",
			Quality:    QualityMedium,
			Keywords:   []string{"startup", "PMF", "founder", "growth"},
		},
		{
			Name:       "Sequoia",
			FeedURL:    "https://www.sequoiacap.com/feed/",
			WebsiteURL: "https://www.sequoiacap.com",
			Category:   "growth-acquisition",
			Quality:    QualityHigh,
			Keywords:   []string{"growth", "company building", "strategy"},
		},
	}
}
