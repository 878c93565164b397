package domain

// Category is a fixed reference entity. Count is derived on read from the
// catalog, never stored.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count,omitempty"`
}

// Categories is the fixed category set. Record categories must be one of
// these slugs.
var Categories = []Category{
	{Slug: "product-launch", Name: "Product Launch & Strategy", Description: "Go-to-market strategies, launch playbooks, product decisions"},
	{Slug: "growth-acquisition", Name: "Growth & Acquisition", Description: "User growth, viral loops, marketing strategies"},
	{Slug: "platform-strategy", Name: "Platform Strategy", Description: "Marketplaces, ecosystems, network effects"},
	{Slug: "retention-engagement", Name: "Retention & Engagement", Description: "User retention, engagement loops, personalization"},
	{Slug: "ai-ml-product", Name: "AI/ML Product", Description: "Building AI products, ML features, generative AI"},
	{Slug: "b2b-product", Name: "B2B Product Management", Description: "Enterprise products, B2B SaaS, sales-led growth"},
	{Slug: "pivots", Name: "Pivots & Turnarounds", Description: "Strategic changes, repositioning, recovery stories"},
	{Slug: "pricing-monetization", Name: "Pricing & Monetization", Description: "Pricing models, freemium, revenue optimization"},
	{Slug: "user-research", Name: "User Research & Discovery", Description: "Customer discovery, validation, PMF measurement"},
	{Slug: "product-led-growth", Name: "Product-Led Growth", Description: "PLG strategies, self-serve, viral mechanics"},
	{Slug: "data-driven", Name: "Data-Driven Decisions", Description: "Analytics, experimentation, metrics frameworks"},
	{Slug: "marketplace-dynamics", Name: "Marketplace Dynamics", Description: "Two-sided marketplaces, supply/demand balance"},
	{Slug: "onboarding-activation", Name: "Onboarding & Activation", Description: "User onboarding, activation strategies, first-time UX"},
	{Slug: "feature-prioritization", Name: "Feature Prioritization", Description: "Roadmap management, prioritization frameworks"},
	{Slug: "payments-commerce", Name: "Payments & Commerce", Description: "E-commerce, checkout, payment experiences"},
	{Slug: "mobile-product", Name: "Mobile Product", Description: "Mobile apps, mobile-first strategies"},
	{Slug: "developer-tools", Name: "Developer Tools & APIs", Description: "Dev tools, API products, developer experience"},
	{Slug: "trust-safety", Name: "Trust & Safety", Description: "Platform safety, crisis management, responsible PM"},
	{Slug: "internationalization", Name: "Internationalization", Description: "Global expansion, localization, multi-market"},
}

// CategoryBySlug returns the category with the given slug.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// ValidCategory reports whether slug belongs to the fixed category set.
func ValidCategory(slug string) bool {
	_, ok := CategoryBySlug(slug)
	return ok
}
