package proposal

// Default returns a fresh copy of the built-in CCBM Phase 1 proposal.
func Default() *Proposal {
	return &Proposal{
		ClientName: "CCBM",
		Domain:     "ccbmbroadcasting.tv",
		Title:      "CCBM Phase 1 Acceptance",
		Headline:   "CCBM + Revvit: Rapid Broadcast Rebuild",
		Tagline: "A focused Phase 1 that pairs CCBM’s brand with Revvit’s delivery team to ship " +
			"a live-ready build and unlock the path to OTT.",
		Colors: Colors{
			Primary:    "#03082b",
			Secondary:  "#ffd15c",
			Accent:     "#4c8dff",
			Background: "#ffffff",
		},
		Scope: []string{
			"Phase 1 page live on CCBM domain with CCBM/Revvit branding.",
			"SEO + GEO (LLM model) structure; donor/sponsor story; rate card space.",
			"Ad-ready placements (VAST tags, Google Ads/AdSense hooks) for ROI tracking.",
			"Future experience previews: live player placement, PWA (“mini OTT”), promo microsite concept.",
		},
		Excluded: "Full OTT apps, programmatic ad tech, and paid media. Those are in later phases " +
			"once this foundation is live.",
		Pricing: []PriceItem{
			{
				Label:  "One-Time Setup",
				Amount: "$10,000",
				Includes: []string{
					"Design and build this page.",
					"SEO/GEO (LLM model search) friendly structure and copy.",
					"Donor and sponsor sections with rate card space.",
					"Future experience previews (live player, PWA, promo microsite).",
				},
			},
			{
				Label:  "Monthly Retainer",
				Amount: "$1,500",
				Includes: []string{
					"Hosting, monitoring, and maintenance.",
					"Copy and pricing updates as you refine offers.",
					"Light SEO/GEO (LLM model search) tuning over time.",
					"Guidance on donation provider, live streaming, PWA, and OTT timing.",
				},
			},
		},
		Timeline: []TimelineStep{
			{
				Label:   "Week 1",
				Heading: "Story & ROI Alignment",
				Summary: "Story & ROI alignment; ad/VAST placement mapping.",
				Detail:  "Lock messaging for viewers/donors/sponsors and map ad/ROI placements (VAST/Adsense) into the plan.",
			},
			{
				Label:   "Week 2",
				Heading: "Publish & Capture Demand",
				Summary: "Publish, capture demand, wire tracking.",
				Detail:  "Publish this page on your domain, activate lead/contact flows, and wire tracking for viewership and sponsor interest.",
			},
			{
				Label:   "Week 3+",
				Heading: "Monetization & Viewership Lift",
				Summary: "Turn on VAST/Ads/AdSense and donor/sponsor funnels; schedule live player/PWA build.",
				Detail:  "Turn on VAST tags, Google Ads/AdSense, and donor/sponsor funnels; then schedule the live player / PWA build.",
			},
		},
		Closing:   "This email serves as acceptance of the Phase 1 scope unless otherwise noted.",
		Agreement: "I accept the CCBM Phase 1 scope, pricing, and timeline described on this page.",
		Legal: Legal{
			NDA:          "Mutual confidentiality for business/data for 2 years.",
			Contractor:   "Revvit acts as an independent contractor.",
			GoverningLaw: "North Carolina",
			Contract:     "12-month term, then 60-day notice after first year.",
		},
	}
}
