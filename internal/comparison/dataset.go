package comparison

// categoryOrder fixes the display order of comparison sections.
var categoryOrder = []string{
	"Reach & Discovery",
	"Content & Formats",
	"Engagement Tools",
	"Monetization",
	"Analytics & Automation",
	"Privacy & Control",
}

// features is the reference comparison table. Rows are grouped here by
// category for readability; Compare re-derives grouping from the Category
// field, so ordering within this slice is not load-bearing.
var features = []Feature{
	{
		ID:       "audience-size",
		Name:     "Installed audience",
		Category: "Reach & Discovery",
		WhatsApp: ProductAssessment{
			Score:   5,
			Summary: "Over two billion installed users",
			Detail:  "In most markets nearly every phone already has WhatsApp, so a channel starts zero installs away from its audience.",
		},
		Telegram: ProductAssessment{
			Score:   3,
			Summary: "Large but a fraction of WhatsApp's reach",
			Detail:  "Telegram is big in specific regions and niches, yet in many markets your audience would need to install it first.",
		},
		Winner:      WinnerWhatsApp,
		ForCreators: true,
		ForBusiness: true,
		ForPersonal: true,
	},
	{
		ID:       "discovery",
		Name:     "In-app discovery",
		Category: "Reach & Discovery",
		WhatsApp: ProductAssessment{
			Score:   2,
			Summary: "Thin directory, little search",
			Detail:  "Channel discovery is a short curated list; growth depends almost entirely on sharing links outside the app.",
		},
		Telegram: ProductAssessment{
			Score:   4,
			Summary: "Global search and public links",
			Detail:  "Public usernames, in-app search, and similar-channel suggestions surface channels to strangers.",
		},
		Winner:      WinnerTelegram,
		ForCreators: true,
		ForBusiness: true,
	},
	{
		ID:       "forwarding-reach",
		Name:     "Forwarding reach",
		Category: "Reach & Discovery",
		WhatsApp: ProductAssessment{
			Score:   5,
			Summary: "Forwarding is the native growth loop",
			Detail:  "Posts travel through family and friend groups with strong social weight; one good post seeds dozens of chats.",
		},
		Telegram: ProductAssessment{
			Score:   3,
			Summary: "Forwards exist, travel less",
			Detail:  "Forwarding works but Telegram's group culture shares links more than it re-broadcasts posts.",
		},
		Winner:      WinnerWhatsApp,
		ForCreators: true,
		ForPersonal: true,
	},
	{
		ID:       "post-formats",
		Name:     "Post formats",
		Category: "Content & Formats",
		WhatsApp: ProductAssessment{
			Score:   4,
			Summary: "Text, media, polls, voice",
			Detail:  "Everything a typical update needs, in the composer people already know.",
		},
		Telegram: ProductAssessment{
			Score:   4,
			Summary: "Same core set, more styling",
			Detail:  "Matches WhatsApp's formats and adds inline styling and link previews.",
		},
		Winner:      WinnerTie,
		ForCreators: true,
		ForBusiness: true,
		ForPersonal: true,
	},
	{
		ID:       "long-form",
		Name:     "Long-form posts",
		Category: "Content & Formats",
		WhatsApp: ProductAssessment{
			Score:   2,
			Summary: "Long text reads poorly",
			Detail:  "No formatting beyond basics and previews truncate, so essays end up as screenshots or links out.",
		},
		Telegram: ProductAssessment{
			Score:   5,
			Summary: "Built for long posts",
			Detail:  "Full-length posts with headers, quotes, and instant-view articles keep readers inside the channel.",
		},
		Winner:      WinnerTelegram,
		ForCreators: true,
	},
	{
		ID:       "file-sharing",
		Name:     "Large file sharing",
		Category: "Content & Formats",
		WhatsApp: ProductAssessment{
			Score:   2,
			Summary: "Aggressive media compression",
			Detail:  "Media is recompressed for delivery and documents are capped well below what heavy formats need.",
		},
		Telegram: ProductAssessment{
			Score:   5,
			Summary: "Up to 2 GB, cloud-stored",
			Detail:  "Original-quality files live in the cloud and stay downloadable from the channel history forever.",
		},
		Winner:      WinnerTelegram,
		ForCreators: true,
		ForBusiness: true,
		ForPersonal: true,
	},
	{
		ID:       "polls-reactions",
		Name:     "Polls and reactions",
		Category: "Engagement Tools",
		WhatsApp: ProductAssessment{
			Score:   4,
			Summary: "Polls and emoji reactions",
			Detail:  "Followers can react and vote without leaving the channel, which keeps participation friction near zero.",
		},
		Telegram: ProductAssessment{
			Score:   4,
			Summary: "Polls, quizzes, reactions",
			Detail:  "The same tools plus quiz mode; functionally even for everyday engagement.",
		},
		Winner:      WinnerTie,
		ForCreators: true,
		ForPersonal: true,
	},
	{
		ID:       "comments-discussion",
		Name:     "Comments and discussion",
		Category: "Engagement Tools",
		WhatsApp: ProductAssessment{
			Score:   1,
			Summary: "Channels are one-way",
			Detail:  "There is no comment surface at all; conversation has to move to separate groups you manage by hand.",
		},
		Telegram: ProductAssessment{
			Score:   5,
			Summary: "Linked discussion groups",
			Detail:  "Every post can thread into a linked group, giving each update its own comment section.",
		},
		Winner:      WinnerTelegram,
		ForCreators: true,
	},
	{
		ID:       "status-stories",
		Name:     "Ephemeral status updates",
		Category: "Engagement Tools",
		WhatsApp: ProductAssessment{
			Score:   5,
			Summary: "Status sits beside every chat",
			Detail:  "Status lives one tab from conversations people open daily, so ephemeral posts get seen without a follow.",
		},
		Telegram: ProductAssessment{
			Score:   3,
			Summary: "Stories exist, adoption is thin",
			Detail:  "Channel stories shipped late and most audiences have not built the habit of checking them.",
		},
		Winner:      WinnerWhatsApp,
		ForCreators: true,
		ForBusiness: true,
		ForPersonal: true,
	},
	{
		ID:       "business-tools",
		Name:     "Catalogs and storefronts",
		Category: "Monetization",
		WhatsApp: ProductAssessment{
			Score:   5,
			Summary: "Commerce is built in",
			Detail:  "Business profiles, product catalogs, and carts let a channel post link straight into a purchase flow.",
		},
		Telegram: ProductAssessment{
			Score:   2,
			Summary: "Storefronts need bots",
			Detail:  "Selling runs through third-party bots and external checkouts stitched together per shop.",
		},
		Winner:      WinnerWhatsApp,
		ForBusiness: true,
	},
	{
		ID:       "native-payments",
		Name:     "Native payments",
		Category: "Monetization",
		WhatsApp: ProductAssessment{
			Score:   3,
			Summary: "Strong where it exists",
			Detail:  "In-chat payments are excellent in the handful of markets where they have launched.",
		},
		Telegram: ProductAssessment{
			Score:   3,
			Summary: "Provider-dependent",
			Detail:  "Payments run through regional providers and Stars, with coverage that varies country to country.",
		},
		Winner:      WinnerDepends,
		ForCreators: true,
		ForBusiness: true,
	},
	{
		ID:       "paid-subscriptions",
		Name:     "Paid subscriptions",
		Category: "Monetization",
		WhatsApp: ProductAssessment{
			Score:   1,
			Summary: "No native paywall",
			Detail:  "There is no built-in way to charge for channel access; monetization happens off-platform.",
		},
		Telegram: ProductAssessment{
			Score:   4,
			Summary: "Stars and paid posts",
			Detail:  "Paid media, Stars, and subscription bots give channels several native ways to charge.",
		},
		Winner:      WinnerTelegram,
		ForCreators: true,
	},
	{
		ID:       "channel-analytics",
		Name:     "Channel analytics",
		Category: "Analytics & Automation",
		WhatsApp: ProductAssessment{
			Score:   2,
			Summary: "Follower count and little else",
			Detail:  "You can see followers and per-post views, but nothing about growth sources or engagement over time.",
		},
		Telegram: ProductAssessment{
			Score:   4,
			Summary: "Per-post growth charts",
			Detail:  "Views, shares, growth curves, and language splits ship in the app once a channel crosses a small size bar.",
		},
		Winner:      WinnerTelegram,
		ForCreators: true,
		ForBusiness: true,
	},
	{
		ID:       "subscriber-privacy",
		Name:     "Subscriber privacy",
		Category: "Privacy & Control",
		WhatsApp: ProductAssessment{
			Score:   5,
			Summary: "Numbers stay hidden",
			Detail:  "Followers never see each other's phone numbers, and admins' numbers stay hidden from followers.",
		},
		Telegram: ProductAssessment{
			Score:   4,
			Summary: "Usernames shield numbers",
			Detail:  "Privacy is strong when people set usernames; accounts without one can leak a number into groups.",
		},
		Winner:      WinnerWhatsApp,
		ForCreators: true,
		ForBusiness: true,
		ForPersonal: true,
	},
}

// verdicts is the fixed editorial record per use case; Compare looks one up
// after normalizing the lens, so a creator fallback needs no special casing.
var verdicts = map[UseCase]Verdict{
	UseCaseCreator: {
		Headline: "Go where the audience already is",
		Summary:  "Telegram wins more feature rows, but features do not outweigh reach: your future followers already open WhatsApp every day, and forwarding gives creators a growth loop Telegram cannot match.",
		CTA:      "Project your channel's growth",
	},
	UseCaseBusiness: {
		Headline: "Catalogs and customers over channel features",
		Summary:  "WhatsApp pairs the bigger audience with built-in commerce tooling; Telegram's richer channel features matter less when the goal is moving customers toward a purchase.",
		CTA:      "Plan your customer channel",
	},
	UseCasePersonal: {
		Headline: "Whichever app your people open first",
		Summary:  "For keeping a circle in the loop both platforms do the job, so the deciding factor is which app your contacts already use, and in most regions that is WhatsApp.",
		CTA:      "Start a channel for your circle",
	},
}
