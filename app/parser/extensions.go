package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

// BitloveParser picks up bitlove:guid, which is an attribute on the RSS <enclosure> element.
func BitloveParser() NamespaceParser {
	return &table{
		namespace: NamespaceBitlove,
		itemAttrs: map[string]itemAttrHandler{
			"guid": func(b *podcast.EpisodeBuilder, host dom.Node, value string) {
				if host.Is(NamespaceRSS, "enclosure") && value != "" {
					b.Bitlove().GUID(value)
				}
			},
		},
	}
}

func FeedpressParser() NamespaceParser {
	return &table{
		namespace: NamespaceFeedpress,
		channel: map[string]channelHandler{
			"newsletterId": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Feedpress().NewsletterID(v) }) },
			"locale":       func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Feedpress().Locale(v) }) },
			"podcastId":    func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Feedpress().PodcastID(v) }) },
			"cssFile":      func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Feedpress().CSSFile(v) }) },
			"link":         func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Feedpress().Link(v) }) },
		},
	}
}

func FyydParser() NamespaceParser {
	return &table{
		namespace: NamespaceFyyd,
		channel: map[string]channelHandler{
			"verify": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Fyyd().Verify(v) }) },
		},
	}
}

// ContentParser reads content:encoded from the RSS Content module.
func ContentParser() NamespaceParser {
	return &table{
		namespace: NamespaceContent,
		item: map[string]itemHandler{
			"encoded": func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Content().Encoded(v) }) },
		},
	}
}
