package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

func ITunesParser() NamespaceParser {
	return &table{
		namespace: NamespaceITunes,
		channel: map[string]channelHandler{
			"author":   func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Author(v) }) },
			"keywords": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Keywords(v) }) },
			"subtitle": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Subtitle(v) }) },
			"summary":  func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Summary(v) }) },
			"title":    func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Title(v) }) },
			"new-feed-url": func(b *podcast.PodcastBuilder, n dom.Node) {
				text(n, func(v string) { b.ITunes().NewFeedURL(v) })
			},
			"block": func(b *podcast.PodcastBuilder, n dom.Node) {
				if block := dom.ParseBool(n.Text()); block != nil {
					b.ITunes().Block(block)
				}
			},
			"complete": func(b *podcast.PodcastBuilder, n dom.Node) {
				if complete := dom.ParseBool(n.Text()); complete != nil {
					b.ITunes().Complete(complete)
				}
			},
			"explicit": func(b *podcast.PodcastBuilder, n dom.Node) {
				if explicit := dom.ParseExplicit(n.Text()); explicit != nil {
					b.ITunes().Explicit(explicit)
				}
			},
			"type": func(b *podcast.PodcastBuilder, n dom.Node) {
				if showType := podcast.ParseShowType(n.Text()); showType != "" {
					b.ITunes().Type(showType)
				}
			},
			"image": func(b *podcast.PodcastBuilder, n dom.Node) {
				if image := hrefOnlyImage(b.CreateHrefOnlyImageBuilder(), n); image.HasEnoughDataToBuild() {
					b.ITunes().ImageBuilder(image)
				}
			},
			"category": func(b *podcast.PodcastBuilder, n dom.Node) {
				if category := iTunesCategory(b.CreateITunesStyleCategoryBuilder(), n); category.HasEnoughDataToBuild() {
					b.ITunes().AddCategoryBuilder(category)
				}
			},
			"owner": parseITunesOwner,
		},
		item: map[string]itemHandler{
			"author":   func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Author(v) }) },
			"duration": func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Duration(v) }) },
			"subtitle": func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Subtitle(v) }) },
			"summary":  func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Summary(v) }) },
			"title":    func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.ITunes().Title(v) }) },
			"block": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if block := dom.ParseBool(n.Text()); block != nil {
					b.ITunes().Block(block)
				}
			},
			"explicit": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if explicit := dom.ParseExplicit(n.Text()); explicit != nil {
					b.ITunes().Explicit(explicit)
				}
			},
			"season": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if season := dom.ParseInt(n.Text()); season != nil {
					b.ITunes().Season(season)
				}
			},
			"episode": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if episode := dom.ParseInt(n.Text()); episode != nil {
					b.ITunes().Episode(episode)
				}
			},
			"episodeType": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if episodeType := podcast.ParseEpisodeType(n.Text()); episodeType != "" {
					b.ITunes().EpisodeType(episodeType)
				}
			},
			"image": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if image := hrefOnlyImage(b.CreateHrefOnlyImageBuilder(), n); image.HasEnoughDataToBuild() {
					b.ITunes().ImageBuilder(image)
				}
			},
		},
	}
}

func hrefOnlyImage(image *podcast.HrefOnlyImageBuilder, n dom.Node) *podcast.HrefOnlyImageBuilder {
	attr(n, "href", func(v string) { image.Href(v) })
	return image
}

// iTunesCategory reads the text attribute and takes the first nested category of the same
// namespace as the subcategory. Google Play categories share the layout.
func iTunesCategory(category *podcast.ITunesStyleCategoryBuilder, n dom.Node) *podcast.ITunesStyleCategoryBuilder {
	attr(n, "text", func(v string) { category.Category(v) })
	if sub, ok := n.Child(n.NamespaceURI(), "category"); ok {
		attr(sub, "text", func(v string) { category.Subcategory(v) })
	}
	return category
}

func parseITunesOwner(b *podcast.PodcastBuilder, n dom.Node) {
	owner := b.CreatePersonBuilder()
	owner.Name(n.ChildText(NamespaceITunes, "name")).
		Email(n.ChildText(NamespaceITunes, "email"))
	if owner.HasEnoughDataToBuild() {
		b.ITunes().OwnerBuilder(owner)
	}
}
