package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

func GooglePlayParser() NamespaceParser {
	return &table{
		namespace: NamespaceGooglePlay,
		channel: map[string]channelHandler{
			"author":      func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.GooglePlay().Author(v) }) },
			"email":       func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.GooglePlay().Owner(v) }) },
			"owner":       func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.GooglePlay().Owner(v) }) },
			"description": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.GooglePlay().Description(v) }) },
			"explicit": func(b *podcast.PodcastBuilder, n dom.Node) {
				if explicit := dom.ParseExplicit(n.Text()); explicit != nil {
					b.GooglePlay().Explicit(explicit)
				}
			},
			"block": func(b *podcast.PodcastBuilder, n dom.Node) {
				if block := dom.ParseBool(n.Text()); block != nil {
					b.GooglePlay().Block(block)
				}
			},
			"image": func(b *podcast.PodcastBuilder, n dom.Node) {
				if image := hrefOnlyImage(b.CreateHrefOnlyImageBuilder(), n); image.HasEnoughDataToBuild() {
					b.GooglePlay().ImageBuilder(image)
				}
			},
			"category": func(b *podcast.PodcastBuilder, n dom.Node) {
				if category := iTunesCategory(b.CreateITunesStyleCategoryBuilder(), n); category.HasEnoughDataToBuild() {
					b.GooglePlay().AddCategoryBuilder(category)
				}
			},
		},
		item: map[string]itemHandler{
			"description": func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.GooglePlay().Description(v) }) },
			"explicit": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if explicit := dom.ParseExplicit(n.Text()); explicit != nil {
					b.GooglePlay().Explicit(explicit)
				}
			},
			"block": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if block := dom.ParseBool(n.Text()); block != nil {
					b.GooglePlay().Block(block)
				}
			},
			"image": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if image := hrefOnlyImage(b.CreateHrefOnlyImageBuilder(), n); image.HasEnoughDataToBuild() {
					b.GooglePlay().ImageBuilder(image)
				}
			},
		},
	}
}
