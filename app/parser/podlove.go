package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

func PodloveParser() NamespaceParser {
	return &table{
		namespace: NamespacePodlove,
		item: map[string]itemHandler{
			"chapters": parseSimpleChapters,
		},
	}
}

func parseSimpleChapters(b *podcast.EpisodeBuilder, n dom.Node) {
	for _, child := range n.Children() {
		if !child.Is(NamespacePodlove, "chapter") {
			continue
		}
		chapter := b.CreateSimpleChapterBuilder().
			Start(child.Attr("start")).
			Title(child.Attr("title")).
			Href(child.Attr("href")).
			Image(child.Attr("image"))
		if chapter.HasEnoughDataToBuild() {
			b.Podlove().AddSimpleChapterBuilder(chapter)
		}
	}
}
