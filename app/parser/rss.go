package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

// RSSParser handles the un-namespaced RSS 2.0 elements of <channel> and <item>.
func RSSParser() NamespaceParser {
	return &table{
		namespace: NamespaceRSS,
		channel: map[string]channelHandler{
			"title":       func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Title(v) }) },
			"link":        func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Link(v) }) },
			"description": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Description(v) }) },
			"language":    func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Language(v) }) },
			"copyright":   func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Copyright(v) }) },
			"docs":        func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Docs(v) }) },
			"generator":   func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.Generator(v) }) },
			"managingEditor": func(b *podcast.PodcastBuilder, n dom.Node) {
				text(n, func(v string) { b.ManagingEditor(v) })
			},
			"webMaster": func(b *podcast.PodcastBuilder, n dom.Node) { text(n, func(v string) { b.WebMaster(v) }) },
			"pubDate": func(b *podcast.PodcastBuilder, n dom.Node) {
				if date := dom.ParseDate(n.Text()); date != nil {
					b.PubDate(date)
				}
			},
			"lastBuildDate": func(b *podcast.PodcastBuilder, n dom.Node) {
				if date := dom.ParseDate(n.Text()); date != nil {
					b.LastBuildDate(date)
				}
			},
			"ttl": func(b *podcast.PodcastBuilder, n dom.Node) {
				if ttl := dom.ParseInt(n.Text()); ttl != nil {
					b.TTL(ttl)
				}
			},
			"image": parseChannelImage,
			"category": func(b *podcast.PodcastBuilder, n dom.Node) {
				if category := rssCategory(b.CreateRSSCategoryBuilder(), n); category.HasEnoughDataToBuild() {
					b.AddCategoryBuilder(category)
				}
			},
		},
		item: map[string]itemHandler{
			"title":       func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Title(v) }) },
			"link":        func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Link(v) }) },
			"description": func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Description(v) }) },
			"author":      func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Author(v) }) },
			"comments":    func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Comments(v) }) },
			"source":      func(b *podcast.EpisodeBuilder, n dom.Node) { text(n, func(v string) { b.Source(v) }) },
			"pubDate": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if date := dom.ParseDate(n.Text()); date != nil {
					b.PubDate(date)
				}
			},
			"category": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if category := rssCategory(b.CreateRSSCategoryBuilder(), n); category.HasEnoughDataToBuild() {
					b.AddCategoryBuilder(category)
				}
			},
			"enclosure": parseEnclosure,
			"guid":      parseGUID,
		},
	}
}

func parseChannelImage(b *podcast.PodcastBuilder, n dom.Node) {
	image := b.CreateImageBuilder()
	for _, child := range n.Children() {
		if child.NamespaceURI() != NamespaceRSS {
			continue
		}
		switch child.LocalName() {
		case "url":
			text(child, func(v string) { image.URL(v) })
		case "title":
			text(child, func(v string) { image.Title(v) })
		case "link":
			text(child, func(v string) { image.Link(v) })
		case "description":
			text(child, func(v string) { image.Description(v) })
		case "width":
			if width := dom.ParseInt(child.Text()); width != nil {
				image.Width(width)
			}
		case "height":
			if height := dom.ParseInt(child.Text()); height != nil {
				image.Height(height)
			}
		}
	}
	if image.HasEnoughDataToBuild() {
		b.ImageBuilder(image)
	}
}

func rssCategory(category *podcast.RSSCategoryBuilder, n dom.Node) *podcast.RSSCategoryBuilder {
	text(n, func(v string) { category.Category(v) })
	attr(n, "domain", func(v string) { category.Domain(v) })
	return category
}

// parseEnclosure attaches the enclosure only when url, length and type are all usable.
func parseEnclosure(b *podcast.EpisodeBuilder, n dom.Node) {
	enclosure := b.CreateEnclosureBuilder()
	attr(n, "url", func(v string) { enclosure.URL(v) })
	attr(n, "type", func(v string) { enclosure.Type(v) })
	if length := dom.ParseInt64(n.Attr("length")); length != nil {
		enclosure.Length(*length)
	}
	if enclosure.HasEnoughDataToBuild() {
		b.EnclosureBuilder(enclosure)
	}
}

// parseGUID accepts both the isPermaLink spelling of RSS 2.0 and the lower-case variant.
func parseGUID(b *podcast.EpisodeBuilder, n dom.Node) {
	guid := b.CreateGUIDBuilder()
	text(n, func(v string) { guid.TextContent(v) })
	permalink := n.Attr("isPermaLink")
	if permalink == "" {
		permalink = n.Attr("isPermalink")
	}
	guid.IsPermalink(dom.ParseBool(permalink))
	if guid.HasEnoughDataToBuild() {
		b.GUIDBuilder(guid)
	}
}
