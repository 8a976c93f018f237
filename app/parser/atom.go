package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

// AtomParser reads atom:author, atom:contributor and atom:link on both channels and items.
func AtomParser() NamespaceParser {
	return &table{
		namespace: NamespaceAtom,
		channel: map[string]channelHandler{
			"author": func(b *podcast.PodcastBuilder, n dom.Node) {
				if author := atomPerson(b.CreatePersonBuilder(), n); author.HasEnoughDataToBuild() {
					b.Atom().AddAuthorBuilder(author)
				}
			},
			"contributor": func(b *podcast.PodcastBuilder, n dom.Node) {
				if contributor := atomPerson(b.CreatePersonBuilder(), n); contributor.HasEnoughDataToBuild() {
					b.Atom().AddContributorBuilder(contributor)
				}
			},
			"link": func(b *podcast.PodcastBuilder, n dom.Node) {
				if link := atomLink(b.CreateLinkBuilder(), n); link.HasEnoughDataToBuild() {
					b.Atom().AddLinkBuilder(link)
				}
			},
		},
		item: map[string]itemHandler{
			"author": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if author := atomPerson(b.CreatePersonBuilder(), n); author.HasEnoughDataToBuild() {
					b.Atom().AddAuthorBuilder(author)
				}
			},
			"contributor": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if contributor := atomPerson(b.CreatePersonBuilder(), n); contributor.HasEnoughDataToBuild() {
					b.Atom().AddContributorBuilder(contributor)
				}
			},
			"link": func(b *podcast.EpisodeBuilder, n dom.Node) {
				if link := atomLink(b.CreateLinkBuilder(), n); link.HasEnoughDataToBuild() {
					b.Atom().AddLinkBuilder(link)
				}
			},
		},
	}
}

func atomPerson(person *podcast.PersonBuilder, n dom.Node) *podcast.PersonBuilder {
	return person.Name(n.ChildText(NamespaceAtom, "name")).
		Email(n.ChildText(NamespaceAtom, "email")).
		URI(n.ChildText(NamespaceAtom, "uri"))
}

func atomLink(link *podcast.LinkBuilder, n dom.Node) *podcast.LinkBuilder {
	return link.Href(n.Attr("href")).
		HrefLang(n.Attr("hreflang")).
		Length(n.Attr("length")).
		Rel(n.Attr("rel")).
		Title(n.Attr("title")).
		Type(n.Attr("type"))
}
