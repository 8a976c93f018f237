package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

const (
	NamespaceRSS          = ""
	NamespaceAtom         = "http://www.w3.org/2005/Atom"
	NamespaceITunes       = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	NamespaceGooglePlay   = "http://www.google.com/schemas/play-podcasts/1.0"
	NamespacePodlove      = "http://podlove.org/simple-chapters"
	NamespacePodcastindex = "https://podcastindex.org/namespace/1.0"
	NamespaceBitlove      = "http://bitlove.org"
	NamespaceFeedpress    = "https://feed.press/xmlns"
	NamespaceFyyd         = "https://fyyd.de/fyyd-ns/"
	NamespaceContent      = "http://purl.org/rss/1.0/modules/content/"
)

// NamespaceParser extracts the elements of one XML namespace into podcast builders.
// Both methods ignore nodes outside the parser's namespace and never fail: unusable values are skipped.
type NamespaceParser interface {
	// Namespace is the URI handled by the parser, "" for plain RSS 2.0.
	Namespace() string
	ParseChannelNode(builder *podcast.PodcastBuilder, node dom.Node)
	ParseItemNode(builder *podcast.EpisodeBuilder, node dom.Node)
}

type channelHandler func(builder *podcast.PodcastBuilder, node dom.Node)

type itemHandler func(builder *podcast.EpisodeBuilder, node dom.Node)

// itemAttrHandler receives a namespaced attribute found on an item child of another namespace.
type itemAttrHandler func(builder *podcast.EpisodeBuilder, host dom.Node, value string)

// table is a NamespaceParser driven by local-name lookups.
type table struct {
	namespace string
	channel   map[string]channelHandler
	item      map[string]itemHandler
	itemAttrs map[string]itemAttrHandler
}

func (t *table) Namespace() string {
	return t.namespace
}

func (t *table) ParseChannelNode(builder *podcast.PodcastBuilder, node dom.Node) {
	if node.NamespaceURI() != t.namespace {
		return
	}
	if handle, ok := t.channel[node.LocalName()]; ok {
		handle(builder, node)
	}
}

func (t *table) ParseItemNode(builder *podcast.EpisodeBuilder, node dom.Node) {
	if node.NamespaceURI() == t.namespace {
		if handle, ok := t.item[node.LocalName()]; ok {
			handle(builder, node)
		}
	}
	if t.namespace == "" || len(t.itemAttrs) == 0 {
		return
	}
	for _, attr := range node.Attrs() {
		if attr.NamespaceURI != t.namespace {
			continue
		}
		if handle, ok := t.itemAttrs[attr.LocalName]; ok {
			handle(builder, node, attr.Value)
		}
	}
}

// text calls set with the node's text unless it is blank.
func text(node dom.Node, set func(string)) {
	if value := node.Text(); value != "" {
		set(value)
	}
}

func attr(node dom.Node, name string, set func(string)) {
	if value := node.Attr(name); value != "" {
		set(value)
	}
}
