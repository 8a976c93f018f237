package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

// Dispatcher offers every direct child of <channel> or <item> to all registered namespace parsers.
// It holds no per-document state and may be shared between goroutines.
type Dispatcher struct {
	parsers []NamespaceParser
}

func NewDispatcher(parsers ...NamespaceParser) *Dispatcher {
	return &Dispatcher{parsers: parsers}
}

// DefaultDispatcher knows every supported namespace.
func DefaultDispatcher() *Dispatcher {
	return NewDispatcher(
		RSSParser(),
		ITunesParser(),
		AtomParser(),
		GooglePlayParser(),
		PodloveParser(),
		PodcastindexParser(),
		BitloveParser(),
		FeedpressParser(),
		FyydParser(),
		ContentParser(),
	)
}

func (d *Dispatcher) Namespaces() []string {
	namespaces := make([]string, 0, len(d.parsers))
	for _, p := range d.parsers {
		namespaces = append(namespaces, p.Namespace())
	}
	return namespaces
}

func (d *Dispatcher) DispatchChannelChild(builder *podcast.PodcastBuilder, node dom.Node) {
	for _, p := range d.parsers {
		p.ParseChannelNode(builder, node)
	}
}

func (d *Dispatcher) DispatchItemChild(builder *podcast.EpisodeBuilder, node dom.Node) {
	for _, p := range d.parsers {
		p.ParseItemNode(builder, node)
	}
}
