// Package parser turns RSS 2.0 podcast feeds into podcast.Podcast values.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

var (
	ErrNotRSS            = errors.New("document is not an RSS feed")
	ErrNoChannel         = errors.New("RSS document has no channel element")
	ErrIncompletePodcast = errors.New("feed lacks title, link, description or language")
)

// Parser walks <channel> and its <item> children and feeds every child element to a Dispatcher.
type Parser struct {
	dispatcher *Dispatcher
}

func NewParser() *Parser {
	return &Parser{dispatcher: DefaultDispatcher()}
}

func NewParserWithDispatcher(dispatcher *Dispatcher) *Parser {
	return &Parser{dispatcher: dispatcher}
}

// Run parses a raw feed document. An error means the document itself is unusable.
// ok is false when the document is RSS but the channel lacks one of the required fields.
func (p *Parser) Run(data []byte) (podcast.Podcast, bool, error) {
	if len(bytes.TrimSpace(data)) == 0 || gofeed.DetectFeedType(bytes.NewReader(data)) != gofeed.FeedTypeRSS {
		return podcast.Podcast{}, false, ErrNotRSS
	}

	root, err := dom.Parse(bytes.NewReader(data))
	if err != nil {
		return podcast.Podcast{}, false, fmt.Errorf("failed to parse feed: %w", err)
	}
	if !root.Is("", "rss") {
		return podcast.Podcast{}, false, ErrNotRSS
	}

	channel, found := root.Child("", "channel")
	if !found {
		return podcast.Podcast{}, false, ErrNoChannel
	}

	result, ok := p.ParseChannel(channel)
	return result, ok, nil
}

// ParseChannel builds a podcast from an already parsed <channel> element.
func (p *Parser) ParseChannel(channel dom.Node) (podcast.Podcast, bool) {
	builder := podcast.NewPodcastBuilder()
	items := 0
	for _, child := range channel.Children() {
		if child.Is(NamespaceRSS, "item") {
			builder.AddEpisodeBuilder(p.parseItem(builder, child))
			items++
			continue
		}
		p.dispatcher.DispatchChannelChild(builder, child)
	}

	result, ok := builder.Build()
	slog.Debug("Parsed channel", "title", result.Title, "items", items, "episodes", len(result.Episodes), "complete", ok)
	return result, ok
}

func (p *Parser) parseItem(builder *podcast.PodcastBuilder, item dom.Node) *podcast.EpisodeBuilder {
	episode := builder.CreateEpisodeBuilder()
	for _, child := range item.Children() {
		p.dispatcher.DispatchItemChild(episode, child)
	}
	return episode
}
