package parser

import (
	"github.com/lysyi3m/podcast-rss/app/dom"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

func PodcastindexParser() NamespaceParser {
	return &table{
		namespace: NamespacePodcastindex,
		channel: map[string]channelHandler{
			"locked":  parseLocked,
			"funding": parseFunding,
		},
		item: map[string]itemHandler{
			"chapters":   parseChapters,
			"soundbite":  parseSoundbite,
			"transcript": parseTranscript,
		},
	}
}

func parseLocked(b *podcast.PodcastBuilder, n dom.Node) {
	locked := b.CreateLockedBuilder().Owner(n.Attr("owner"))
	if value := dom.ParseBool(n.Text()); value != nil {
		locked.Locked(*value)
	}
	if locked.HasEnoughDataToBuild() {
		b.Podcastindex().LockedBuilder(locked)
	}
}

func parseFunding(b *podcast.PodcastBuilder, n dom.Node) {
	funding := b.CreateFundingBuilder().URL(n.Attr("url")).Message(n.Text())
	if funding.HasEnoughDataToBuild() {
		b.Podcastindex().AddFundingBuilder(funding)
	}
}

func parseChapters(b *podcast.EpisodeBuilder, n dom.Node) {
	chapters := b.CreateChaptersBuilder().URL(n.Attr("url")).Type(n.Attr("type"))
	if chapters.HasEnoughDataToBuild() {
		b.Podcastindex().ChaptersBuilder(chapters)
	}
}

// parseSoundbite reads startTime and duration as fractional seconds.
func parseSoundbite(b *podcast.EpisodeBuilder, n dom.Node) {
	soundbite := b.CreateSoundbiteBuilder().Title(n.Text())
	if start := dom.ParseSeconds(n.Attr("startTime")); start != nil {
		soundbite.StartTime(*start)
	}
	if duration := dom.ParseSeconds(n.Attr("duration")); duration != nil {
		soundbite.Duration(*duration)
	}
	if soundbite.HasEnoughDataToBuild() {
		b.Podcastindex().AddSoundbiteBuilder(soundbite)
	}
}

func parseTranscript(b *podcast.EpisodeBuilder, n dom.Node) {
	transcript := b.CreateTranscriptBuilder().
		URL(n.Attr("url")).
		Type(n.Attr("type")).
		Language(n.Attr("language")).
		Rel(n.Attr("rel"))
	if transcript.HasEnoughDataToBuild() {
		b.Podcastindex().AddTranscriptBuilder(transcript)
	}
}
