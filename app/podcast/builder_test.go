package podcast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fullEpisode() Episode {
	return Episode{
		Title:       "Episode 1",
		Link:        "http://example.org/episode1",
		Description: "First episode",
		Author:      "author@example.org (Jane)",
		Categories:  []RSSCategory{{Category: "News", Domain: "http://example.org/cat"}},
		Comments:    "http://example.org/comments",
		Enclosure:   &Enclosure{URL: "http://example.org/ep1.mp3", Length: 78589133, Type: "audio/mpeg"},
		GUID:        &GUID{Text: "ep1", IsPermalink: ptr(false)},
		PubDate:     ptr(time.Date(2018, time.March, 16, 22, 49, 8, 0, time.UTC)),
		Source:      "http://example.org/source",
		Content:     &EpisodeContent{Encoded: "<p>Show notes</p>"},
		ITunes: &EpisodeITunes{
			Title:       "iTunes title",
			Duration:    "1:23:45",
			Image:       &HrefOnlyImage{Href: "http://example.org/ep1.jpg"},
			Explicit:    ptr(false),
			Block:       ptr(true),
			Season:      ptr(2),
			Episode:     ptr(1),
			EpisodeType: EpisodeTypeFull,
			Author:      "Jane",
			Subtitle:    "Sub",
			Summary:     "Sum",
		},
		Atom: &Atom{
			Authors:      []Person{{Name: "Jane", Email: "jane@example.org", URI: "http://example.org/jane"}},
			Contributors: []Person{{Name: "John"}},
			Links:        []Link{{Href: "http://example.org/alt", Rel: "alternate", Type: "text/html"}},
		},
		Podlove: &EpisodePodlove{SimpleChapters: []SimpleChapter{
			{Start: "00:00:00.000", Title: "Intro", Href: "http://example.org/intro"},
			{Start: "00:05:00.000", Title: "Main", Image: "http://example.org/main.jpg"},
		}},
		GooglePlay: &EpisodeGooglePlay{Description: "Play", Explicit: ptr(true)},
		Bitlove:    &EpisodeBitlove{GUID: "bitlove-guid"},
		Podcastindex: &EpisodePodcastindex{
			Chapters:    &Chapters{URL: "http://example.org/chapters.json", Type: "application/json+chapters"},
			Soundbites:  []Soundbite{{StartTime: 73500 * time.Millisecond, Duration: 60 * time.Second, Title: "Best bit"}},
			Transcripts: []Transcript{{URL: "http://example.org/t.srt", Type: "application/srt", Language: "en", Rel: "captions"}},
		},
	}
}

func fullPodcast() Podcast {
	return Podcast{
		Title:          "Podcast",
		Link:           "http://example.org",
		Description:    "A podcast",
		Language:       "en-us",
		PubDate:        ptr(time.Date(2018, time.March, 16, 22, 49, 8, 0, time.UTC)),
		LastBuildDate:  ptr(time.Date(2018, time.March, 17, 8, 0, 0, 0, time.UTC)),
		Generator:      "generator",
		Copyright:      "(c) 2018",
		Docs:           "http://blogs.law.harvard.edu/tech/rss",
		ManagingEditor: "editor@example.org",
		WebMaster:      "webmaster@example.org",
		TTL:            ptr(60),
		Image: &Image{
			URL: "http://example.org/cover.jpg", Title: "Podcast", Link: "http://example.org",
			Width: ptr(144), Height: ptr(144), Description: "Cover",
		},
		Episodes:   []Episode{fullEpisode()},
		Categories: []RSSCategory{{Category: "Technology"}},
		ITunes: &PodcastITunes{
			Subtitle:   "Sub",
			Summary:    "Sum",
			Image:      &HrefOnlyImage{Href: "http://example.org/itunes.jpg"},
			Keywords:   "a,b",
			Author:     "Jane",
			Categories: []ITunesStyleCategory{{Category: "Technology", Subcategory: "Podcasting"}},
			Explicit:   ptr(false),
			Block:      ptr(false),
			Complete:   ptr(true),
			Type:       ShowTypeSerial,
			Owner:      &Person{Name: "Jane", Email: "jane@example.org"},
			Title:      "iTunes title",
			NewFeedURL: "http://example.org/new.xml",
		},
		Atom:      &Atom{Links: []Link{{Href: "http://example.org/feed.xml", Rel: "self", Type: "application/rss+xml"}}},
		Fyyd:      &PodcastFyyd{Verify: "abcdef"},
		Feedpress: &PodcastFeedpress{NewsletterID: "n", Locale: "en", PodcastID: "p", CSSFile: "c.css", Link: "http://feedpress.me/x"},
		GooglePlay: &PodcastGooglePlay{
			Author:     "Jane",
			Owner:      "jane@example.org",
			Categories: []ITunesStyleCategory{{Category: "Technology"}},
			Image:      &HrefOnlyImage{Href: "http://example.org/play.jpg"},
		},
		Podcastindex: &PodcastPodcastindex{
			Locked:  &Locked{Owner: "jane@example.org", Locked: true},
			Funding: []Funding{{URL: "http://example.org/donate", Message: "Support us"}},
		},
	}
}

func TestPodcastRoundTrip(t *testing.T) {
	original := fullPodcast()

	rebuilt, ok := NewPodcastBuilder().ApplyFrom(&original).Build()
	require.True(t, ok)
	assert.Equal(t, original, rebuilt)
}

func TestEpisodeRoundTrip(t *testing.T) {
	original := fullEpisode()

	rebuilt, ok := NewEpisodeBuilder().ApplyFrom(&original).Build()
	require.True(t, ok)
	assert.Equal(t, original, rebuilt)
}

func TestMinimalRoundTrip(t *testing.T) {
	original := Podcast{Title: "t", Link: "l", Description: "d", Language: "en"}

	rebuilt, ok := NewPodcastBuilder().ApplyFrom(&original).Build()
	require.True(t, ok)
	assert.Equal(t, original, rebuilt)
	assert.Nil(t, rebuilt.ITunes)
	assert.Nil(t, rebuilt.Atom)
	assert.Nil(t, rebuilt.Episodes)
}

func TestBuildIsIdempotent(t *testing.T) {
	original := fullPodcast()
	builder := NewPodcastBuilder().ApplyFrom(&original)

	first, ok := builder.Build()
	require.True(t, ok)
	second, ok := builder.Build()
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestApplyFromNil(t *testing.T) {
	_, ok := NewPodcastBuilder().ApplyFrom(nil).Build()
	assert.False(t, ok)

	_, ok = NewEpisodeBuilder().ApplyFrom(nil).Build()
	assert.False(t, ok)
}

func TestPodcastRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		builder *PodcastBuilder
	}{
		{"missing title", NewPodcastBuilder().Link("l").Description("d").Language("en")},
		{"missing link", NewPodcastBuilder().Title("t").Description("d").Language("en")},
		{"missing description", NewPodcastBuilder().Title("t").Link("l").Language("en")},
		{"missing language", NewPodcastBuilder().Title("t").Link("l").Description("d")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.builder.HasEnoughDataToBuild())
			_, ok := tt.builder.Build()
			assert.False(t, ok)
		})
	}
}

func TestPodcastDropsIncompleteEpisodes(t *testing.T) {
	builder := NewPodcastBuilder().Title("t").Link("l").Description("d").Language("en")
	builder.AddEpisodeBuilder(builder.CreateEpisodeBuilder().Title("kept"))
	builder.AddEpisodeBuilder(builder.CreateEpisodeBuilder().Link("no title"))

	result, ok := builder.Build()
	require.True(t, ok)
	require.Len(t, result.Episodes, 1)
	assert.Equal(t, "kept", result.Episodes[0].Title)
}

func TestEnclosureNeedsAllFields(t *testing.T) {
	tests := []struct {
		name     string
		builder  *EnclosureBuilder
		expected bool
	}{
		{"all set", NewEnclosureBuilder().URL("a").Length(10).Type("audio/mp3"), true},
		{"zero length", NewEnclosureBuilder().URL("a").Length(0).Type("audio/mp3"), true},
		{"missing url", NewEnclosureBuilder().Length(10).Type("audio/mp3"), false},
		{"missing length", NewEnclosureBuilder().URL("a").Type("audio/mp3"), false},
		{"missing type", NewEnclosureBuilder().URL("a").Length(10), false},
		{"negative length", NewEnclosureBuilder().URL("a").Length(-1).Type("audio/mp3"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.builder.Build()
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestGUIDPermalinkStates(t *testing.T) {
	for _, permalink := range []*bool{nil, ptr(false), ptr(true)} {
		original, ok := NewGUIDBuilder().TextContent("abc").IsPermalink(permalink).Build()
		require.True(t, ok)

		rebuilt, ok := NewGUIDBuilder().ApplyFrom(&original).Build()
		require.True(t, ok)
		assert.Equal(t, permalink, rebuilt.IsPermalink)
	}

	_, ok := NewGUIDBuilder().IsPermalink(ptr(true)).Build()
	assert.False(t, ok)
}

func TestSoundbiteBounds(t *testing.T) {
	_, ok := NewSoundbiteBuilder().StartTime(-time.Second).Duration(15 * time.Second).Build()
	assert.False(t, ok)

	_, ok = NewSoundbiteBuilder().StartTime(0).Duration(0).Build()
	assert.False(t, ok)

	_, ok = NewSoundbiteBuilder().StartTime(0).Duration(-time.Second).Build()
	assert.False(t, ok)

	_, ok = NewSoundbiteBuilder().Duration(15 * time.Second).Build()
	assert.False(t, ok)

	soundbite, ok := NewSoundbiteBuilder().StartTime(0).Duration(15 * time.Second).Build()
	require.True(t, ok)
	assert.Equal(t, Soundbite{StartTime: 0, Duration: 15 * time.Second}, soundbite)
}

func TestEmptyExtensionsAreAbsent(t *testing.T) {
	builder := NewEpisodeBuilder().Title("t")
	builder.Podlove().AddSimpleChapterBuilder(NewSimpleChapterBuilder().Title("no start"))
	builder.Podcastindex().AddSoundbiteBuilder(NewSoundbiteBuilder().Title("no times"))
	builder.ITunes().ImageBuilder(NewHrefOnlyImageBuilder())

	episode, ok := builder.Build()
	require.True(t, ok)
	assert.Nil(t, episode.Content)
	assert.Nil(t, episode.ITunes)
	assert.Nil(t, episode.Atom)
	assert.Nil(t, episode.Podlove)
	assert.Nil(t, episode.GooglePlay)
	assert.Nil(t, episode.Bitlove)
	assert.Nil(t, episode.Podcastindex)
}

func TestSingleFieldMakesExtensionPresent(t *testing.T) {
	builder := NewPodcastBuilder().Title("t").Link("l").Description("d").Language("en")
	builder.ITunes().Explicit(ptr(false))
	builder.Feedpress().Locale("de")

	result, ok := builder.Build()
	require.True(t, ok)
	require.NotNil(t, result.ITunes)
	assert.Equal(t, ptr(false), result.ITunes.Explicit)
	require.NotNil(t, result.Feedpress)
	assert.Equal(t, "de", result.Feedpress.Locale)
	assert.Nil(t, result.GooglePlay)
	assert.Nil(t, result.Podcastindex)
	assert.Nil(t, result.Fyyd)
}

func TestLastSetterWins(t *testing.T) {
	episode, ok := NewEpisodeBuilder().Title("first").Title("second").Build()
	require.True(t, ok)
	assert.Equal(t, "second", episode.Title)
}

func TestLockedNeedsOwnerAndFlag(t *testing.T) {
	_, ok := NewLockedBuilder().Owner("me").Build()
	assert.False(t, ok)

	locked, ok := NewLockedBuilder().Owner("me").Locked(false).Build()
	require.True(t, ok)
	assert.Equal(t, Locked{Owner: "me", Locked: false}, locked)
}

func TestParseShowAndEpisodeType(t *testing.T) {
	assert.Equal(t, ShowTypeSerial, ParseShowType(" Serial "))
	assert.Equal(t, ShowType(""), ParseShowType("weekly"))
	assert.Equal(t, EpisodeTypeTrailer, ParseEpisodeType("TRAILER"))
	assert.Equal(t, EpisodeType(""), ParseEpisodeType("teaser"))
}

func TestNilBuilderIsNotReady(t *testing.T) {
	var image *ImageBuilder
	assert.False(t, image.HasEnoughDataToBuild())
	assert.Nil(t, buildOptional[Image](image))
}
