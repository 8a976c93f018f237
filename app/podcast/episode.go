package podcast

import "time"

// Episode is one <item> of a podcast feed.
type Episode struct {
	Title        string               `json:"title"`
	Link         string               `json:"link,omitempty"`
	Description  string               `json:"description,omitempty"`
	Author       string               `json:"author,omitempty"`
	Categories   []RSSCategory        `json:"categories,omitempty"`
	Comments     string               `json:"comments,omitempty"`
	Enclosure    *Enclosure           `json:"enclosure,omitempty"`
	GUID         *GUID                `json:"guid,omitempty"`
	PubDate      *time.Time           `json:"pubDate,omitempty"`
	Source       string               `json:"source,omitempty"`
	Content      *EpisodeContent      `json:"content,omitempty"`
	ITunes       *EpisodeITunes       `json:"itunes,omitempty"`
	Atom         *Atom                `json:"atom,omitempty"`
	Podlove      *EpisodePodlove      `json:"podlove,omitempty"`
	GooglePlay   *EpisodeGooglePlay   `json:"googlePlay,omitempty"`
	Bitlove      *EpisodeBitlove      `json:"bitlove,omitempty"`
	Podcastindex *EpisodePodcastindex `json:"podcastindex,omitempty"`
}

// EpisodeBuilder collects the RSS fields of an item plus one sub-builder per namespace extension.
// The extension builders are created with the episode builder and are never replaced.
type EpisodeBuilder struct {
	title       string
	link        string
	description string
	author      string
	categories  []*RSSCategoryBuilder
	comments    string
	enclosure   *EnclosureBuilder
	guid        *GUIDBuilder
	pubDate     *time.Time
	source      string

	content      *EpisodeContentBuilder
	itunes       *EpisodeITunesBuilder
	atom         *AtomBuilder
	podlove      *EpisodePodloveBuilder
	googlePlay   *EpisodeGooglePlayBuilder
	bitlove      *EpisodeBitloveBuilder
	podcastindex *EpisodePodcastindexBuilder
}

func NewEpisodeBuilder() *EpisodeBuilder {
	return &EpisodeBuilder{
		content:      NewEpisodeContentBuilder(),
		itunes:       NewEpisodeITunesBuilder(),
		atom:         NewAtomBuilder(),
		podlove:      NewEpisodePodloveBuilder(),
		googlePlay:   NewEpisodeGooglePlayBuilder(),
		bitlove:      NewEpisodeBitloveBuilder(),
		podcastindex: NewEpisodePodcastindexBuilder(),
	}
}

func (b *EpisodeBuilder) Title(title string) *EpisodeBuilder {
	b.title = title
	return b
}

func (b *EpisodeBuilder) Link(link string) *EpisodeBuilder {
	b.link = link
	return b
}

func (b *EpisodeBuilder) Description(description string) *EpisodeBuilder {
	b.description = description
	return b
}

func (b *EpisodeBuilder) Author(author string) *EpisodeBuilder {
	b.author = author
	return b
}

func (b *EpisodeBuilder) AddCategoryBuilder(category *RSSCategoryBuilder) *EpisodeBuilder {
	b.categories = append(b.categories, category)
	return b
}

func (b *EpisodeBuilder) AddAllCategoryBuilders(categories []*RSSCategoryBuilder) *EpisodeBuilder {
	b.categories = append(b.categories, categories...)
	return b
}

func (b *EpisodeBuilder) Comments(comments string) *EpisodeBuilder {
	b.comments = comments
	return b
}

func (b *EpisodeBuilder) EnclosureBuilder(enclosure *EnclosureBuilder) *EpisodeBuilder {
	b.enclosure = enclosure
	return b
}

func (b *EpisodeBuilder) GUIDBuilder(guid *GUIDBuilder) *EpisodeBuilder {
	b.guid = guid
	return b
}

func (b *EpisodeBuilder) PubDate(pubDate *time.Time) *EpisodeBuilder {
	b.pubDate = pubDate
	return b
}

func (b *EpisodeBuilder) Source(source string) *EpisodeBuilder {
	b.source = source
	return b
}

func (b *EpisodeBuilder) Content() *EpisodeContentBuilder {
	return b.content
}

func (b *EpisodeBuilder) ITunes() *EpisodeITunesBuilder {
	return b.itunes
}

func (b *EpisodeBuilder) Atom() *AtomBuilder {
	return b.atom
}

func (b *EpisodeBuilder) Podlove() *EpisodePodloveBuilder {
	return b.podlove
}

func (b *EpisodeBuilder) GooglePlay() *EpisodeGooglePlayBuilder {
	return b.googlePlay
}

func (b *EpisodeBuilder) Bitlove() *EpisodeBitloveBuilder {
	return b.bitlove
}

func (b *EpisodeBuilder) Podcastindex() *EpisodePodcastindexBuilder {
	return b.podcastindex
}

func (b *EpisodeBuilder) CreateEnclosureBuilder() *EnclosureBuilder {
	return NewEnclosureBuilder()
}

func (b *EpisodeBuilder) CreateGUIDBuilder() *GUIDBuilder {
	return NewGUIDBuilder()
}

func (b *EpisodeBuilder) CreateRSSCategoryBuilder() *RSSCategoryBuilder {
	return NewRSSCategoryBuilder()
}

func (b *EpisodeBuilder) CreateHrefOnlyImageBuilder() *HrefOnlyImageBuilder {
	return NewHrefOnlyImageBuilder()
}

func (b *EpisodeBuilder) CreatePersonBuilder() *PersonBuilder {
	return NewPersonBuilder()
}

func (b *EpisodeBuilder) CreateLinkBuilder() *LinkBuilder {
	return NewLinkBuilder()
}

func (b *EpisodeBuilder) CreateSimpleChapterBuilder() *SimpleChapterBuilder {
	return NewSimpleChapterBuilder()
}

func (b *EpisodeBuilder) CreateChaptersBuilder() *ChaptersBuilder {
	return NewChaptersBuilder()
}

func (b *EpisodeBuilder) CreateSoundbiteBuilder() *SoundbiteBuilder {
	return NewSoundbiteBuilder()
}

func (b *EpisodeBuilder) CreateTranscriptBuilder() *TranscriptBuilder {
	return NewTranscriptBuilder()
}

func (b *EpisodeBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.title != ""
}

func (b *EpisodeBuilder) Build() (Episode, bool) {
	if !b.HasEnoughDataToBuild() {
		return Episode{}, false
	}
	return Episode{
		Title:        b.title,
		Link:         b.link,
		Description:  b.description,
		Author:       b.author,
		Categories:   buildAll[RSSCategory](b.categories),
		Comments:     b.comments,
		Enclosure:    buildOptional[Enclosure](b.enclosure),
		GUID:         buildOptional[GUID](b.guid),
		PubDate:      b.pubDate,
		Source:       b.source,
		Content:      buildOptional[EpisodeContent](b.content),
		ITunes:       buildOptional[EpisodeITunes](b.itunes),
		Atom:         buildOptional[Atom](b.atom),
		Podlove:      buildOptional[EpisodePodlove](b.podlove),
		GooglePlay:   buildOptional[EpisodeGooglePlay](b.googlePlay),
		Bitlove:      buildOptional[EpisodeBitlove](b.bitlove),
		Podcastindex: buildOptional[EpisodePodcastindex](b.podcastindex),
	}, true
}

func (b *EpisodeBuilder) ApplyFrom(episode *Episode) *EpisodeBuilder {
	if episode == nil {
		return b
	}
	b.Title(episode.Title).
		Link(episode.Link).
		Description(episode.Description).
		Author(episode.Author).
		AddAllCategoryBuilders(rssCategoryBuilders(episode.Categories)).
		Comments(episode.Comments).
		EnclosureBuilder(NewEnclosureBuilder().ApplyFrom(episode.Enclosure)).
		GUIDBuilder(NewGUIDBuilder().ApplyFrom(episode.GUID)).
		PubDate(episode.PubDate).
		Source(episode.Source)
	b.content.ApplyFrom(episode.Content)
	b.itunes.ApplyFrom(episode.ITunes)
	b.atom.ApplyFrom(episode.Atom)
	b.podlove.ApplyFrom(episode.Podlove)
	b.googlePlay.ApplyFrom(episode.GooglePlay)
	b.bitlove.ApplyFrom(episode.Bitlove)
	b.podcastindex.ApplyFrom(episode.Podcastindex)
	return b
}
