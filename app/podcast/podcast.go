package podcast

import "time"

// Podcast is the root of a parsed feed: the <channel> element and its items.
type Podcast struct {
	Title          string               `json:"title"`
	Link           string               `json:"link"`
	Description    string               `json:"description"`
	Language       string               `json:"language"`
	PubDate        *time.Time           `json:"pubDate,omitempty"`
	LastBuildDate  *time.Time           `json:"lastBuildDate,omitempty"`
	Generator      string               `json:"generator,omitempty"`
	Copyright      string               `json:"copyright,omitempty"`
	Docs           string               `json:"docs,omitempty"`
	ManagingEditor string               `json:"managingEditor,omitempty"`
	WebMaster      string               `json:"webMaster,omitempty"`
	TTL            *int                 `json:"ttl,omitempty"`
	Image          *Image               `json:"image,omitempty"`
	Episodes       []Episode            `json:"episodes"`
	Categories     []RSSCategory        `json:"categories,omitempty"`
	ITunes         *PodcastITunes       `json:"itunes,omitempty"`
	Atom           *Atom                `json:"atom,omitempty"`
	Fyyd           *PodcastFyyd         `json:"fyyd,omitempty"`
	Feedpress      *PodcastFeedpress    `json:"feedpress,omitempty"`
	GooglePlay     *PodcastGooglePlay   `json:"googlePlay,omitempty"`
	Podcastindex   *PodcastPodcastindex `json:"podcastindex,omitempty"`
}

type PodcastBuilder struct {
	title          string
	link           string
	description    string
	language       string
	pubDate        *time.Time
	lastBuildDate  *time.Time
	generator      string
	copyright      string
	docs           string
	managingEditor string
	webMaster      string
	ttl            *int
	image          *ImageBuilder
	episodes       []*EpisodeBuilder
	categories     []*RSSCategoryBuilder

	itunes       *PodcastITunesBuilder
	atom         *AtomBuilder
	fyyd         *PodcastFyydBuilder
	feedpress    *PodcastFeedpressBuilder
	googlePlay   *PodcastGooglePlayBuilder
	podcastindex *PodcastPodcastindexBuilder
}

func NewPodcastBuilder() *PodcastBuilder {
	return &PodcastBuilder{
		itunes:       NewPodcastITunesBuilder(),
		atom:         NewAtomBuilder(),
		fyyd:         NewPodcastFyydBuilder(),
		feedpress:    NewPodcastFeedpressBuilder(),
		googlePlay:   NewPodcastGooglePlayBuilder(),
		podcastindex: NewPodcastPodcastindexBuilder(),
	}
}

func (b *PodcastBuilder) Title(title string) *PodcastBuilder {
	b.title = title
	return b
}

func (b *PodcastBuilder) Link(link string) *PodcastBuilder {
	b.link = link
	return b
}

func (b *PodcastBuilder) Description(description string) *PodcastBuilder {
	b.description = description
	return b
}

func (b *PodcastBuilder) Language(language string) *PodcastBuilder {
	b.language = language
	return b
}

func (b *PodcastBuilder) PubDate(pubDate *time.Time) *PodcastBuilder {
	b.pubDate = pubDate
	return b
}

func (b *PodcastBuilder) LastBuildDate(lastBuildDate *time.Time) *PodcastBuilder {
	b.lastBuildDate = lastBuildDate
	return b
}

func (b *PodcastBuilder) Generator(generator string) *PodcastBuilder {
	b.generator = generator
	return b
}

func (b *PodcastBuilder) Copyright(copyright string) *PodcastBuilder {
	b.copyright = copyright
	return b
}

func (b *PodcastBuilder) Docs(docs string) *PodcastBuilder {
	b.docs = docs
	return b
}

func (b *PodcastBuilder) ManagingEditor(managingEditor string) *PodcastBuilder {
	b.managingEditor = managingEditor
	return b
}

func (b *PodcastBuilder) WebMaster(webMaster string) *PodcastBuilder {
	b.webMaster = webMaster
	return b
}

func (b *PodcastBuilder) TTL(ttl *int) *PodcastBuilder {
	b.ttl = ttl
	return b
}

func (b *PodcastBuilder) ImageBuilder(image *ImageBuilder) *PodcastBuilder {
	b.image = image
	return b
}

func (b *PodcastBuilder) AddEpisodeBuilder(episode *EpisodeBuilder) *PodcastBuilder {
	b.episodes = append(b.episodes, episode)
	return b
}

func (b *PodcastBuilder) AddAllEpisodeBuilders(episodes []*EpisodeBuilder) *PodcastBuilder {
	b.episodes = append(b.episodes, episodes...)
	return b
}

func (b *PodcastBuilder) AddCategoryBuilder(category *RSSCategoryBuilder) *PodcastBuilder {
	b.categories = append(b.categories, category)
	return b
}

func (b *PodcastBuilder) AddAllCategoryBuilders(categories []*RSSCategoryBuilder) *PodcastBuilder {
	b.categories = append(b.categories, categories...)
	return b
}

func (b *PodcastBuilder) ITunes() *PodcastITunesBuilder {
	return b.itunes
}

func (b *PodcastBuilder) Atom() *AtomBuilder {
	return b.atom
}

func (b *PodcastBuilder) Fyyd() *PodcastFyydBuilder {
	return b.fyyd
}

func (b *PodcastBuilder) Feedpress() *PodcastFeedpressBuilder {
	return b.feedpress
}

func (b *PodcastBuilder) GooglePlay() *PodcastGooglePlayBuilder {
	return b.googlePlay
}

func (b *PodcastBuilder) Podcastindex() *PodcastPodcastindexBuilder {
	return b.podcastindex
}

func (b *PodcastBuilder) CreateEpisodeBuilder() *EpisodeBuilder {
	return NewEpisodeBuilder()
}

func (b *PodcastBuilder) CreateImageBuilder() *ImageBuilder {
	return NewImageBuilder()
}

func (b *PodcastBuilder) CreateHrefOnlyImageBuilder() *HrefOnlyImageBuilder {
	return NewHrefOnlyImageBuilder()
}

func (b *PodcastBuilder) CreateRSSCategoryBuilder() *RSSCategoryBuilder {
	return NewRSSCategoryBuilder()
}

func (b *PodcastBuilder) CreateITunesStyleCategoryBuilder() *ITunesStyleCategoryBuilder {
	return NewITunesStyleCategoryBuilder()
}

func (b *PodcastBuilder) CreatePersonBuilder() *PersonBuilder {
	return NewPersonBuilder()
}

func (b *PodcastBuilder) CreateLinkBuilder() *LinkBuilder {
	return NewLinkBuilder()
}

func (b *PodcastBuilder) CreateLockedBuilder() *LockedBuilder {
	return NewLockedBuilder()
}

func (b *PodcastBuilder) CreateFundingBuilder() *FundingBuilder {
	return NewFundingBuilder()
}

// HasEnoughDataToBuild requires title, link, description and language. Episodes are optional.
func (b *PodcastBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.title != "" && b.link != "" && b.description != "" && b.language != ""
}

// Build drops episodes whose builders are not ready.
func (b *PodcastBuilder) Build() (Podcast, bool) {
	if !b.HasEnoughDataToBuild() {
		return Podcast{}, false
	}
	return Podcast{
		Title:          b.title,
		Link:           b.link,
		Description:    b.description,
		Language:       b.language,
		PubDate:        b.pubDate,
		LastBuildDate:  b.lastBuildDate,
		Generator:      b.generator,
		Copyright:      b.copyright,
		Docs:           b.docs,
		ManagingEditor: b.managingEditor,
		WebMaster:      b.webMaster,
		TTL:            b.ttl,
		Image:          buildOptional[Image](b.image),
		Episodes:       buildAll[Episode](b.episodes),
		Categories:     buildAll[RSSCategory](b.categories),
		ITunes:         buildOptional[PodcastITunes](b.itunes),
		Atom:           buildOptional[Atom](b.atom),
		Fyyd:           buildOptional[PodcastFyyd](b.fyyd),
		Feedpress:      buildOptional[PodcastFeedpress](b.feedpress),
		GooglePlay:     buildOptional[PodcastGooglePlay](b.googlePlay),
		Podcastindex:   buildOptional[PodcastPodcastindex](b.podcastindex),
	}, true
}

func (b *PodcastBuilder) ApplyFrom(podcast *Podcast) *PodcastBuilder {
	if podcast == nil {
		return b
	}
	b.Title(podcast.Title).
		Link(podcast.Link).
		Description(podcast.Description).
		Language(podcast.Language).
		PubDate(podcast.PubDate).
		LastBuildDate(podcast.LastBuildDate).
		Generator(podcast.Generator).
		Copyright(podcast.Copyright).
		Docs(podcast.Docs).
		ManagingEditor(podcast.ManagingEditor).
		WebMaster(podcast.WebMaster).
		TTL(podcast.TTL).
		ImageBuilder(NewImageBuilder().ApplyFrom(podcast.Image)).
		AddAllCategoryBuilders(rssCategoryBuilders(podcast.Categories))
	for i := range podcast.Episodes {
		b.AddEpisodeBuilder(NewEpisodeBuilder().ApplyFrom(&podcast.Episodes[i]))
	}
	b.itunes.ApplyFrom(podcast.ITunes)
	b.atom.ApplyFrom(podcast.Atom)
	b.fyyd.ApplyFrom(podcast.Fyyd)
	b.feedpress.ApplyFrom(podcast.Feedpress)
	b.googlePlay.ApplyFrom(podcast.GooglePlay)
	b.podcastindex.ApplyFrom(podcast.Podcastindex)
	return b
}
