package podcast

import "strings"

// ShowType is the value of <itunes:type> on a channel.
type ShowType string

const (
	ShowTypeEpisodic ShowType = "episodic"
	ShowTypeSerial   ShowType = "serial"
)

// ParseShowType matches case-insensitively and returns "" for unknown values.
func ParseShowType(value string) ShowType {
	switch t := ShowType(strings.ToLower(strings.TrimSpace(value))); t {
	case ShowTypeEpisodic, ShowTypeSerial:
		return t
	}
	return ""
}

// EpisodeType is the value of <itunes:episodeType> on an item.
type EpisodeType string

const (
	EpisodeTypeFull    EpisodeType = "full"
	EpisodeTypeTrailer EpisodeType = "trailer"
	EpisodeTypeBonus   EpisodeType = "bonus"
)

// ParseEpisodeType matches case-insensitively and returns "" for unknown values.
func ParseEpisodeType(value string) EpisodeType {
	switch t := EpisodeType(strings.ToLower(strings.TrimSpace(value))); t {
	case EpisodeTypeFull, EpisodeTypeTrailer, EpisodeTypeBonus:
		return t
	}
	return ""
}

// PodcastITunes is the iTunes namespace data of a channel.
type PodcastITunes struct {
	Subtitle   string                `json:"subtitle,omitempty"`
	Summary    string                `json:"summary,omitempty"`
	Image      *HrefOnlyImage        `json:"image,omitempty"`
	Keywords   string                `json:"keywords,omitempty"`
	Author     string                `json:"author,omitempty"`
	Categories []ITunesStyleCategory `json:"categories,omitempty"`
	Explicit   *bool                 `json:"explicit,omitempty"`
	Block      *bool                 `json:"block,omitempty"`
	Complete   *bool                 `json:"complete,omitempty"`
	Type       ShowType              `json:"type,omitempty"`
	Owner      *Person               `json:"owner,omitempty"`
	Title      string                `json:"title,omitempty"`
	NewFeedURL string                `json:"newFeedUrl,omitempty"`
}

type PodcastITunesBuilder struct {
	subtitle   string
	summary    string
	image      *HrefOnlyImageBuilder
	keywords   string
	author     string
	categories []*ITunesStyleCategoryBuilder
	explicit   *bool
	block      *bool
	complete   *bool
	showType   ShowType
	owner      *PersonBuilder
	title      string
	newFeedURL string
}

func NewPodcastITunesBuilder() *PodcastITunesBuilder {
	return &PodcastITunesBuilder{}
}

func (b *PodcastITunesBuilder) Subtitle(subtitle string) *PodcastITunesBuilder {
	b.subtitle = subtitle
	return b
}

func (b *PodcastITunesBuilder) Summary(summary string) *PodcastITunesBuilder {
	b.summary = summary
	return b
}

func (b *PodcastITunesBuilder) ImageBuilder(image *HrefOnlyImageBuilder) *PodcastITunesBuilder {
	b.image = image
	return b
}

func (b *PodcastITunesBuilder) Keywords(keywords string) *PodcastITunesBuilder {
	b.keywords = keywords
	return b
}

func (b *PodcastITunesBuilder) Author(author string) *PodcastITunesBuilder {
	b.author = author
	return b
}

func (b *PodcastITunesBuilder) AddCategoryBuilder(category *ITunesStyleCategoryBuilder) *PodcastITunesBuilder {
	b.categories = append(b.categories, category)
	return b
}

func (b *PodcastITunesBuilder) AddAllCategoryBuilders(categories []*ITunesStyleCategoryBuilder) *PodcastITunesBuilder {
	b.categories = append(b.categories, categories...)
	return b
}

func (b *PodcastITunesBuilder) Explicit(explicit *bool) *PodcastITunesBuilder {
	b.explicit = explicit
	return b
}

func (b *PodcastITunesBuilder) Block(block *bool) *PodcastITunesBuilder {
	b.block = block
	return b
}

func (b *PodcastITunesBuilder) Complete(complete *bool) *PodcastITunesBuilder {
	b.complete = complete
	return b
}

func (b *PodcastITunesBuilder) Type(showType ShowType) *PodcastITunesBuilder {
	b.showType = showType
	return b
}

func (b *PodcastITunesBuilder) OwnerBuilder(owner *PersonBuilder) *PodcastITunesBuilder {
	b.owner = owner
	return b
}

func (b *PodcastITunesBuilder) Title(title string) *PodcastITunesBuilder {
	b.title = title
	return b
}

func (b *PodcastITunesBuilder) NewFeedURL(newFeedURL string) *PodcastITunesBuilder {
	b.newFeedURL = newFeedURL
	return b
}

func (b *PodcastITunesBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.subtitle != "" || b.summary != "" || b.keywords != "" || b.author != "" ||
		b.title != "" || b.newFeedURL != "" || b.showType != "" ||
		b.explicit != nil || b.block != nil || b.complete != nil ||
		b.image.HasEnoughDataToBuild() || b.owner.HasEnoughDataToBuild() ||
		anyReady[ITunesStyleCategory](b.categories)
}

func (b *PodcastITunesBuilder) Build() (PodcastITunes, bool) {
	if !b.HasEnoughDataToBuild() {
		return PodcastITunes{}, false
	}
	return PodcastITunes{
		Subtitle:   b.subtitle,
		Summary:    b.summary,
		Image:      buildOptional[HrefOnlyImage](b.image),
		Keywords:   b.keywords,
		Author:     b.author,
		Categories: buildAll[ITunesStyleCategory](b.categories),
		Explicit:   b.explicit,
		Block:      b.block,
		Complete:   b.complete,
		Type:       b.showType,
		Owner:      buildOptional[Person](b.owner),
		Title:      b.title,
		NewFeedURL: b.newFeedURL,
	}, true
}

func (b *PodcastITunesBuilder) ApplyFrom(itunes *PodcastITunes) *PodcastITunesBuilder {
	if itunes == nil {
		return b
	}
	return b.Subtitle(itunes.Subtitle).
		Summary(itunes.Summary).
		ImageBuilder(NewHrefOnlyImageBuilder().ApplyFrom(itunes.Image)).
		Keywords(itunes.Keywords).
		Author(itunes.Author).
		AddAllCategoryBuilders(iTunesStyleCategoryBuilders(itunes.Categories)).
		Explicit(itunes.Explicit).
		Block(itunes.Block).
		Complete(itunes.Complete).
		Type(itunes.Type).
		OwnerBuilder(NewPersonBuilder().ApplyFrom(itunes.Owner)).
		Title(itunes.Title).
		NewFeedURL(itunes.NewFeedURL)
}

// EpisodeITunes is the iTunes namespace data of an item.
type EpisodeITunes struct {
	Title       string         `json:"title,omitempty"`
	Duration    string         `json:"duration,omitempty"`
	Image       *HrefOnlyImage `json:"image,omitempty"`
	Explicit    *bool          `json:"explicit,omitempty"`
	Block       *bool          `json:"block,omitempty"`
	Season      *int           `json:"season,omitempty"`
	Episode     *int           `json:"episode,omitempty"`
	EpisodeType EpisodeType    `json:"episodeType,omitempty"`
	Author      string         `json:"author,omitempty"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Summary     string         `json:"summary,omitempty"`
}

type EpisodeITunesBuilder struct {
	title       string
	duration    string
	image       *HrefOnlyImageBuilder
	explicit    *bool
	block       *bool
	season      *int
	episode     *int
	episodeType EpisodeType
	author      string
	subtitle    string
	summary     string
}

func NewEpisodeITunesBuilder() *EpisodeITunesBuilder {
	return &EpisodeITunesBuilder{}
}

func (b *EpisodeITunesBuilder) Title(title string) *EpisodeITunesBuilder {
	b.title = title
	return b
}

func (b *EpisodeITunesBuilder) Duration(duration string) *EpisodeITunesBuilder {
	b.duration = duration
	return b
}

func (b *EpisodeITunesBuilder) ImageBuilder(image *HrefOnlyImageBuilder) *EpisodeITunesBuilder {
	b.image = image
	return b
}

func (b *EpisodeITunesBuilder) Explicit(explicit *bool) *EpisodeITunesBuilder {
	b.explicit = explicit
	return b
}

func (b *EpisodeITunesBuilder) Block(block *bool) *EpisodeITunesBuilder {
	b.block = block
	return b
}

func (b *EpisodeITunesBuilder) Season(season *int) *EpisodeITunesBuilder {
	b.season = season
	return b
}

func (b *EpisodeITunesBuilder) Episode(episode *int) *EpisodeITunesBuilder {
	b.episode = episode
	return b
}

func (b *EpisodeITunesBuilder) EpisodeType(episodeType EpisodeType) *EpisodeITunesBuilder {
	b.episodeType = episodeType
	return b
}

func (b *EpisodeITunesBuilder) Author(author string) *EpisodeITunesBuilder {
	b.author = author
	return b
}

func (b *EpisodeITunesBuilder) Subtitle(subtitle string) *EpisodeITunesBuilder {
	b.subtitle = subtitle
	return b
}

func (b *EpisodeITunesBuilder) Summary(summary string) *EpisodeITunesBuilder {
	b.summary = summary
	return b
}

func (b *EpisodeITunesBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.title != "" || b.duration != "" || b.author != "" || b.subtitle != "" || b.summary != "" ||
		b.episodeType != "" || b.explicit != nil || b.block != nil || b.season != nil || b.episode != nil ||
		b.image.HasEnoughDataToBuild()
}

func (b *EpisodeITunesBuilder) Build() (EpisodeITunes, bool) {
	if !b.HasEnoughDataToBuild() {
		return EpisodeITunes{}, false
	}
	return EpisodeITunes{
		Title:       b.title,
		Duration:    b.duration,
		Image:       buildOptional[HrefOnlyImage](b.image),
		Explicit:    b.explicit,
		Block:       b.block,
		Season:      b.season,
		Episode:     b.episode,
		EpisodeType: b.episodeType,
		Author:      b.author,
		Subtitle:    b.subtitle,
		Summary:     b.summary,
	}, true
}

func (b *EpisodeITunesBuilder) ApplyFrom(itunes *EpisodeITunes) *EpisodeITunesBuilder {
	if itunes == nil {
		return b
	}
	return b.Title(itunes.Title).
		Duration(itunes.Duration).
		ImageBuilder(NewHrefOnlyImageBuilder().ApplyFrom(itunes.Image)).
		Explicit(itunes.Explicit).
		Block(itunes.Block).
		Season(itunes.Season).
		Episode(itunes.Episode).
		EpisodeType(itunes.EpisodeType).
		Author(itunes.Author).
		Subtitle(itunes.Subtitle).
		Summary(itunes.Summary)
}
