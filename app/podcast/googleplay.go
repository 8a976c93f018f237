package podcast

// PodcastGooglePlay is the Google Play namespace data of a channel.
type PodcastGooglePlay struct {
	Author      string                `json:"author,omitempty"`
	Owner       string                `json:"owner,omitempty"`
	Categories  []ITunesStyleCategory `json:"categories,omitempty"`
	Description string                `json:"description,omitempty"`
	Explicit    *bool                 `json:"explicit,omitempty"`
	Block       *bool                 `json:"block,omitempty"`
	Image       *HrefOnlyImage        `json:"image,omitempty"`
}

type PodcastGooglePlayBuilder struct {
	author      string
	owner       string
	categories  []*ITunesStyleCategoryBuilder
	description string
	explicit    *bool
	block       *bool
	image       *HrefOnlyImageBuilder
}

func NewPodcastGooglePlayBuilder() *PodcastGooglePlayBuilder {
	return &PodcastGooglePlayBuilder{}
}

func (b *PodcastGooglePlayBuilder) Author(author string) *PodcastGooglePlayBuilder {
	b.author = author
	return b
}

// Owner sets the owner's email address.
func (b *PodcastGooglePlayBuilder) Owner(owner string) *PodcastGooglePlayBuilder {
	b.owner = owner
	return b
}

func (b *PodcastGooglePlayBuilder) AddCategoryBuilder(category *ITunesStyleCategoryBuilder) *PodcastGooglePlayBuilder {
	b.categories = append(b.categories, category)
	return b
}

func (b *PodcastGooglePlayBuilder) AddAllCategoryBuilders(categories []*ITunesStyleCategoryBuilder) *PodcastGooglePlayBuilder {
	b.categories = append(b.categories, categories...)
	return b
}

func (b *PodcastGooglePlayBuilder) Description(description string) *PodcastGooglePlayBuilder {
	b.description = description
	return b
}

func (b *PodcastGooglePlayBuilder) Explicit(explicit *bool) *PodcastGooglePlayBuilder {
	b.explicit = explicit
	return b
}

func (b *PodcastGooglePlayBuilder) Block(block *bool) *PodcastGooglePlayBuilder {
	b.block = block
	return b
}

func (b *PodcastGooglePlayBuilder) ImageBuilder(image *HrefOnlyImageBuilder) *PodcastGooglePlayBuilder {
	b.image = image
	return b
}

func (b *PodcastGooglePlayBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.author != "" || b.owner != "" || b.description != "" ||
		b.explicit != nil || b.block != nil ||
		b.image.HasEnoughDataToBuild() || anyReady[ITunesStyleCategory](b.categories)
}

func (b *PodcastGooglePlayBuilder) Build() (PodcastGooglePlay, bool) {
	if !b.HasEnoughDataToBuild() {
		return PodcastGooglePlay{}, false
	}
	return PodcastGooglePlay{
		Author:      b.author,
		Owner:       b.owner,
		Categories:  buildAll[ITunesStyleCategory](b.categories),
		Description: b.description,
		Explicit:    b.explicit,
		Block:       b.block,
		Image:       buildOptional[HrefOnlyImage](b.image),
	}, true
}

func (b *PodcastGooglePlayBuilder) ApplyFrom(googlePlay *PodcastGooglePlay) *PodcastGooglePlayBuilder {
	if googlePlay == nil {
		return b
	}
	return b.Author(googlePlay.Author).
		Owner(googlePlay.Owner).
		AddAllCategoryBuilders(iTunesStyleCategoryBuilders(googlePlay.Categories)).
		Description(googlePlay.Description).
		Explicit(googlePlay.Explicit).
		Block(googlePlay.Block).
		ImageBuilder(NewHrefOnlyImageBuilder().ApplyFrom(googlePlay.Image))
}

// EpisodeGooglePlay is the Google Play namespace data of an item.
type EpisodeGooglePlay struct {
	Description string         `json:"description,omitempty"`
	Explicit    *bool          `json:"explicit,omitempty"`
	Block       *bool          `json:"block,omitempty"`
	Image       *HrefOnlyImage `json:"image,omitempty"`
}

type EpisodeGooglePlayBuilder struct {
	description string
	explicit    *bool
	block       *bool
	image       *HrefOnlyImageBuilder
}

func NewEpisodeGooglePlayBuilder() *EpisodeGooglePlayBuilder {
	return &EpisodeGooglePlayBuilder{}
}

func (b *EpisodeGooglePlayBuilder) Description(description string) *EpisodeGooglePlayBuilder {
	b.description = description
	return b
}

func (b *EpisodeGooglePlayBuilder) Explicit(explicit *bool) *EpisodeGooglePlayBuilder {
	b.explicit = explicit
	return b
}

func (b *EpisodeGooglePlayBuilder) Block(block *bool) *EpisodeGooglePlayBuilder {
	b.block = block
	return b
}

func (b *EpisodeGooglePlayBuilder) ImageBuilder(image *HrefOnlyImageBuilder) *EpisodeGooglePlayBuilder {
	b.image = image
	return b
}

func (b *EpisodeGooglePlayBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.description != "" || b.explicit != nil || b.block != nil || b.image.HasEnoughDataToBuild()
}

func (b *EpisodeGooglePlayBuilder) Build() (EpisodeGooglePlay, bool) {
	if !b.HasEnoughDataToBuild() {
		return EpisodeGooglePlay{}, false
	}
	return EpisodeGooglePlay{
		Description: b.description,
		Explicit:    b.explicit,
		Block:       b.block,
		Image:       buildOptional[HrefOnlyImage](b.image),
	}, true
}

func (b *EpisodeGooglePlayBuilder) ApplyFrom(googlePlay *EpisodeGooglePlay) *EpisodeGooglePlayBuilder {
	if googlePlay == nil {
		return b
	}
	return b.Description(googlePlay.Description).
		Explicit(googlePlay.Explicit).
		Block(googlePlay.Block).
		ImageBuilder(NewHrefOnlyImageBuilder().ApplyFrom(googlePlay.Image))
}
