package podcast

// PodcastFyyd carries the fyyd.de verification token of a channel.
type PodcastFyyd struct {
	Verify string `json:"verify"`
}

type PodcastFyydBuilder struct {
	verify string
}

func NewPodcastFyydBuilder() *PodcastFyydBuilder {
	return &PodcastFyydBuilder{}
}

func (b *PodcastFyydBuilder) Verify(verify string) *PodcastFyydBuilder {
	b.verify = verify
	return b
}

func (b *PodcastFyydBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.verify != ""
}

func (b *PodcastFyydBuilder) Build() (PodcastFyyd, bool) {
	if !b.HasEnoughDataToBuild() {
		return PodcastFyyd{}, false
	}
	return PodcastFyyd{Verify: b.verify}, true
}

func (b *PodcastFyydBuilder) ApplyFrom(fyyd *PodcastFyyd) *PodcastFyydBuilder {
	if fyyd == nil {
		return b
	}
	return b.Verify(fyyd.Verify)
}

// PodcastFeedpress is the FeedPress namespace data of a channel.
type PodcastFeedpress struct {
	NewsletterID string `json:"newsletterId,omitempty"`
	Locale       string `json:"locale,omitempty"`
	PodcastID    string `json:"podcastId,omitempty"`
	CSSFile      string `json:"cssFile,omitempty"`
	Link         string `json:"link,omitempty"`
}

type PodcastFeedpressBuilder struct {
	newsletterID string
	locale       string
	podcastID    string
	cssFile      string
	link         string
}

func NewPodcastFeedpressBuilder() *PodcastFeedpressBuilder {
	return &PodcastFeedpressBuilder{}
}

func (b *PodcastFeedpressBuilder) NewsletterID(newsletterID string) *PodcastFeedpressBuilder {
	b.newsletterID = newsletterID
	return b
}

func (b *PodcastFeedpressBuilder) Locale(locale string) *PodcastFeedpressBuilder {
	b.locale = locale
	return b
}

func (b *PodcastFeedpressBuilder) PodcastID(podcastID string) *PodcastFeedpressBuilder {
	b.podcastID = podcastID
	return b
}

func (b *PodcastFeedpressBuilder) CSSFile(cssFile string) *PodcastFeedpressBuilder {
	b.cssFile = cssFile
	return b
}

func (b *PodcastFeedpressBuilder) Link(link string) *PodcastFeedpressBuilder {
	b.link = link
	return b
}

func (b *PodcastFeedpressBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.newsletterID != "" || b.locale != "" || b.podcastID != "" || b.cssFile != "" || b.link != ""
}

func (b *PodcastFeedpressBuilder) Build() (PodcastFeedpress, bool) {
	if !b.HasEnoughDataToBuild() {
		return PodcastFeedpress{}, false
	}
	return PodcastFeedpress{
		NewsletterID: b.newsletterID,
		Locale:       b.locale,
		PodcastID:    b.podcastID,
		CSSFile:      b.cssFile,
		Link:         b.link,
	}, true
}

func (b *PodcastFeedpressBuilder) ApplyFrom(feedpress *PodcastFeedpress) *PodcastFeedpressBuilder {
	if feedpress == nil {
		return b
	}
	return b.NewsletterID(feedpress.NewsletterID).
		Locale(feedpress.Locale).
		PodcastID(feedpress.PodcastID).
		CSSFile(feedpress.CSSFile).
		Link(feedpress.Link)
}

// EpisodeBitlove carries the bitlove.org torrent guid of an item's enclosure.
type EpisodeBitlove struct {
	GUID string `json:"guid"`
}

type EpisodeBitloveBuilder struct {
	guid string
}

func NewEpisodeBitloveBuilder() *EpisodeBitloveBuilder {
	return &EpisodeBitloveBuilder{}
}

func (b *EpisodeBitloveBuilder) GUID(guid string) *EpisodeBitloveBuilder {
	b.guid = guid
	return b
}

func (b *EpisodeBitloveBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.guid != ""
}

func (b *EpisodeBitloveBuilder) Build() (EpisodeBitlove, bool) {
	if !b.HasEnoughDataToBuild() {
		return EpisodeBitlove{}, false
	}
	return EpisodeBitlove{GUID: b.guid}, true
}

func (b *EpisodeBitloveBuilder) ApplyFrom(bitlove *EpisodeBitlove) *EpisodeBitloveBuilder {
	if bitlove == nil {
		return b
	}
	return b.GUID(bitlove.GUID)
}
