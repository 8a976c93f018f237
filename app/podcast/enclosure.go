package podcast

// Enclosure is the media file attached to an episode. It is only ever built with all three fields.
type Enclosure struct {
	URL    string `json:"url"`
	Length int64  `json:"length"`
	Type   string `json:"type"`
}

type EnclosureBuilder struct {
	url           string
	length        *int64
	enclosureType string
}

func NewEnclosureBuilder() *EnclosureBuilder {
	return &EnclosureBuilder{}
}

func (b *EnclosureBuilder) URL(url string) *EnclosureBuilder {
	b.url = url
	return b
}

func (b *EnclosureBuilder) Length(length int64) *EnclosureBuilder {
	b.length = &length
	return b
}

func (b *EnclosureBuilder) Type(enclosureType string) *EnclosureBuilder {
	b.enclosureType = enclosureType
	return b
}

func (b *EnclosureBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.url != "" && b.length != nil && *b.length >= 0 && b.enclosureType != ""
}

func (b *EnclosureBuilder) Build() (Enclosure, bool) {
	if !b.HasEnoughDataToBuild() {
		return Enclosure{}, false
	}
	return Enclosure{URL: b.url, Length: *b.length, Type: b.enclosureType}, true
}

func (b *EnclosureBuilder) ApplyFrom(enclosure *Enclosure) *EnclosureBuilder {
	if enclosure == nil {
		return b
	}
	return b.URL(enclosure.URL).Length(enclosure.Length).Type(enclosure.Type)
}

// GUID is an episode's <guid>. IsPermalink is nil when the attribute was not given.
type GUID struct {
	Text        string `json:"text"`
	IsPermalink *bool  `json:"isPermalink,omitempty"`
}

type GUIDBuilder struct {
	text        string
	isPermalink *bool
}

func NewGUIDBuilder() *GUIDBuilder {
	return &GUIDBuilder{}
}

func (b *GUIDBuilder) TextContent(text string) *GUIDBuilder {
	b.text = text
	return b
}

func (b *GUIDBuilder) IsPermalink(isPermalink *bool) *GUIDBuilder {
	b.isPermalink = isPermalink
	return b
}

func (b *GUIDBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.text != ""
}

func (b *GUIDBuilder) Build() (GUID, bool) {
	if !b.HasEnoughDataToBuild() {
		return GUID{}, false
	}
	return GUID{Text: b.text, IsPermalink: b.isPermalink}, true
}

func (b *GUIDBuilder) ApplyFrom(guid *GUID) *GUIDBuilder {
	if guid == nil {
		return b
	}
	return b.TextContent(guid.Text).IsPermalink(guid.IsPermalink)
}

// EpisodeContent holds data from the RSS Content module.
type EpisodeContent struct {
	Encoded string `json:"encoded"`
}

type EpisodeContentBuilder struct {
	encoded string
}

func NewEpisodeContentBuilder() *EpisodeContentBuilder {
	return &EpisodeContentBuilder{}
}

func (b *EpisodeContentBuilder) Encoded(encoded string) *EpisodeContentBuilder {
	b.encoded = encoded
	return b
}

func (b *EpisodeContentBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.encoded != ""
}

func (b *EpisodeContentBuilder) Build() (EpisodeContent, bool) {
	if !b.HasEnoughDataToBuild() {
		return EpisodeContent{}, false
	}
	return EpisodeContent{Encoded: b.encoded}, true
}

func (b *EpisodeContentBuilder) ApplyFrom(content *EpisodeContent) *EpisodeContentBuilder {
	if content == nil {
		return b
	}
	return b.Encoded(content.Encoded)
}
