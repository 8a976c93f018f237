package podcast

// Image is the RSS <image> element of a channel.
type Image struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Width       *int   `json:"width,omitempty"`
	Height      *int   `json:"height,omitempty"`
	Description string `json:"description,omitempty"`
}

type ImageBuilder struct {
	url         string
	title       string
	link        string
	width       *int
	height      *int
	description string
}

func NewImageBuilder() *ImageBuilder {
	return &ImageBuilder{}
}

func (b *ImageBuilder) URL(url string) *ImageBuilder {
	b.url = url
	return b
}

func (b *ImageBuilder) Title(title string) *ImageBuilder {
	b.title = title
	return b
}

func (b *ImageBuilder) Link(link string) *ImageBuilder {
	b.link = link
	return b
}

func (b *ImageBuilder) Width(width *int) *ImageBuilder {
	b.width = width
	return b
}

func (b *ImageBuilder) Height(height *int) *ImageBuilder {
	b.height = height
	return b
}

func (b *ImageBuilder) Description(description string) *ImageBuilder {
	b.description = description
	return b
}

func (b *ImageBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.url != "" && b.title != "" && b.link != ""
}

func (b *ImageBuilder) Build() (Image, bool) {
	if !b.HasEnoughDataToBuild() {
		return Image{}, false
	}
	return Image{
		URL:         b.url,
		Title:       b.title,
		Link:        b.link,
		Width:       b.width,
		Height:      b.height,
		Description: b.description,
	}, true
}

func (b *ImageBuilder) ApplyFrom(image *Image) *ImageBuilder {
	if image == nil {
		return b
	}
	return b.URL(image.URL).
		Title(image.Title).
		Link(image.Link).
		Width(image.Width).
		Height(image.Height).
		Description(image.Description)
}

// HrefOnlyImage is an image referenced by a single href attribute, as iTunes and Google Play use it.
type HrefOnlyImage struct {
	Href string `json:"href"`
}

type HrefOnlyImageBuilder struct {
	href string
}

func NewHrefOnlyImageBuilder() *HrefOnlyImageBuilder {
	return &HrefOnlyImageBuilder{}
}

func (b *HrefOnlyImageBuilder) Href(href string) *HrefOnlyImageBuilder {
	b.href = href
	return b
}

func (b *HrefOnlyImageBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.href != ""
}

func (b *HrefOnlyImageBuilder) Build() (HrefOnlyImage, bool) {
	if !b.HasEnoughDataToBuild() {
		return HrefOnlyImage{}, false
	}
	return HrefOnlyImage{Href: b.href}, true
}

func (b *HrefOnlyImageBuilder) ApplyFrom(image *HrefOnlyImage) *HrefOnlyImageBuilder {
	if image == nil {
		return b
	}
	return b.Href(image.Href)
}
