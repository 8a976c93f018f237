package podcast

// SimpleChapter is one <psc:chapter> of the Podlove Simple Chapters format.
type SimpleChapter struct {
	Start string `json:"start"`
	Title string `json:"title"`
	Href  string `json:"href,omitempty"`
	Image string `json:"image,omitempty"`
}

type SimpleChapterBuilder struct {
	start string
	title string
	href  string
	image string
}

func NewSimpleChapterBuilder() *SimpleChapterBuilder {
	return &SimpleChapterBuilder{}
}

func (b *SimpleChapterBuilder) Start(start string) *SimpleChapterBuilder {
	b.start = start
	return b
}

func (b *SimpleChapterBuilder) Title(title string) *SimpleChapterBuilder {
	b.title = title
	return b
}

func (b *SimpleChapterBuilder) Href(href string) *SimpleChapterBuilder {
	b.href = href
	return b
}

func (b *SimpleChapterBuilder) Image(image string) *SimpleChapterBuilder {
	b.image = image
	return b
}

func (b *SimpleChapterBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.start != "" && b.title != ""
}

func (b *SimpleChapterBuilder) Build() (SimpleChapter, bool) {
	if !b.HasEnoughDataToBuild() {
		return SimpleChapter{}, false
	}
	return SimpleChapter{Start: b.start, Title: b.title, Href: b.href, Image: b.image}, true
}

func (b *SimpleChapterBuilder) ApplyFrom(chapter *SimpleChapter) *SimpleChapterBuilder {
	if chapter == nil {
		return b
	}
	return b.Start(chapter.Start).Title(chapter.Title).Href(chapter.Href).Image(chapter.Image)
}

// EpisodePodlove is the Podlove namespace data of an item.
type EpisodePodlove struct {
	SimpleChapters []SimpleChapter `json:"simpleChapters"`
}

type EpisodePodloveBuilder struct {
	chapters []*SimpleChapterBuilder
}

func NewEpisodePodloveBuilder() *EpisodePodloveBuilder {
	return &EpisodePodloveBuilder{}
}

func (b *EpisodePodloveBuilder) AddSimpleChapterBuilder(chapter *SimpleChapterBuilder) *EpisodePodloveBuilder {
	b.chapters = append(b.chapters, chapter)
	return b
}

func (b *EpisodePodloveBuilder) AddAllSimpleChapterBuilders(chapters []*SimpleChapterBuilder) *EpisodePodloveBuilder {
	b.chapters = append(b.chapters, chapters...)
	return b
}

func (b *EpisodePodloveBuilder) HasEnoughDataToBuild() bool {
	return b != nil && anyReady[SimpleChapter](b.chapters)
}

func (b *EpisodePodloveBuilder) Build() (EpisodePodlove, bool) {
	if !b.HasEnoughDataToBuild() {
		return EpisodePodlove{}, false
	}
	return EpisodePodlove{SimpleChapters: buildAll[SimpleChapter](b.chapters)}, true
}

func (b *EpisodePodloveBuilder) ApplyFrom(podlove *EpisodePodlove) *EpisodePodloveBuilder {
	if podlove == nil {
		return b
	}
	for i := range podlove.SimpleChapters {
		b.AddSimpleChapterBuilder(NewSimpleChapterBuilder().ApplyFrom(&podlove.SimpleChapters[i]))
	}
	return b
}
