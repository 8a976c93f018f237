package podcast

// RSSCategory is an RSS <category> element with its optional domain attribute.
type RSSCategory struct {
	Category string `json:"category"`
	Domain   string `json:"domain,omitempty"`
}

type RSSCategoryBuilder struct {
	category string
	domain   string
}

func NewRSSCategoryBuilder() *RSSCategoryBuilder {
	return &RSSCategoryBuilder{}
}

func (b *RSSCategoryBuilder) Category(category string) *RSSCategoryBuilder {
	b.category = category
	return b
}

func (b *RSSCategoryBuilder) Domain(domain string) *RSSCategoryBuilder {
	b.domain = domain
	return b
}

func (b *RSSCategoryBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.category != ""
}

func (b *RSSCategoryBuilder) Build() (RSSCategory, bool) {
	if !b.HasEnoughDataToBuild() {
		return RSSCategory{}, false
	}
	return RSSCategory{Category: b.category, Domain: b.domain}, true
}

func (b *RSSCategoryBuilder) ApplyFrom(category *RSSCategory) *RSSCategoryBuilder {
	if category == nil {
		return b
	}
	return b.Category(category.Category).Domain(category.Domain)
}

// ITunesStyleCategory is a category with at most one nested subcategory, the shape used by
// both <itunes:category> and <googleplay:category>.
type ITunesStyleCategory struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

type ITunesStyleCategoryBuilder struct {
	category    string
	subcategory string
}

func NewITunesStyleCategoryBuilder() *ITunesStyleCategoryBuilder {
	return &ITunesStyleCategoryBuilder{}
}

func (b *ITunesStyleCategoryBuilder) Category(category string) *ITunesStyleCategoryBuilder {
	b.category = category
	return b
}

func (b *ITunesStyleCategoryBuilder) Subcategory(subcategory string) *ITunesStyleCategoryBuilder {
	b.subcategory = subcategory
	return b
}

func (b *ITunesStyleCategoryBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.category != ""
}

func (b *ITunesStyleCategoryBuilder) Build() (ITunesStyleCategory, bool) {
	if !b.HasEnoughDataToBuild() {
		return ITunesStyleCategory{}, false
	}
	return ITunesStyleCategory{Category: b.category, Subcategory: b.subcategory}, true
}

func (b *ITunesStyleCategoryBuilder) ApplyFrom(category *ITunesStyleCategory) *ITunesStyleCategoryBuilder {
	if category == nil {
		return b
	}
	return b.Category(category.Category).Subcategory(category.Subcategory)
}

func rssCategoryBuilders(categories []RSSCategory) []*RSSCategoryBuilder {
	builders := make([]*RSSCategoryBuilder, 0, len(categories))
	for i := range categories {
		builders = append(builders, NewRSSCategoryBuilder().ApplyFrom(&categories[i]))
	}
	return builders
}

func iTunesStyleCategoryBuilders(categories []ITunesStyleCategory) []*ITunesStyleCategoryBuilder {
	builders := make([]*ITunesStyleCategoryBuilder, 0, len(categories))
	for i := range categories {
		builders = append(builders, NewITunesStyleCategoryBuilder().ApplyFrom(&categories[i]))
	}
	return builders
}
